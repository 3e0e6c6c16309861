package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_Arithmetic(t *testing.T) {
	a := NewMoneyPHP(decimal.NewFromFloat(150.50))
	b := NewMoneyPHP(decimal.NewFromFloat(49.50))

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Equals(NewMoneyPHP(decimal.NewFromInt(200))))

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, "101.00", diff.StringFixed(2))
}

func TestMoney_MixedCurrenciesRejected(t *testing.T) {
	php := NewMoneyPHP(decimal.NewFromInt(100))
	usd, err := NewMoney(decimal.NewFromInt(100), USD)
	require.NoError(t, err)

	_, err = php.Add(usd)
	require.Error(t, err)
	_, err = php.Subtract(usd)
	require.Error(t, err)
}

func TestMoney_String(t *testing.T) {
	m := NewMoneyPHP(decimal.NewFromFloat(550))
	assert.Equal(t, "550.00 PHP", m.String())
	assert.Equal(t, PHP, m.Currency())
	assert.False(t, m.IsZero())
	assert.True(t, ZeroPHP().IsZero())
}

func TestNewMoney_EmptyCurrencyRejected(t *testing.T) {
	_, err := NewMoney(decimal.NewFromInt(1), "")
	require.Error(t, err)
}
