package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/laundrify/backend/internal/domain/expense"
	"github.com/laundrify/backend/internal/domain/order"
	"github.com/laundrify/backend/internal/domain/report"
	"github.com/laundrify/backend/internal/domain/shared"
)

// fakeOrders serves stored orders filtered by creation range
type fakeOrders struct {
	orders []order.Order
	err    error
	calls  int
}

func (f *fakeOrders) FindByCreatedRange(_ context.Context, start, end time.Time) ([]order.Order, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]order.Order, 0)
	for _, o := range f.orders {
		if !start.IsZero() && o.CreatedAt.Before(start) {
			continue
		}
		if !end.IsZero() && o.CreatedAt.After(end) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

// fakeExpenses serves stored expenses filtered by incurred range
type fakeExpenses struct {
	expenses []expense.Expense
	err      error
	calls    int
}

func (f *fakeExpenses) FindByIncurredRange(_ context.Context, start, end time.Time) ([]expense.Expense, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]expense.Expense, 0)
	for _, e := range f.expenses {
		if !start.IsZero() && e.IncurredOn.Before(start) {
			continue
		}
		if !end.IsZero() && e.IncurredOn.After(end) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func testOrder(status order.OrderStatus, method order.PaymentMethod, serviceType string,
	total float64, unitPrice float64, createdAt time.Time) order.Order {
	o := order.Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       "ORD-TEST",
		Status:            status,
		PaymentStatus:     order.PaymentStatusPaid,
		PaymentMethod:     method,
		ServiceType:       serviceType,
		TotalAmount:       decimal.NewFromFloat(total),
		UnitPrice:         decimal.NewFromFloat(unitPrice),
	}
	o.CreatedAt = createdAt
	return o
}

func testExpense(t *testing.T, category string, amount float64, incurredOn time.Time) expense.Expense {
	t.Helper()
	e, err := expense.NewExpense(category, "entry", decimal.NewFromFloat(amount), incurredOn, "", "")
	require.NoError(t, err)
	return *e
}

func newService(orders *fakeOrders, expenses *fakeExpenses) *Service {
	return NewService(orders, expenses, nil, zap.NewNop())
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestGenerate_RevenueSummary(t *testing.T) {
	created := day(2024, time.July, 3)
	orders := &fakeOrders{orders: []order.Order{
		testOrder(order.OrderStatusCompleted, order.PaymentMethodCash, "Wash & Fold", 100, 100, created),
		testOrder(order.OrderStatusCompleted, order.PaymentMethodGCash, "Wash & Fold", 50, 50, created),
		testOrder(order.OrderStatusPending, order.PaymentMethodCash, "Dry Clean", 30, 30, created),
	}}
	expenses := &fakeExpenses{expenses: []expense.Expense{
		testExpense(t, "Supplies", 20, day(2024, time.July, 2)),
		testExpense(t, "Payroll", 15, day(2024, time.July, 4)),
	}}

	data, err := newService(orders, expenses).Generate(context.Background(), "2024-07-01", "2024-07-07")
	require.NoError(t, err)

	s := data.Summary
	assert.True(t, decimal.NewFromInt(150).Equal(s.GrossRevenue), "gross %s", s.GrossRevenue)
	assert.True(t, decimal.NewFromInt(20).Equal(s.TotalExpenses))
	assert.True(t, decimal.NewFromInt(15).Equal(s.TotalPayroll))
	assert.True(t, decimal.NewFromInt(115).Equal(s.NetRevenue))
	assert.Equal(t, 3, s.TotalOrders)
	assert.Equal(t, 2, s.CompletedOrdersCount)
	assert.True(t, decimal.NewFromInt(75).Equal(s.AverageOrderValue))
	assert.Equal(t, "Last 7 Days", s.PeriodLabel)
}

func TestGenerate_EmptyPeriod(t *testing.T) {
	data, err := newService(&fakeOrders{}, &fakeExpenses{}).Generate(context.Background(), "2024-07-01", "2024-07-07")
	require.NoError(t, err)

	assert.Equal(t, 0, data.Summary.TotalOrders)
	assert.True(t, data.Summary.AverageOrderValue.IsZero())
	assert.True(t, data.Summary.GrossRevenue.IsZero())
	assert.Empty(t, data.StatusDistribution)
	assert.Empty(t, data.PaymentMethodAnalysis)
	assert.Empty(t, data.ServiceTypePerformance)
	assert.Empty(t, data.MonthlyTrends)
	assert.Empty(t, data.AvailableYears)
	assert.Empty(t, data.ExpenseBreakdown)
}

func TestGenerate_PeriodLabels(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		label string
	}{
		{"seven days", "2024-07-01", "2024-07-07", "Last 7 Days"},
		{"thirty days", "2024-06-01", "2024-06-30", "Last 30 Days"},
		{"ninety days", "2024-01-01", "2024-03-30", "Last 90 Days"},
		{"arbitrary span", "2024-07-01", "2024-07-10", "10 Days (Jul 1, 2024 - Jul 10, 2024)"},
		{"single day", "2024-07-01", "2024-07-01", "1 Days (Jul 1, 2024 - Jul 1, 2024)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := newService(&fakeOrders{}, &fakeExpenses{}).Generate(context.Background(), tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.label, data.Summary.PeriodLabel)
		})
	}
}

func TestGenerate_AllDataLabel(t *testing.T) {
	orders := &fakeOrders{orders: []order.Order{
		testOrder(order.OrderStatusCompleted, order.PaymentMethodCash, "Wash & Fold", 100, 100, day(2024, time.July, 1)),
		testOrder(order.OrderStatusCompleted, order.PaymentMethodCash, "Wash & Fold", 100, 100, day(2024, time.July, 10)),
	}}

	data, err := newService(orders, &fakeExpenses{}).Generate(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "All Data (10 days)", data.Summary.PeriodLabel)
}

func TestGenerate_AllDataNoOrdersFallsBack(t *testing.T) {
	data, err := newService(&fakeOrders{}, &fakeExpenses{}).Generate(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "Last 30 Days", data.Summary.PeriodLabel)

	span := data.DateRange.End.Sub(data.DateRange.Start)
	assert.InDelta(t, 31, span.Hours()/24, 0.1)
}

func TestGenerate_StatusDistribution(t *testing.T) {
	created := day(2024, time.July, 3)
	orders := &fakeOrders{orders: []order.Order{
		testOrder(order.OrderStatusCompleted, order.PaymentMethodCash, "Wash & Fold", 100, 100, created),
		testOrder(order.OrderStatusCompleted, order.PaymentMethodCash, "Wash & Fold", 60, 60, created),
		testOrder(order.OrderStatusPending, order.PaymentMethodCash, "Wash & Fold", 30, 30, created),
		testOrder(order.OrderStatus(""), order.PaymentMethodCash, "Wash & Fold", 10, 10, created),
	}}

	data, err := newService(orders, &fakeExpenses{}).Generate(context.Background(), "2024-07-01", "2024-07-07")
	require.NoError(t, err)

	byStatus := make(map[string]report.StatusBreakdown)
	for _, b := range data.StatusDistribution {
		byStatus[b.Status] = b
	}
	require.Len(t, byStatus, 3)

	completed := byStatus["completed"]
	assert.Equal(t, 2, completed.Count)
	assert.True(t, decimal.NewFromInt(160).Equal(completed.Revenue))
	assert.True(t, decimal.NewFromInt(50).Equal(completed.Percentage))

	unknown := byStatus["unknown"]
	assert.Equal(t, 1, unknown.Count)
	assert.True(t, decimal.NewFromInt(25).Equal(unknown.Percentage))
}

func TestGenerate_PaymentMethodAnalysis(t *testing.T) {
	created := day(2024, time.July, 3)
	orders := &fakeOrders{orders: []order.Order{
		testOrder(order.OrderStatusCompleted, order.PaymentMethodCash, "Wash & Fold", 100, 100, created),
		testOrder(order.OrderStatusPending, order.PaymentMethodGCash, "Wash & Fold", 50, 50, created),
		testOrder(order.OrderStatusPending, order.PaymentMethod(""), "Wash & Fold", 25, 25, created),
		testOrder(order.OrderStatusPending, order.PaymentMethodCash, "Wash & Fold", 25, 25, created),
	}}

	data, err := newService(orders, &fakeExpenses{}).Generate(context.Background(), "2024-07-01", "2024-07-07")
	require.NoError(t, err)

	byMethod := make(map[string]report.PaymentMethodBreakdown)
	for _, b := range data.PaymentMethodAnalysis {
		byMethod[b.Method] = b
	}
	require.Len(t, byMethod, 3)
	assert.Equal(t, 2, byMethod["cash"].Count)
	assert.True(t, decimal.NewFromInt(125).Equal(byMethod["cash"].TotalAmount))
	assert.True(t, decimal.NewFromInt(50).Equal(byMethod["cash"].Percentage))
	assert.Equal(t, 1, byMethod["unknown"].Count)
}

func TestGenerate_ServiceTypePerformance(t *testing.T) {
	created := day(2024, time.July, 3)
	orders := &fakeOrders{orders: []order.Order{
		testOrder(order.OrderStatusCompleted, order.PaymentMethodCash, "Wash & Fold", 300, 100, created),
		testOrder(order.OrderStatusCompleted, order.PaymentMethodCash, "Wash & Fold", 400, 200, created),
		testOrder(order.OrderStatusCompleted, order.PaymentMethodCash, "", 100, 80, created),
	}}

	data, err := newService(orders, &fakeExpenses{}).Generate(context.Background(), "2024-07-01", "2024-07-07")
	require.NoError(t, err)

	byType := make(map[string]report.ServiceTypeBreakdown)
	for _, b := range data.ServiceTypePerformance {
		byType[b.ServiceType] = b
	}
	require.Len(t, byType, 2)

	wf := byType["Wash & Fold"]
	assert.Equal(t, 2, wf.OrderCount)
	assert.True(t, decimal.NewFromInt(700).Equal(wf.TotalRevenue))
	// average unit price, not average order total
	assert.True(t, decimal.NewFromInt(150).Equal(wf.AveragePrice), "avg price %s", wf.AveragePrice)
	assert.Contains(t, byType, "unknown")
}

func TestGenerate_MonthlyTrendsGapless(t *testing.T) {
	orders := &fakeOrders{orders: []order.Order{
		testOrder(order.OrderStatusCompleted, order.PaymentMethodCash, "Wash & Fold", 100, 100, day(2024, time.January, 15)),
		testOrder(order.OrderStatusCompleted, order.PaymentMethodCash, "Wash & Fold", 200, 100, day(2024, time.March, 2)),
		testOrder(order.OrderStatusPending, order.PaymentMethodCash, "Wash & Fold", 50, 100, day(2024, time.March, 20)),
	}}

	data, err := newService(orders, &fakeExpenses{}).Generate(context.Background(), "", "")
	require.NoError(t, err)

	trends := data.MonthlyTrends
	require.Len(t, trends, 3)

	assert.Equal(t, "January", trends[0].Month)
	assert.Equal(t, 2024, trends[0].Year)
	assert.Equal(t, 1, trends[0].OrderCount)
	assert.True(t, decimal.NewFromInt(100).Equal(trends[0].Revenue))

	// gap month present with zero orders
	assert.Equal(t, "February", trends[1].Month)
	assert.Equal(t, 0, trends[1].OrderCount)
	assert.True(t, trends[1].Revenue.IsZero())
	assert.True(t, trends[1].AverageOrderValue.IsZero())

	assert.Equal(t, "March", trends[2].Month)
	assert.Equal(t, 2, trends[2].OrderCount)
	assert.True(t, decimal.NewFromInt(250).Equal(trends[2].Revenue))
	assert.True(t, decimal.NewFromInt(125).Equal(trends[2].AverageOrderValue))
}

func TestGenerate_MonthlyTrendsSpanYears(t *testing.T) {
	orders := &fakeOrders{orders: []order.Order{
		testOrder(order.OrderStatusCompleted, order.PaymentMethodCash, "Wash & Fold", 100, 100, day(2023, time.November, 5)),
		testOrder(order.OrderStatusCompleted, order.PaymentMethodCash, "Wash & Fold", 100, 100, day(2024, time.February, 5)),
	}}

	data, err := newService(orders, &fakeExpenses{}).Generate(context.Background(), "", "")
	require.NoError(t, err)

	require.Len(t, data.MonthlyTrends, 4) // Nov, Dec, Jan, Feb
	assert.Equal(t, "November", data.MonthlyTrends[0].Month)
	assert.Equal(t, 2023, data.MonthlyTrends[0].Year)
	assert.Equal(t, "February", data.MonthlyTrends[3].Month)
	assert.Equal(t, 2024, data.MonthlyTrends[3].Year)

	assert.Equal(t, []int{2024, 2023}, data.AvailableYears)
}

func TestGenerate_ExpenseBreakdownSortedDesc(t *testing.T) {
	expenses := &fakeExpenses{expenses: []expense.Expense{
		testExpense(t, "Supplies", 20, day(2024, time.July, 2)),
		testExpense(t, "Payroll", 500, day(2024, time.July, 3)),
		testExpense(t, "Utilities", 120, day(2024, time.July, 4)),
		testExpense(t, "Supplies", 30, day(2024, time.July, 5)),
	}}

	data, err := newService(&fakeOrders{}, expenses).Generate(context.Background(), "2024-07-01", "2024-07-07")
	require.NoError(t, err)

	breakdown := data.ExpenseBreakdown
	require.Len(t, breakdown, 3)
	assert.Equal(t, "Payroll", breakdown[0].Category)
	assert.Equal(t, "Utilities", breakdown[1].Category)
	assert.Equal(t, "Supplies", breakdown[2].Category)
	assert.True(t, decimal.NewFromInt(50).Equal(breakdown[2].Amount))
}

func TestGenerate_WindowFiltersReads(t *testing.T) {
	orders := &fakeOrders{orders: []order.Order{
		testOrder(order.OrderStatusCompleted, order.PaymentMethodCash, "Wash & Fold", 100, 100, day(2024, time.June, 30)),
		testOrder(order.OrderStatusCompleted, order.PaymentMethodCash, "Wash & Fold", 200, 100,
			time.Date(2024, time.July, 7, 23, 30, 0, 0, time.UTC)),
		testOrder(order.OrderStatusCompleted, order.PaymentMethodCash, "Wash & Fold", 400, 100, day(2024, time.July, 8)),
	}}

	data, err := newService(orders, &fakeExpenses{}).Generate(context.Background(), "2024-07-01", "2024-07-07")
	require.NoError(t, err)

	// only the late-evening July 7 order falls inside [start 00:00, end 23:59:59]
	assert.Equal(t, 1, data.Summary.TotalOrders)
	assert.True(t, decimal.NewFromInt(200).Equal(data.Summary.GrossRevenue))
}

func TestGenerate_MalformedDateRejectedBeforeReads(t *testing.T) {
	orders := &fakeOrders{}
	expenses := &fakeExpenses{}
	svc := newService(orders, expenses)

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"bad start", "07/01/2024", "2024-07-07"},
		{"bad end", "2024-07-01", "tomorrow"},
		{"one-sided", "2024-07-01", ""},
		{"inverted", "2024-07-07", "2024-07-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), tt.start, tt.end)
			require.Error(t, err)
			var de *shared.DomainError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, "INVALID_DATE", de.Code)
		})
	}
	assert.Zero(t, orders.calls)
	assert.Zero(t, expenses.calls)
}

func TestGenerate_StoreFailureAborts(t *testing.T) {
	readErr := errors.New("connection reset")

	_, err := newService(&fakeOrders{err: readErr}, &fakeExpenses{}).
		Generate(context.Background(), "2024-07-01", "2024-07-07")
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)

	_, err = newService(&fakeOrders{}, &fakeExpenses{err: readErr}).
		Generate(context.Background(), "2024-07-01", "2024-07-07")
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
}

// fakeCache is a map-backed Cache
type fakeCache struct {
	store map[string]*report.ReportsData
	hits  int
}

func (c *fakeCache) Get(_ context.Context, key string) (*report.ReportsData, bool) {
	d, ok := c.store[key]
	if ok {
		c.hits++
	}
	return d, ok
}

func (c *fakeCache) Set(_ context.Context, key string, data *report.ReportsData) {
	c.store[key] = data
}

func TestGenerate_CacheShortCircuitsReads(t *testing.T) {
	orders := &fakeOrders{}
	expenses := &fakeExpenses{}
	cache := &fakeCache{store: make(map[string]*report.ReportsData)}
	svc := NewService(orders, expenses, cache, zap.NewNop())

	_, err := svc.Generate(context.Background(), "2024-07-01", "2024-07-07")
	require.NoError(t, err)
	require.Equal(t, 1, orders.calls)

	_, err = svc.Generate(context.Background(), "2024-07-01", "2024-07-07")
	require.NoError(t, err)
	assert.Equal(t, 1, orders.calls)
	assert.Equal(t, 1, cache.hits)
}
