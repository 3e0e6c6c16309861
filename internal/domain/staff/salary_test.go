package staff

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laundrify/backend/internal/domain/shared"
)

func TestNewSalary(t *testing.T) {
	staffID := uuid.New()
	date := time.Date(2026, 8, 15, 13, 45, 0, 0, time.UTC)

	s, err := NewSalary(staffID, date, decimal.NewFromInt(550))
	require.NoError(t, err)

	assert.Equal(t, staffID, s.StaffID)
	assert.Equal(t, 1, s.DaysWorked)
	assert.True(t, decimal.NewFromInt(550).Equal(s.GrossAmount))
	assert.True(t, s.Deductions.IsZero())
	assert.True(t, decimal.NewFromInt(550).Equal(s.NetAmount))
	assert.Equal(t, SalaryUnpaid, s.PaymentStatus)
	assert.Nil(t, s.PaymentDate)
	// time-of-day is dropped from the salary date
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), s.SalaryDate)
}

func TestNewSalary_Validation(t *testing.T) {
	date := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		staffID  uuid.UUID
		date     time.Time
		rate     decimal.Decimal
		wantCode string
	}{
		{"nil staff", uuid.Nil, date, decimal.NewFromInt(550), "INVALID_STAFF"},
		{"zero date", uuid.New(), time.Time{}, decimal.NewFromInt(550), "INVALID_DATE"},
		{"zero rate", uuid.New(), date, decimal.Zero, "INVALID_DAILY_RATE"},
		{"negative rate", uuid.New(), date, decimal.NewFromInt(-100), "INVALID_DAILY_RATE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSalary(tt.staffID, tt.date, tt.rate)
			require.Error(t, err)
			var de *shared.DomainError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.wantCode, de.Code)
		})
	}
}

func TestSalary_MarkPaid(t *testing.T) {
	s, err := NewSalary(uuid.New(), time.Now(), decimal.NewFromInt(550))
	require.NoError(t, err)

	paidAt := time.Now()
	require.NoError(t, s.MarkPaid(paidAt))
	assert.Equal(t, SalaryPaid, s.PaymentStatus)
	require.NotNil(t, s.PaymentDate)
	assert.Equal(t, paidAt, *s.PaymentDate)

	// second payment without an unpay in between is rejected
	err = s.MarkPaid(time.Now())
	require.Error(t, err)
	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "ALREADY_PAID", de.Code)
}

func TestSalary_MarkUnpaid(t *testing.T) {
	s, err := NewSalary(uuid.New(), time.Now(), decimal.NewFromInt(550))
	require.NoError(t, err)
	require.NoError(t, s.MarkPaid(time.Now()))

	s.MarkUnpaid()
	assert.Equal(t, SalaryUnpaid, s.PaymentStatus)
	assert.Nil(t, s.PaymentDate)

	// pay again after unpay succeeds
	require.NoError(t, s.MarkPaid(time.Now()))
}

func TestSalary_Recompute(t *testing.T) {
	s, err := NewSalary(uuid.New(), time.Now(), decimal.NewFromInt(500))
	require.NoError(t, err)

	require.NoError(t, s.Recompute(decimal.NewFromInt(600)))
	assert.True(t, decimal.NewFromInt(600).Equal(s.Rate))
	assert.True(t, decimal.NewFromInt(600).Equal(s.GrossAmount))
	assert.True(t, s.Deductions.IsZero())
	assert.True(t, decimal.NewFromInt(600).Equal(s.NetAmount))
	assert.Equal(t, 1, s.DaysWorked)

	err = s.Recompute(decimal.Zero)
	require.Error(t, err)
	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "INVALID_DAILY_RATE", de.Code)
}

func TestPayrollDescription(t *testing.T) {
	date := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Salary for Ana Reyes on 2026-08-15", PayrollDescription("Ana Reyes", date))
}

func TestNewStaff(t *testing.T) {
	s, err := NewStaff("  Ana Reyes  ", "attendant", decimal.NewFromInt(550))
	require.NoError(t, err)
	assert.Equal(t, "Ana Reyes", s.Name)
	assert.True(t, s.Active)

	_, err = NewStaff("", "attendant", decimal.NewFromInt(550))
	require.Error(t, err)

	_, err = NewStaff("Ana", "attendant", decimal.NewFromInt(-1))
	require.Error(t, err)
}

func TestNewAttendance(t *testing.T) {
	date := time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC)

	a, err := NewAttendance(uuid.New(), date, AttendancePresent)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), a.Date)

	_, err = NewAttendance(uuid.New(), date, AttendanceStatus("late"))
	require.Error(t, err)

	_, err = NewAttendance(uuid.Nil, date, AttendanceAbsent)
	require.Error(t, err)
}
