package staff

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/laundrify/backend/internal/domain/shared"
)

// SalaryPaymentStatus represents whether a salary record has been paid out
type SalaryPaymentStatus string

const (
	SalaryUnpaid SalaryPaymentStatus = "unpaid"
	SalaryPaid   SalaryPaymentStatus = "paid"
)

// IsValid checks if the status is a valid SalaryPaymentStatus
func (s SalaryPaymentStatus) IsValid() bool {
	return s == SalaryUnpaid || s == SalaryPaid
}

// String returns the string representation of SalaryPaymentStatus
func (s SalaryPaymentStatus) String() string {
	return string(s)
}

// Salary ties a staff member and a calendar date to a computed pay amount.
// At most one row exists per (staff, date); settlement upserts on that key.
type Salary struct {
	shared.BaseEntity
	StaffID       uuid.UUID
	SalaryDate    time.Time
	DaysWorked    int
	Rate          decimal.Decimal
	GrossAmount   decimal.Decimal
	Deductions    decimal.Decimal
	NetAmount     decimal.Decimal
	PaymentStatus SalaryPaymentStatus
	PaymentDate   *time.Time
}

// NewSalary computes a salary record for one attendance day.
// One settlement always covers a single day, so gross equals the rate.
func NewSalary(staffID uuid.UUID, date time.Time, dailyRate decimal.Decimal) (*Salary, error) {
	if staffID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STAFF", "Staff ID cannot be empty")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Salary date is required")
	}
	if dailyRate.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_DAILY_RATE", "Staff member has no valid daily rate")
	}

	daysWorked := 1
	gross := dailyRate.Mul(decimal.NewFromInt(int64(daysWorked)))
	deductions := decimal.Zero

	return &Salary{
		BaseEntity:    shared.NewBaseEntity(),
		StaffID:       staffID,
		SalaryDate:    truncateToDate(date),
		DaysWorked:    daysWorked,
		Rate:          dailyRate,
		GrossAmount:   gross,
		Deductions:    deductions,
		NetAmount:     gross.Sub(deductions),
		PaymentStatus: SalaryUnpaid,
	}, nil
}

// Recompute rebuilds the pay amounts from the given daily rate, keeping
// the row's identity and payment state. Settlement calls this so a rate
// change between reversal and re-payment lands in the new amounts.
func (s *Salary) Recompute(dailyRate decimal.Decimal) error {
	if dailyRate.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_DAILY_RATE", "Staff member has no valid daily rate")
	}
	gross := dailyRate.Mul(decimal.NewFromInt(int64(s.DaysWorked)))
	s.Rate = dailyRate
	s.GrossAmount = gross
	s.Deductions = decimal.Zero
	s.NetAmount = gross.Sub(s.Deductions)
	s.UpdatedAt = time.Now()
	return nil
}

// IsPaid reports whether this salary has been paid out
func (s *Salary) IsPaid() bool {
	return s.PaymentStatus == SalaryPaid
}

// MarkPaid marks the salary as paid at the given time.
// Paying an already-paid salary is a guard violation.
func (s *Salary) MarkPaid(at time.Time) error {
	if s.IsPaid() {
		return shared.NewDomainError("ALREADY_PAID", "Salary for this date has already been paid")
	}
	s.PaymentStatus = SalaryPaid
	s.PaymentDate = &at
	s.UpdatedAt = time.Now()
	return nil
}

// MarkUnpaid reverses a payment, clearing the payment timestamp
func (s *Salary) MarkUnpaid() {
	s.PaymentStatus = SalaryUnpaid
	s.PaymentDate = nil
	s.UpdatedAt = time.Now()
}

// PayrollDescription builds the expense description that links a salary
// payment to its payroll expense row. Reversal deletes the expense by
// matching this exact string, so both sides must build it identically.
func PayrollDescription(staffName string, date time.Time) string {
	return fmt.Sprintf("Salary for %s on %s", staffName, date.Format("2006-01-02"))
}
