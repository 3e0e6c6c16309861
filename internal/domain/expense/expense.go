package expense

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/laundrify/backend/internal/domain/shared"
)

// PayrollCategory is the reserved category name for payroll expenses.
// Expenses carrying this category are excluded from general operating
// expenses and reported as payroll instead.
const PayrollCategory = "Payroll"

const (
	maxCategoryLength    = 50
	maxDescriptionLength = 200
)

// Expense represents a single ledger entry: an operating cost or a
// payroll payment, dated by the day it was incurred.
type Expense struct {
	shared.BaseAggregateRoot
	Category    string
	Description string
	Amount      decimal.Decimal
	IncurredOn  time.Time
	Notes       string
	CreatedBy   string
}

// NewExpense creates a new expense entry
func NewExpense(category, description string, amount decimal.Decimal, incurredOn time.Time, notes, createdBy string) (*Expense, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Expense category is required")
	}
	if len(category) > maxCategoryLength {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Expense category is too long")
	}
	if len(description) > maxDescriptionLength {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Expense description is too long")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount must be positive")
	}
	if incurredOn.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Expense date is required")
	}

	e := &Expense{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Category:          category,
		Description:       description,
		Amount:            amount,
		IncurredOn:        incurredOn,
		Notes:             notes,
		CreatedBy:         createdBy,
	}
	e.AddDomainEvent(NewExpenseRecordedEvent(e))
	return e, nil
}

// IsPayroll reports whether this entry is a payroll expense
func (e Expense) IsPayroll() bool {
	return e.Category == PayrollCategory
}
