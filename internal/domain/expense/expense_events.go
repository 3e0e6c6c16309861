package expense

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/laundrify/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeExpense = "Expense"

// Event type constants
const (
	EventTypeExpenseRecorded = "ExpenseRecorded"
)

// ExpenseRecordedEvent is raised when an expense entry is recorded
type ExpenseRecordedEvent struct {
	shared.BaseDomainEvent
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	IncurredOn time.Time       `json:"incurred_on"`
}

// NewExpenseRecordedEvent creates a new ExpenseRecordedEvent
func NewExpenseRecordedEvent(e *Expense) *ExpenseRecordedEvent {
	return &ExpenseRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeExpenseRecorded, AggregateTypeExpense, e.ID),
		Category:        e.Category,
		Amount:          e.Amount,
		IncurredOn:      e.IncurredOn,
	}
}

// EventType returns the event type name
func (e *ExpenseRecordedEvent) EventType() string {
	return EventTypeExpenseRecorded
}
