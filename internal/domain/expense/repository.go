package expense

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/laundrify/backend/internal/domain/shared"
)

// Repository defines the interface for expense persistence
type Repository interface {
	// FindByID finds an expense by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)

	// FindAll finds expenses with filtering and pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]Expense, error)

	// FindByIncurredRange finds expenses incurred within [start, end] inclusive.
	// A zero start or end leaves that bound open.
	FindByIncurredRange(ctx context.Context, start, end time.Time) ([]Expense, error)

	// Save creates or updates an expense
	Save(ctx context.Context, e *Expense) error

	// Delete deletes an expense
	Delete(ctx context.Context, id uuid.UUID) error

	// DeletePayrollEntry deletes the payroll expense matching the given
	// incurred date and exact description. Returns nil when no row matches.
	DeletePayrollEntry(ctx context.Context, incurredOn time.Time, description string) error

	// Count counts expenses matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
