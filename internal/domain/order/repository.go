package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/laundrify/backend/internal/domain/shared"
)

// Repository defines the interface for order persistence
type Repository interface {
	// FindByID finds an order by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByOrderNumber finds an order by its order number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)

	// FindAll finds orders with filtering and pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// FindByCreatedRange finds orders created within [start, end] inclusive.
	// A zero start or end leaves that bound open.
	FindByCreatedRange(ctx context.Context, start, end time.Time) ([]Order, error)

	// Save creates or updates an order together with its loads and add-ons
	Save(ctx context.Context, o *Order) error

	// Delete deletes an order
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// GenerateOrderNumber produces the next order number for intake
	GenerateOrderNumber(ctx context.Context) (string, error)
}
