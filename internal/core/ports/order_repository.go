package ports

import (
	"context"
	"time"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
)

// OrderFilter narrows List results. Nil fields are ignored; set fields
// combine as a conjunction. From and To bound the creation time as an
// inclusive interval [From, To].
type OrderFilter struct {
	Status  *order.Status
	Account *kernel.UUID
	From    *time.Time
	To      *time.Time
}

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// together with their items and status histories.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items and status histories.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate and locks its row for the
	// duration of the surrounding transaction. Used by status transition
	// workflows to serialize concurrent updates of the same order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List retrieves orders matching the filter, most recently created
	// first.
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)
}
