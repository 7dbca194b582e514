package ports

import (
	"context"

	"orderhub/internal/core/domain/model/item"
	"orderhub/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for order items
// addressed by their composite key (order id, PLU).
type ItemRepository interface {
	// Get retrieves a single item of an order by its PLU.
	Get(ctx context.Context, orderID kernel.UUID, plu string) (*item.Item, error)

	// GetForUpdate retrieves an item and locks its row for the duration
	// of the surrounding transaction.
	GetForUpdate(ctx context.Context, orderID kernel.UUID, plu string) (*item.Item, error)

	// Update persists changes to an existing item.
	Update(ctx context.Context, aggregate *item.Item) error
}
