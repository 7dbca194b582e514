package queries

import (
	"context"

	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/ports"
)

// GetOrderQueryHandler retrieves a single order aggregate. Reads through
// the repository on the base connection, without opening a transaction.
type GetOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetOrderQueryHandler creates a handler for single order retrieval.
func NewGetOrderQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query. Returns a not-found error when no order with
// the given identifier exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.uowFactory.Create().OrderRepository().Get(ctx, query.OrderID())
}
