package queries

import (
	"context"

	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/ports"
)

// ListOrdersQueryHandler retrieves orders matching a filter, most recently
// created first. Reads through the repository on the base connection,
// without opening a transaction.
type ListOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewListOrdersQueryHandler creates a handler for order list retrieval.
func NewListOrdersQueryHandler(uowFactory ports.UnitOfWorkFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query. An empty result is a valid outcome, not an
// error.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.uowFactory.Create().OrderRepository().List(ctx, ports.OrderFilter{
		Status:  query.Status(),
		Account: query.Account(),
		From:    query.From(),
		To:      query.To(),
	})
}
