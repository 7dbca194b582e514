package queries

import (
	"errors"
	"time"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/pkg/guard"
)

var ErrGetCustomerOrderCountsQueryIsNotConstructed = errors.New(
	"GetCustomerOrderCountsQuery must be created via NewGetCustomerOrderCountsQuery constructor",
)

// GetCustomerOrderCountsQuery retrieves lifetime order counts per account.
type GetCustomerOrderCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCustomerOrderCountsQuery creates a query over the customer order
// count view. This is a parameterless query.
func NewGetCustomerOrderCountsQuery() GetCustomerOrderCountsQuery {
	return GetCustomerOrderCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrderCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrderCountsQueryIsNotConstructed)
}

// CustomerOrderCountResponse represents one account's lifetime ordering
// activity.
type CustomerOrderCountResponse struct {
	Account      kernel.UUID
	OrderCount   int64
	FirstOrderAt time.Time
	LastOrderAt  time.Time
}
