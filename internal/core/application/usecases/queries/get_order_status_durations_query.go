package queries

import (
	"errors"

	"orderhub/internal/pkg/guard"
)

var ErrGetOrderStatusDurationsQueryIsNotConstructed = errors.New(
	"GetOrderStatusDurationsQuery must be created via NewGetOrderStatusDurationsQuery constructor",
)

// GetOrderStatusDurationsQuery retrieves the average time orders spend in
// each non-terminal status, computed from the order status history.
type GetOrderStatusDurationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatusDurationsQuery creates a query over the order status
// duration view. This is a parameterless query.
func NewGetOrderStatusDurationsQuery() GetOrderStatusDurationsQuery {
	return GetOrderStatusDurationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusDurationsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusDurationsQueryIsNotConstructed)
}

// StatusDurationResponse represents the average dwell time in one status.
// The figures are as fresh as the last analytics refresh, not live.
type StatusDurationResponse struct {
	Status             string
	AvgDurationSeconds float64
}
