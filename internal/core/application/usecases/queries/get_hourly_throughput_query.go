package queries

import (
	"errors"
	"time"

	"orderhub/internal/pkg/guard"
)

var ErrGetHourlyThroughputQueryIsNotConstructed = errors.New(
	"GetHourlyThroughputQuery must be created via NewGetHourlyThroughputQuery constructor",
)

// GetHourlyThroughputQuery retrieves the number of orders created per hour.
type GetHourlyThroughputQuery struct {
	guard guard.ConstructorGuard
}

// NewGetHourlyThroughputQuery creates a query over the hourly throughput
// view. This is a parameterless query.
func NewGetHourlyThroughputQuery() GetHourlyThroughputQuery {
	return GetHourlyThroughputQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetHourlyThroughputQuery) Validate() error {
	return q.guard.Validate(ErrGetHourlyThroughputQueryIsNotConstructed)
}

// HourlyThroughputResponse represents the order count for one hour bucket.
type HourlyThroughputResponse struct {
	Hour       time.Time
	OrderCount int64
}
