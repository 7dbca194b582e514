package queries

import (
	"errors"

	"orderhub/internal/pkg/guard"
)

var ErrGetItemStatusDurationsQueryIsNotConstructed = errors.New(
	"GetItemStatusDurationsQuery must be created via NewGetItemStatusDurationsQuery constructor",
)

// GetItemStatusDurationsQuery retrieves the average time items spend in
// each non-terminal status, computed from the item status history.
type GetItemStatusDurationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetItemStatusDurationsQuery creates a query over the item status
// duration view. This is a parameterless query.
func NewGetItemStatusDurationsQuery() GetItemStatusDurationsQuery {
	return GetItemStatusDurationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetItemStatusDurationsQuery) Validate() error {
	return q.guard.Validate(ErrGetItemStatusDurationsQueryIsNotConstructed)
}
