package queries

import (
	"errors"
	"time"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders matching optional filters. Nil filters
// are ignored; set filters combine as a conjunction. From and To bound the
// creation time as an inclusive interval [From, To].
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	status  *order.Status
	account *kernel.UUID
	from    *time.Time
	to      *time.Time

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query over the order list. All filters are
// optional; set filters are validated.
func NewListOrdersQuery(
	status *order.Status,
	account *kernel.UUID,
	from *time.Time,
	to *time.Time,
) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setStatus(status),
		q.setAccount(account),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	q.from = from
	q.to = to
	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, nil when unset.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// Account returns the account filter, nil when unset.
func (q ListOrdersQuery) Account() *kernel.UUID {
	return q.account
}

// From returns the inclusive lower creation time bound, nil when unset.
func (q ListOrdersQuery) From() *time.Time {
	return q.from
}

// To returns the inclusive upper creation time bound, nil when unset.
func (q ListOrdersQuery) To() *time.Time {
	return q.to
}

func (q *ListOrdersQuery) setStatus(status *order.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	q.status = status
	return nil
}

func (q *ListOrdersQuery) setAccount(account *kernel.UUID) error {
	if account != nil {
		if err := account.Validate(); err != nil {
			return err
		}
	}

	q.account = account
	return nil
}
