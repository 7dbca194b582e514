package order

import (
	"errors"
	"time"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/guard"
)

var (
	ErrStatusHistoryEntryIsNotConstructed = errors.New(
		"StatusHistoryEntry must be created via NewStatusHistoryEntry or RestoreStatusHistoryEntry",
	)
)

// StatusHistoryEntry is one append-only audit record of a status the order
// has held. Entries are never updated or deleted individually, only
// appended.
type StatusHistoryEntry struct {
	id        kernel.UUID
	status    Status
	timestamp time.Time

	guard guard.ConstructorGuard
}

// NewStatusHistoryEntry creates a history entry for a status transition,
// assigning it a fresh surrogate identifier. The timestamp is the server
// time of the transition, or the caller-supplied seed time at creation.
func NewStatusHistoryEntry(status Status, timestamp time.Time) (StatusHistoryEntry, error) {
	return RestoreStatusHistoryEntry(kernel.NewUUID(), status, timestamp)
}

// RestoreStatusHistoryEntry reconstructs a history entry from persistence.
func RestoreStatusHistoryEntry(id kernel.UUID, status Status, timestamp time.Time) (StatusHistoryEntry, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
	); err != nil {
		return StatusHistoryEntry{}, err
	}

	if timestamp.IsZero() {
		return StatusHistoryEntry{}, errs.NewValueIsRequiredError("status history timestamp")
	}

	return StatusHistoryEntry{
		id:        id,
		status:    status,
		timestamp: timestamp,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the entry was created through a constructor.
func (e StatusHistoryEntry) Validate() error {
	return e.guard.Validate(ErrStatusHistoryEntryIsNotConstructed)
}

// ID returns the surrogate identifier of the entry.
func (e StatusHistoryEntry) ID() kernel.UUID {
	return e.id
}

// Status returns the status the order held from Timestamp on.
func (e StatusHistoryEntry) Status() Status {
	return e.status
}

// Timestamp returns the moment of the transition.
func (e StatusHistoryEntry) Timestamp() time.Time {
	return e.timestamp
}
