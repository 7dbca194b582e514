package item

import (
	"errors"
	"fmt"
	"time"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through NewItem or RestoreItem. This ensures all items are
	// properly validated.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")
)

// Item is one line of an order. It is exclusively owned by its order and
// identified by the composite key (order id, PLU): the product lookup code
// is unique only within its parent order, not globally.
//
// Item maintains these invariants:
//   - Quantity is at least 1
//   - Its status always equals the status of the most recently appended
//     history entry
//   - The history is never empty: one initial entry is recorded at
//     creation time
type Item struct {
	orderID  kernel.UUID
	plu      string
	name     string
	quantity int
	status   Status

	statusHistory []StatusHistoryEntry

	guard guard.ConstructorGuard
}

// NewItem creates an item for a new order with an initial history entry
// synthesized from the creation status at the given time.
func NewItem(
	orderID kernel.UUID,
	plu string,
	name string,
	quantity int,
	status Status,
	now time.Time,
) (*Item, error) {
	initial, err := NewStatusHistoryEntry(status, now)
	if err != nil {
		return nil, err
	}

	return RestoreItem(orderID, plu, name, quantity, status, []StatusHistoryEntry{initial})
}

// RestoreItem reconstructs an item from persistence. The history must be
// non-empty, ordered by timestamp, and end with the current status.
func RestoreItem(
	orderID kernel.UUID,
	plu string,
	name string,
	quantity int,
	status Status,
	statusHistory []StatusHistoryEntry,
) (*Item, error) {
	it := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		it.setOrderID(orderID),
		it.setPLU(plu),
		it.setName(name),
		it.setQuantity(quantity),
		it.setStatus(status),
		it.setStatusHistory(status, statusHistory),
	); err != nil {
		return nil, err
	}

	return it, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items by their composite identity.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.orderID.IsEqual(other.orderID) && i.plu == other.plu
}

// OrderID returns the identifier of the owning order.
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// PLU returns the product lookup code, unique within the owning order.
func (i *Item) PLU() string {
	return i.plu
}

// Name returns the product name as sent by the channel.
func (i *Item) Name() string {
	return i.name
}

// Quantity returns how many units were ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// Status returns the current status of the item.
func (i *Item) Status() Status {
	return i.status
}

// StatusHistory returns the append-only audit trail, oldest first. The
// last entry always carries the current status.
func (i *Item) StatusHistory() []StatusHistoryEntry {
	return i.statusHistory
}

// ChangeStatus transitions the item to newStatus at the given server time,
// appending one history entry. The projection field and the history never
// diverge.
func (i *Item) ChangeStatus(newStatus Status, at time.Time) error {
	entry, err := NewStatusHistoryEntry(newStatus, at)
	if err != nil {
		return err
	}

	i.status = newStatus
	i.statusHistory = append(i.statusHistory, entry)
	return nil
}

func (i *Item) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

func (i *Item) setPLU(plu string) error {
	if plu == "" {
		return errs.NewValueIsRequiredError("item plu")
	}
	i.plu = plu
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is not greater than or equal to 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	i.status = status
	return nil
}

func (i *Item) setStatusHistory(status Status, history []StatusHistoryEntry) error {
	if len(history) == 0 {
		return errs.NewValueIsRequiredError("item status history")
	}

	for idx, entry := range history {
		if err := entry.Validate(); err != nil {
			return err
		}
		if idx > 0 && entry.Timestamp().Before(history[idx-1].Timestamp()) {
			return errs.NewValueIsInvalidErrorWithCause("item status history",
				errors.New("timestamps must be non-decreasing"))
		}
	}

	if last := history[len(history)-1]; last.Status() != status {
		return errs.NewValueIsInvalidErrorWithCause("item status history",
			fmt.Errorf("last history status %s does not match item status %s", last.Status(), status))
	}

	i.statusHistory = history
	return nil
}
