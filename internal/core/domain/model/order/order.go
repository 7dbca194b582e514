package order

import (
	"errors"
	"fmt"
	"time"

	"orderhub/internal/core/domain/model/item"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrDuplicatePLU is returned when two items of the same order carry
	// the same product lookup code.
	ErrDuplicatePLU = errors.New("order items must have unique plu values")
)

// Order is the aggregate root of the order lifecycle. It owns its line
// items and its status history, and together with them forms one
// consistency boundary for creation.
//
// Order maintains these invariants:
//   - Its status always equals the status of the most recently appended
//     history entry
//   - The history is never empty and its timestamps are non-decreasing
//   - No two items share a PLU
//   - The identifier is caller-supplied and immutable after creation
type Order struct {
	id             kernel.UUID
	account        kernel.UUID
	brandID        kernel.UUID
	channelOrderID string

	customer        Customer
	deliveryAddress DeliveryAddress
	pickupTime      time.Time

	status    Status
	createdAt time.Time
	updatedAt time.Time

	items         []*item.Item
	statusHistory []StatusHistoryEntry

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order aggregate at server time now. When
// seedHistory is empty a single initial entry is synthesized from the
// creation status; otherwise the seed entries are kept with their
// caller-supplied timestamps and must end with the creation status so the
// history invariant holds from the first moment.
func NewOrder(
	id kernel.UUID,
	account kernel.UUID,
	brandID kernel.UUID,
	channelOrderID string,
	customer Customer,
	deliveryAddress DeliveryAddress,
	pickupTime time.Time,
	status Status,
	seedHistory []StatusHistoryEntry,
	items []*item.Item,
	now time.Time,
) (*Order, error) {
	history := seedHistory
	if len(history) == 0 {
		initial, err := NewStatusHistoryEntry(status, now)
		if err != nil {
			return nil, err
		}
		history = []StatusHistoryEntry{initial}
	}

	return RestoreOrder(
		id, account, brandID, channelOrderID,
		customer, deliveryAddress, pickupTime,
		status, now, now, history, items,
	)
}

// RestoreOrder reconstructs an Order from persistence. The same invariants
// as NewOrder apply; the timestamps are taken as-is.
func RestoreOrder(
	id kernel.UUID,
	account kernel.UUID,
	brandID kernel.UUID,
	channelOrderID string,
	customer Customer,
	deliveryAddress DeliveryAddress,
	pickupTime time.Time,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	statusHistory []StatusHistoryEntry,
	items []*item.Item,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setAccount(account),
		o.setBrandID(brandID),
		o.setChannelOrderID(channelOrderID),
		o.setCustomer(customer),
		o.setDeliveryAddress(deliveryAddress),
		o.setPickupTime(pickupTime),
		o.setStatus(status),
		o.setStatusHistory(status, statusHistory),
		o.setItems(id, items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed. This
// prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's caller-supplied unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Account returns the customer/tenant identifier used for filtering.
func (o *Order) Account() kernel.UUID {
	return o.account
}

// BrandID returns the identifier of the brand the order was placed with.
func (o *Order) BrandID() kernel.UUID {
	return o.brandID
}

// ChannelOrderID returns the order's identifier on the originating channel.
func (o *Order) ChannelOrderID() string {
	return o.channelOrderID
}

// Customer returns the embedded customer value object.
func (o *Order) Customer() Customer {
	return o.customer
}

// DeliveryAddress returns the embedded delivery address value object.
func (o *Order) DeliveryAddress() DeliveryAddress {
	return o.deliveryAddress
}

// PickupTime returns when the order should be picked up.
func (o *Order) PickupTime() time.Time {
	return o.pickupTime
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the server-assigned creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Items returns the order's line items in PLU order.
func (o *Order) Items() []*item.Item {
	return o.items
}

// StatusHistory returns the append-only audit trail, oldest first. The
// last entry always carries the current status.
func (o *Order) StatusHistory() []StatusHistoryEntry {
	return o.statusHistory
}

// ChangeStatus transitions the order to newStatus at the given server
// time, appending one history entry and refreshing the updated-at
// timestamp. The projection field and the history never diverge.
//
// Transitions are deliberately unconstrained: a cancelled order may move
// back to received because upstream channels replay callbacks out of
// order.
func (o *Order) ChangeStatus(newStatus Status, at time.Time) error {
	entry, err := NewStatusHistoryEntry(newStatus, at)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.statusHistory = append(o.statusHistory, entry)
	o.updatedAt = at
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setAccount(account kernel.UUID) error {
	if err := account.Validate(); err != nil {
		return err
	}
	o.account = account
	return nil
}

func (o *Order) setBrandID(brandID kernel.UUID) error {
	if err := brandID.Validate(); err != nil {
		return err
	}
	o.brandID = brandID
	return nil
}

func (o *Order) setChannelOrderID(channelOrderID string) error {
	if channelOrderID == "" {
		return errs.NewValueIsRequiredError("channel order id")
	}
	o.channelOrderID = channelOrderID
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress DeliveryAddress) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setPickupTime(pickupTime time.Time) error {
	if pickupTime.IsZero() {
		return errs.NewValueIsRequiredError("pickup time")
	}
	o.pickupTime = pickupTime
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setStatusHistory(status Status, history []StatusHistoryEntry) error {
	if len(history) == 0 {
		return errs.NewValueIsRequiredError("order status history")
	}

	for idx, entry := range history {
		if err := entry.Validate(); err != nil {
			return err
		}
		if idx > 0 && entry.Timestamp().Before(history[idx-1].Timestamp()) {
			return errs.NewValueIsInvalidErrorWithCause("order status history",
				errors.New("timestamps must be non-decreasing"))
		}
	}

	if last := history[len(history)-1]; last.Status() != status {
		return errs.NewValueIsInvalidErrorWithCause("order status history",
			fmt.Errorf("last history status %s does not match order status %s", last.Status(), status))
	}

	o.statusHistory = history
	return nil
}

func (o *Order) setItems(id kernel.UUID, items []*item.Item) error {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return err
		}
		if !it.OrderID().IsEqual(id) {
			return errs.NewValueIsInvalidErrorWithCause("order items",
				fmt.Errorf("item %s belongs to order %s", it.PLU(), it.OrderID()))
		}
		if _, ok := seen[it.PLU()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("order items", ErrDuplicatePLU)
		}
		seen[it.PLU()] = struct{}{}
	}

	o.items = items
	return nil
}
