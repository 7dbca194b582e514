package item

import (
	"orderhub/internal/pkg/errs"
)

// Status represents the lifecycle state of a single order line item.
//
// The ordinals deliberately mirror the order-level statuses so that a
// cascading order transition maps onto items positionally: PickedUp and
// Cancelled extend the original three kitchen states to cover the order's
// terminal states. Like order statuses, transitions are not validated
// against a graph.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Ordered is the initial status of an item when its order is created.
	Ordered

	// Preparing indicates the kitchen has started working on the item.
	Preparing

	// Ready indicates the item is ready to be bagged.
	Ready

	// PickedUp mirrors the order-level terminal state of the same ordinal.
	PickedUp

	// Cancelled mirrors the order-level terminal state of the same ordinal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Ordered:   "ORDERED",
		Preparing: "PREPARING",
		Ready:     "READY",
		PickedUp:  "PICKED_UP",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Ordered:   "ORDERED",
		Preparing: "PREPARING",
		Ready:     "READY",
		PickedUp:  "PICKED_UP",
		Cancelled: "CANCELLED",
	}
}

// StatusFromOrdinal converts a raw ordinal received on the wire into a
// Status, rejecting out-of-range values.
func StatusFromOrdinal(v int) (Status, error) {
	s := Status(v)
	if err := s.Validate(); err != nil {
		return Unknown, errs.NewValueIsOutOfRangeError("item status", v, int(Ordered), int(Cancelled))
	}
	return s, nil
}

// Ordinal returns the stable numeric value of the status.
func (s Status) Ordinal() int {
	return int(s)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsOutOfRangeError("item status", int(s), int(Ordered), int(Cancelled))
	}
	return nil
}

// String returns the wire name of the status, e.g. "ORDERED".
// Returns "UNKNOWN" for invalid status values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
