package order

import (
	"orderhub/internal/pkg/errs"
)

// Status represents the lifecycle state of an order as reported by the
// aggregation channels.
//
// Ordinal values are stable and are the wire representation accepted on
// input; names are the wire representation on output. Transitions are not
// validated against a graph: any status value may follow any other, because
// the upstream channels do not guarantee ordering of their callbacks.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status when an order arrives from a channel.
	Received

	// Preparing indicates the kitchen has started working on the order.
	Preparing

	// Ready indicates the order is ready for pickup.
	Ready

	// PickedUp indicates the courier or customer has collected the order.
	PickedUp

	// Cancelled indicates the order was cancelled.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Received:  "RECEIVED",
		Preparing: "PREPARING",
		Ready:     "READY",
		PickedUp:  "PICKED_UP",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:  "RECEIVED",
		Preparing: "PREPARING",
		Ready:     "READY",
		PickedUp:  "PICKED_UP",
		Cancelled: "CANCELLED",
	}
}

// StatusFromOrdinal converts a raw ordinal received on the wire into a
// Status. Out-of-range ordinals are rejected with a descriptive error so
// the core never handles raw integers.
func StatusFromOrdinal(v int) (Status, error) {
	s := Status(v)
	if err := s.Validate(); err != nil {
		return Unknown, errs.NewValueIsOutOfRangeError("order status", v, int(Received), int(Cancelled))
	}
	return s, nil
}

// Ordinal returns the stable numeric value of the status.
func (s Status) Ordinal() int {
	return int(s)
}

// Validate checks if the Status value is valid.
// Valid statuses are Received through Cancelled; Unknown (0) and any other
// values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsOutOfRangeError("order status", int(s), int(Received), int(Cancelled))
	}
	return nil
}

// String returns the wire name of the status, e.g. "RECEIVED".
// Returns "UNKNOWN" for invalid status values. Implements fmt.Stringer and
// is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
