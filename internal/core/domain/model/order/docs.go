// Package order contains the Order aggregate root: the order itself, its
// customer and delivery address value objects, its status enumeration, and
// its append-only status history.
//
// An Order together with its owned items and history records forms one
// consistency boundary for creation: either the full aggregate exists or
// none of it does. Status transitions append a history entry and mutate
// the projection field in the same operation, so the two can never
// diverge.
package order
