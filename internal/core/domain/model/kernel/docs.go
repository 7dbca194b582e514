// Package kernel provides core domain primitives shared across the order
// hub domain model.
//
// The package currently contains UUID, a value object for unique
// identifiers with validation and comparison capabilities. It enforces
// construction through factory functions so that identifiers are always in
// a valid state, and it is immutable and safe for concurrent use.
package kernel
