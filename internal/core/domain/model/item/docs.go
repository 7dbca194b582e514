// Package item contains the Item entity and its status lifecycle. Items
// are exclusively owned by an order and identified by the composite key
// (order id, PLU). Every status an item has held is kept as an append-only
// history entry, and the current status projection is guaranteed to match
// the most recent entry.
package item
