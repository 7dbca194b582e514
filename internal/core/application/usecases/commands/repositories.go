// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"orderhub/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ItemRepoFactory provides access to the item repository within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ItemUoW manages transactions for item-only operations.
	// Used when commands only modify a single item.
	ItemUoW interface {
		TxManager
		ItemRepoFactory
	}

	// ItemUoWFactory creates new item unit of work instances.
	ItemUoWFactory interface {
		Create() ItemUoW
	}

	// UoW manages transactions across the order and its items.
	// Used for commands that cascade order changes onto items.
	UoW interface {
		TxManager
		OrderRepoFactory
		ItemRepoFactory
	}

	// UoWFactory creates new unit of work instances for cascading operations.
	// Each cascade step gets its own instance so one failed step cannot
	// poison the transaction of the next.
	UoWFactory interface {
		Create() UoW
	}
)
