package commands

import (
	"errors"

	"orderhub/internal/core/domain/model/item"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/pkg/guard"
)

var (
	ErrUpdateItemStatusCommandIsNotConstructed = errors.New(
		"UpdateItemStatusCommand must be created via NewUpdateItemStatusCommand constructor",
	)
	ErrPLUIsRequired = errors.New("plu is required")
)

// UpdateItemStatusCommand represents a request to transition a single item
// of an order to a new status. The owning order is not touched.
type UpdateItemStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	plu     string
	status  item.Status

	guard guard.ConstructorGuard
}

// NewUpdateItemStatusCommand creates a command to transition one item.
// Validates that the order ID, PLU, and target status are valid.
func NewUpdateItemStatusCommand(orderID kernel.UUID, plu string, status item.Status) (UpdateItemStatusCommand, error) {
	cmd := UpdateItemStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPLU(plu),
		cmd.setStatus(status),
	); err != nil {
		return UpdateItemStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateItemStatusCommandIsNotConstructed if validation fails.
func (c UpdateItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the owning order.
func (c UpdateItemStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PLU returns the product lookup code of the item to transition.
func (c UpdateItemStatusCommand) PLU() string {
	return c.plu
}

// Status returns the target status.
func (c UpdateItemStatusCommand) Status() item.Status {
	return c.status
}

func (c *UpdateItemStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateItemStatusCommand) setPLU(plu string) error {
	if plu == "" {
		return ErrPLUIsRequired
	}

	c.plu = plu
	return nil
}

func (c *UpdateItemStatusCommand) setStatus(status item.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
