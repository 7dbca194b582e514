package commands

import (
	"errors"
	"fmt"
	"time"

	"orderhub/internal/core/domain/model/item"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrChannelOrderIDIsRequired = errors.New("channel order id is required")
	ErrCustomerIsRequired       = errors.New("customer name and phone number are required")
	ErrAddressIsRequired        = errors.New("delivery city, street and postal code are required")
	ErrPickupTimeIsRequired     = errors.New("pickup time is required")
)

// NewOrderItem describes one line item of an order being created.
// Status defaults to Ordered when left unset.
type NewOrderItem struct {
	PLU      string
	Name     string
	Quantity int
	Status   item.Status
}

// StatusSeed is one caller-supplied history entry recorded before the order
// reached this system. Channels replay their own audit trail through these.
type StatusSeed struct {
	Status    order.Status
	Timestamp time.Time
}

// CreateOrderCommand represents a request to register an incoming channel
// order with its items and optional seed history.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), accountID, brandID, "wolt-123",
//	    "Alice Smith", "+358401234567",
//	    "Helsinki", "Mannerheimintie 1", "00100",
//	    pickupTime, order.Received, nil,
//	    []NewOrderItem{{PLU: "plu-1", Name: "Pizza", Quantity: 2, Status: item.Ordered}},
//	)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	account        kernel.UUID
	brandID        kernel.UUID
	channelOrderID string

	customerName        string
	customerPhoneNumber string

	deliveryCity       string
	deliveryStreet     string
	deliveryPostalCode string

	pickupTime  time.Time
	status      order.Status
	seedHistory []StatusSeed
	items       []NewOrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register an incoming order.
// Validates identifiers, required fields, the creation status, every seed
// history entry, and every item. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	account kernel.UUID,
	brandID kernel.UUID,
	channelOrderID string,
	customerName string,
	customerPhoneNumber string,
	deliveryCity string,
	deliveryStreet string,
	deliveryPostalCode string,
	pickupTime time.Time,
	status order.Status,
	seedHistory []StatusSeed,
	items []NewOrderItem,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAccount(account),
		cmd.setBrandID(brandID),
		cmd.setChannelOrderID(channelOrderID),
		cmd.setCustomer(customerName, customerPhoneNumber),
		cmd.setDeliveryAddress(deliveryCity, deliveryStreet, deliveryPostalCode),
		cmd.setPickupTime(pickupTime),
		cmd.setStatus(status),
		cmd.setSeedHistory(seedHistory),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the caller-supplied unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Account returns the customer/tenant identifier.
func (c CreateOrderCommand) Account() kernel.UUID {
	return c.account
}

// BrandID returns the identifier of the brand the order was placed with.
func (c CreateOrderCommand) BrandID() kernel.UUID {
	return c.brandID
}

// ChannelOrderID returns the order's identifier on the originating channel.
func (c CreateOrderCommand) ChannelOrderID() string {
	return c.channelOrderID
}

// CustomerName returns the ordering customer's display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhoneNumber returns the ordering customer's phone number.
func (c CreateOrderCommand) CustomerPhoneNumber() string {
	return c.customerPhoneNumber
}

// DeliveryCity returns the delivery city.
func (c CreateOrderCommand) DeliveryCity() string {
	return c.deliveryCity
}

// DeliveryStreet returns the delivery street.
func (c CreateOrderCommand) DeliveryStreet() string {
	return c.deliveryStreet
}

// DeliveryPostalCode returns the delivery postal code.
func (c CreateOrderCommand) DeliveryPostalCode() string {
	return c.deliveryPostalCode
}

// PickupTime returns when the order should be picked up.
func (c CreateOrderCommand) PickupTime() time.Time {
	return c.pickupTime
}

// Status returns the status the order is created in.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

// SeedHistory returns the caller-supplied history entries, possibly empty.
func (c CreateOrderCommand) SeedHistory() []StatusSeed {
	return c.seedHistory
}

// Items returns the line items of the order.
func (c CreateOrderCommand) Items() []NewOrderItem {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setAccount(account kernel.UUID) error {
	if err := account.Validate(); err != nil {
		return err
	}

	c.account = account
	return nil
}

func (c *CreateOrderCommand) setBrandID(brandID kernel.UUID) error {
	if err := brandID.Validate(); err != nil {
		return err
	}

	c.brandID = brandID
	return nil
}

func (c *CreateOrderCommand) setChannelOrderID(channelOrderID string) error {
	if channelOrderID == "" {
		return ErrChannelOrderIDIsRequired
	}

	c.channelOrderID = channelOrderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(name, phoneNumber string) error {
	if name == "" || phoneNumber == "" {
		return ErrCustomerIsRequired
	}

	c.customerName = name
	c.customerPhoneNumber = phoneNumber
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(city, street, postalCode string) error {
	if city == "" || street == "" || postalCode == "" {
		return ErrAddressIsRequired
	}

	c.deliveryCity = city
	c.deliveryStreet = street
	c.deliveryPostalCode = postalCode
	return nil
}

func (c *CreateOrderCommand) setPickupTime(pickupTime time.Time) error {
	if pickupTime.IsZero() {
		return ErrPickupTimeIsRequired
	}

	c.pickupTime = pickupTime
	return nil
}

func (c *CreateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *CreateOrderCommand) setSeedHistory(seedHistory []StatusSeed) error {
	for idx, seed := range seedHistory {
		if err := seed.Status.Validate(); err != nil {
			return fmt.Errorf("seed history entry %d: %w", idx, err)
		}
		if seed.Timestamp.IsZero() {
			return fmt.Errorf("seed history entry %d: timestamp is required", idx)
		}
	}

	c.seedHistory = seedHistory
	return nil
}

func (c *CreateOrderCommand) setItems(items []NewOrderItem) error {
	normalized := make([]NewOrderItem, 0, len(items))
	for idx, spec := range items {
		if spec.PLU == "" {
			return fmt.Errorf("item %d: plu is required", idx)
		}
		if spec.Name == "" {
			return fmt.Errorf("item %d: name is required", idx)
		}
		if spec.Quantity < 1 {
			return fmt.Errorf("item %d: quantity must be at least 1", idx)
		}
		if spec.Status == item.Unknown {
			spec.Status = item.Ordered
		}
		if err := spec.Status.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
		normalized = append(normalized, spec)
	}

	c.items = normalized
	return nil
}
