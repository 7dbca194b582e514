package order

import (
	"errors"

	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the value object embedded in an order identifying who placed
// it on the channel.
type Customer struct {
	name        string
	phoneNumber string

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer value object. Name and phone number are
// both required.
func NewCustomer(name, phoneNumber string) (Customer, error) {
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer name")
	}
	if phoneNumber == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer phone number")
	}

	return Customer{
		name:        name,
		phoneNumber: phoneNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the customer was created through the constructor.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's display name.
func (c Customer) Name() string {
	return c.name
}

// PhoneNumber returns the customer's contact phone number.
func (c Customer) PhoneNumber() string {
	return c.phoneNumber
}
