package order

import (
	"errors"

	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/guard"
)

var ErrDeliveryAddressIsNotConstructed = errors.New(
	"DeliveryAddress must be created via NewDeliveryAddress constructor",
)

// DeliveryAddress is the value object embedded in an order describing where
// it should be delivered.
type DeliveryAddress struct {
	city       string
	street     string
	postalCode string

	guard guard.ConstructorGuard
}

// NewDeliveryAddress creates a delivery address value object. All three
// components are required.
func NewDeliveryAddress(city, street, postalCode string) (DeliveryAddress, error) {
	if city == "" {
		return DeliveryAddress{}, errs.NewValueIsRequiredError("delivery city")
	}
	if street == "" {
		return DeliveryAddress{}, errs.NewValueIsRequiredError("delivery street")
	}
	if postalCode == "" {
		return DeliveryAddress{}, errs.NewValueIsRequiredError("delivery postal code")
	}

	return DeliveryAddress{
		city:       city,
		street:     street,
		postalCode: postalCode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the address was created through the constructor.
func (a DeliveryAddress) Validate() error {
	return a.guard.Validate(ErrDeliveryAddressIsNotConstructed)
}

// City returns the delivery city.
func (a DeliveryAddress) City() string {
	return a.city
}

// Street returns the delivery street.
func (a DeliveryAddress) Street() string {
	return a.street
}

// PostalCode returns the delivery postal code.
func (a DeliveryAddress) PostalCode() string {
	return a.postalCode
}
