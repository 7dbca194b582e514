// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities
// and database representations across the orders, items, and history tables.
package orderrepo

import (
	"time"

	"orderhub/internal/adapters/out/postgres/itemrepo"
	"orderhub/internal/core/domain/model/item"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexes for
// the supported list filters. Timestamps are domain-managed, so GORM's
// automatic time tracking is disabled.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Account        uuid.UUID `gorm:"type:uuid;index"`
	BrandID        uuid.UUID `gorm:"type:uuid"`
	ChannelOrderID string

	Customer CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Delivery AddressDTO  `gorm:"embedded;embeddedPrefix:delivery_"`

	PickupTime time.Time
	Status     int       `gorm:"index"`
	CreatedAt  time.Time `gorm:"index;autoCreateTime:false"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime:false"`

	Items         []itemrepo.ItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	StatusHistory []StatusHistoryDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded customer columns within the order table.
type CustomerDTO struct {
	Name        string
	PhoneNumber string
}

// AddressDTO represents the embedded delivery address columns within the order table.
type AddressDTO struct {
	City       string
	Street     string
	PostalCode string
}

// StatusHistoryDTO represents one append-only audit record of an order
// status. Rows are only ever inserted. Seq is assigned by the database on
// insert and breaks timestamp ties, so reads restore commit order exactly.
type StatusHistoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    int
	Timestamp time.Time
	Seq       int64 `gorm:"column:seq;type:bigserial;->"`
}

// TableName specifies the database table name for order status history.
func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order domain aggregate to its database
// representation, items and histories included.
func fromDomain(o *order.Order) OrderDTO {
	items := make([]itemrepo.ItemDTO, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, itemrepo.FromDomain(it))
	}

	history := make([]StatusHistoryDTO, 0, len(o.StatusHistory()))
	for _, entry := range o.StatusHistory() {
		history = append(history, StatusHistoryDTO{
			ID:        entry.ID().Bytes(),
			OrderID:   o.ID().Bytes(),
			Status:    entry.Status().Ordinal(),
			Timestamp: entry.Timestamp(),
		})
	}

	return OrderDTO{
		ID:             o.ID().Bytes(),
		Account:        o.Account().Bytes(),
		BrandID:        o.BrandID().Bytes(),
		ChannelOrderID: o.ChannelOrderID(),
		Customer: CustomerDTO{
			Name:        o.Customer().Name(),
			PhoneNumber: o.Customer().PhoneNumber(),
		},
		Delivery: AddressDTO{
			City:       o.DeliveryAddress().City(),
			Street:     o.DeliveryAddress().Street(),
			PostalCode: o.DeliveryAddress().PostalCode(),
		},
		PickupTime:    o.PickupTime(),
		Status:        o.Status().Ordinal(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
		Items:         items,
		StatusHistory: history,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items and both status
// histories using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	account, err := kernel.UUIDFromBytes(dto.Account[:])
	if err != nil {
		return nil, err
	}

	brandID, err := kernel.UUIDFromBytes(dto.BrandID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.Customer.Name, dto.Customer.PhoneNumber)
	if err != nil {
		return nil, err
	}

	address, err := order.NewDeliveryAddress(dto.Delivery.City, dto.Delivery.Street, dto.Delivery.PostalCode)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromOrdinal(dto.Status)
	if err != nil {
		return nil, err
	}

	history := make([]order.StatusHistoryEntry, 0, len(dto.StatusHistory))
	for _, row := range dto.StatusHistory {
		entry, entryErr := historyToDomain(row)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	items := make([]*item.Item, 0, len(dto.Items))
	for _, row := range dto.Items {
		it, itemErr := itemrepo.ToDomain(row)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, it)
	}

	return order.RestoreOrder(
		id, account, brandID, dto.ChannelOrderID,
		customer, address, dto.PickupTime,
		status, dto.CreatedAt, dto.UpdatedAt,
		history, items,
	)
}

func historyToDomain(dto StatusHistoryDTO) (order.StatusHistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.StatusHistoryEntry{}, err
	}

	status, err := order.StatusFromOrdinal(dto.Status)
	if err != nil {
		return order.StatusHistoryEntry{}, err
	}

	return order.RestoreStatusHistoryEntry(id, status, dto.Timestamp)
}
