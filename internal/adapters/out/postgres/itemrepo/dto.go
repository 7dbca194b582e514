// Package itemrepo provides data transfer objects and mapping functions for
// item persistence. Items live in their own table keyed by (order id, PLU)
// and carry an append-only status history table of their own. The DTOs are
// exported because the order repository persists and loads items as part of
// the order aggregate.
package itemrepo

import (
	"time"

	"orderhub/internal/core/domain/model/item"
	"orderhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting order items.
// The composite primary key (order id, PLU) mirrors the domain identity:
// a PLU is unique only within its order.
type ItemDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	PLU      string    `gorm:"column:plu;primaryKey"`
	Name     string
	Quantity int
	Status   int

	StatusHistory []StatusHistoryDTO `gorm:"foreignKey:OrderID,PLU;references:OrderID,PLU;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for item entities.
func (ItemDTO) TableName() string {
	return "items"
}

// StatusHistoryDTO represents one append-only audit record of an item
// status. Rows are only ever inserted. Seq is assigned by the database on
// insert and breaks timestamp ties, so reads restore commit order exactly.
type StatusHistoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index:idx_item_history_identity"`
	PLU       string    `gorm:"column:plu;index:idx_item_history_identity"`
	Status    int
	Timestamp time.Time
	Seq       int64 `gorm:"column:seq;type:bigserial;->"`
}

// TableName specifies the database table name for item status history.
func (StatusHistoryDTO) TableName() string {
	return "item_status_history"
}

// FromDomain converts an item domain entity to its database representation,
// history included.
func FromDomain(it *item.Item) ItemDTO {
	history := make([]StatusHistoryDTO, 0, len(it.StatusHistory()))
	for _, entry := range it.StatusHistory() {
		history = append(history, StatusHistoryDTO{
			ID:        entry.ID().Bytes(),
			OrderID:   it.OrderID().Bytes(),
			PLU:       it.PLU(),
			Status:    entry.Status().Ordinal(),
			Timestamp: entry.Timestamp(),
		})
	}

	return ItemDTO{
		OrderID:       it.OrderID().Bytes(),
		PLU:           it.PLU(),
		Name:          it.Name(),
		Quantity:      it.Quantity(),
		Status:        it.Status().Ordinal(),
		StatusHistory: history,
	}
}

// ToDomain converts a database DTO to an item domain entity.
// Reconstructs the complete entity including its history using RestoreItem.
func ToDomain(dto ItemDTO) (*item.Item, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := item.StatusFromOrdinal(dto.Status)
	if err != nil {
		return nil, err
	}

	history := make([]item.StatusHistoryEntry, 0, len(dto.StatusHistory))
	for _, row := range dto.StatusHistory {
		entry, entryErr := historyToDomain(row)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return item.RestoreItem(orderID, dto.PLU, dto.Name, dto.Quantity, status, history)
}

func historyToDomain(dto StatusHistoryDTO) (item.StatusHistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return item.StatusHistoryEntry{}, err
	}

	status, err := item.StatusFromOrdinal(dto.Status)
	if err != nil {
		return item.StatusHistoryEntry{}, err
	}

	return item.RestoreStatusHistoryEntry(id, status, dto.Timestamp)
}
