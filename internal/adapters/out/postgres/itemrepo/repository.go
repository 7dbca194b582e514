package itemrepo

import (
	"context"
	"errors"
	"fmt"

	"orderhub/internal/core/domain/model/item"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB, tracker aggregateTracker) *GormItemRepository {
	return &GormItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves an item of an order by its PLU, history included.
func (r *GormItemRepository) Get(ctx context.Context, orderID kernel.UUID, plu string) (*item.Item, error) {
	return r.get(ctx, r.db, orderID, plu)
}

// GetForUpdate retrieves an item and locks its row until the surrounding
// transaction ends. The lock covers the item row only; history rows are
// append-only and need no locking.
func (r *GormItemRepository) GetForUpdate(ctx context.Context, orderID kernel.UUID, plu string) (*item.Item, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), orderID, plu)
}

func (r *GormItemRepository) get(ctx context.Context, db *gorm.DB, orderID kernel.UUID, plu string) (*item.Item, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if plu == "" {
		return nil, errs.NewValueIsRequiredError("plu")
	}

	var dto ItemDTO
	err := db.WithContext(ctx).
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC, seq ASC")
		}).
		First(&dto, "order_id = ? AND plu = ?", orderID.Bytes(), plu).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", fmt.Sprintf("%s/%s", orderID, plu))
		}
		return nil, err
	}

	return ToDomain(dto)
}

// Update persists the item's current status projection and appends any new
// history entries. Already persisted history rows are skipped, so replaying
// the full history is safe.
func (r *GormItemRepository) Update(ctx context.Context, aggregate *item.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("order_id = ? AND plu = ?", dto.OrderID, dto.PLU).
		Updates(map[string]any{"status": dto.Status})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", fmt.Sprintf("%s/%s", aggregate.OrderID(), aggregate.PLU()))
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto.StatusHistory).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}
