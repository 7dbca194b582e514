package queries

import (
	"context"

	"orderhub/internal/core/domain/model/item"

	"gorm.io/gorm"
)

// GetItemStatusDurationsQueryHandler reads the item_status_duration_avg
// materialized view.
type GetItemStatusDurationsQueryHandler struct {
	db *gorm.DB
}

// NewGetItemStatusDurationsQueryHandler creates a handler for item status
// duration queries. Requires a GORM database connection.
func NewGetItemStatusDurationsQueryHandler(db *gorm.DB) GetItemStatusDurationsQueryHandler {
	return GetItemStatusDurationsQueryHandler{db: db}
}

// Handle executes the query. Statuses are stored as integer ordinals and
// translated to their wire names for the read model.
func (h GetItemStatusDurationsQueryHandler) Handle(
	ctx context.Context,
	query GetItemStatusDurationsQuery,
) ([]StatusDurationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	durations := make([]StatusDurationResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			avg_duration_seconds
		FROM item_status_duration_avg
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ordinal int
		var duration StatusDurationResponse

		if err = rows.Scan(&ordinal, &duration.AvgDurationSeconds); err != nil {
			return nil, err
		}

		status, statusErr := item.StatusFromOrdinal(ordinal)
		if statusErr != nil {
			return nil, statusErr
		}
		duration.Status = status.String()

		durations = append(durations, duration)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return durations, nil
}
