package queries

import (
	"context"

	"orderhub/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatusDurationsQueryHandler reads the order_status_duration_avg
// materialized view. Uses direct SQL for optimal read performance in the
// CQRS pattern.
type GetOrderStatusDurationsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusDurationsQueryHandler creates a handler for order status
// duration queries. Requires a GORM database connection.
func NewGetOrderStatusDurationsQueryHandler(db *gorm.DB) GetOrderStatusDurationsQueryHandler {
	return GetOrderStatusDurationsQueryHandler{db: db}
}

// Handle executes the query. Statuses are stored as integer ordinals and
// translated to their wire names for the read model.
func (h GetOrderStatusDurationsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusDurationsQuery,
) ([]StatusDurationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	durations := make([]StatusDurationResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			avg_duration_seconds
		FROM order_status_duration_avg
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

		status, statusErr := order.StatusFromOrdinal(ordinal)
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
