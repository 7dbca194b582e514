package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetHourlyThroughputQueryHandler reads the order_hourly_throughput
// materialized view.
type GetHourlyThroughputQueryHandler struct {
	db *gorm.DB
}

// NewGetHourlyThroughputQueryHandler creates a handler for hourly
// throughput queries. Requires a GORM database connection.
func NewGetHourlyThroughputQueryHandler(db *gorm.DB) GetHourlyThroughputQueryHandler {
	return GetHourlyThroughputQueryHandler{db: db}
}

// Handle executes the query, returning hour buckets in chronological order.
func (h GetHourlyThroughputQueryHandler) Handle(
	ctx context.Context,
	query GetHourlyThroughputQuery,
) ([]HourlyThroughputResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	buckets := make([]HourlyThroughputResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			hour,
			order_count
		FROM order_hourly_throughput
		ORDER BY hour
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var bucket HourlyThroughputResponse
		if err = rows.Scan(&bucket.Hour, &bucket.OrderCount); err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return buckets, nil
}
