package postgres

import (
	"fmt"

	"orderhub/internal/adapters/out/postgres/itemrepo"
	"orderhub/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// AnalyticsViews lists the materialized views maintained by Migrate, in the
// order they should be refreshed.
var AnalyticsViews = []string{
	"order_status_duration_avg",
	"item_status_duration_avg",
	"order_hourly_throughput",
	"customer_order_count",
}

// Statuses are stored as integer ordinals, so the duration views filter on
// the non-terminal ordinals 1..3 (received/ordered, preparing, ready).
// Picked-up and cancelled are terminal: nothing follows them, so no duration
// can be computed.
var analyticsViewDefinitions = map[string]string{
	"order_status_duration_avg": `
		WITH status_periods AS (
			SELECT
				order_id,
				status,
				timestamp AS start_time,
				LEAD(timestamp) OVER (PARTITION BY order_id ORDER BY timestamp) AS end_time
			FROM order_status_history
		)
		SELECT
			status,
			AVG(EXTRACT(EPOCH FROM (end_time - start_time))) AS avg_duration_seconds
		FROM status_periods
		WHERE end_time IS NOT NULL AND status IN (1, 2, 3)
		GROUP BY status`,
	"item_status_duration_avg": `
		WITH status_periods AS (
			SELECT
				order_id,
				plu,
				status,
				timestamp AS start_time,
				LEAD(timestamp) OVER (PARTITION BY order_id, plu ORDER BY timestamp) AS end_time
			FROM item_status_history
		)
		SELECT
			status,
			AVG(EXTRACT(EPOCH FROM (end_time - start_time))) AS avg_duration_seconds
		FROM status_periods
		WHERE end_time IS NOT NULL AND status IN (1, 2, 3)
		GROUP BY status`,
	"order_hourly_throughput": `
		SELECT
			DATE_TRUNC('hour', created_at) AS hour,
			COUNT(*) AS order_count
		FROM orders
		GROUP BY DATE_TRUNC('hour', created_at)
		ORDER BY hour`,
	"customer_order_count": `
		SELECT
			account,
			COUNT(*) AS order_count,
			MIN(created_at) AS first_order_at,
			MAX(created_at) AS last_order_at
		FROM orders
		GROUP BY account`,
}

var analyticsViewIndexes = map[string]string{
	"order_status_duration_avg": "status",
	"item_status_duration_avg":  "status",
	"order_hourly_throughput":   "hour",
	"customer_order_count":      "account",
}

// Migrate creates or updates the database schema: the four aggregate tables
// plus the analytics materialized views. Safe to run on every startup.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&itemrepo.ItemDTO{},
		&orderrepo.StatusHistoryDTO{},
		&itemrepo.StatusHistoryDTO{},
	); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}

	for _, name := range AnalyticsViews {
		stmt := fmt.Sprintf("CREATE MATERIALIZED VIEW IF NOT EXISTS %s AS %s", name, analyticsViewDefinitions[name])
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create view %s: %w", name, err)
		}

		idx := fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_%s ON %s (%s)",
			name, analyticsViewIndexes[name], name, analyticsViewIndexes[name])
		if err := db.Exec(idx).Error; err != nil {
			return fmt.Errorf("index view %s: %w", name, err)
		}
	}

	return nil
}
