package commands

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// RefreshAnalyticsViewsCommandHandler recomputes the analytics materialized
// views. Runs directly on the database connection because REFRESH
// MATERIALIZED VIEW manages its own locking and cannot meaningfully roll
// back with the rest of a business transaction.
type RefreshAnalyticsViewsCommandHandler struct {
	db    *gorm.DB
	views []string
}

// NewRefreshAnalyticsViewsCommandHandler creates a handler that refreshes
// the given materialized views in order.
func NewRefreshAnalyticsViewsCommandHandler(db *gorm.DB, views []string) RefreshAnalyticsViewsCommandHandler {
	return RefreshAnalyticsViewsCommandHandler{
		db:    db,
		views: views,
	}
}

// Handle refreshes every view, stopping at the first failure.
func (h RefreshAnalyticsViewsCommandHandler) Handle(ctx context.Context, cmd RefreshAnalyticsViewsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	for _, view := range h.views {
		stmt := fmt.Sprintf("REFRESH MATERIALIZED VIEW %s", view)
		if err := h.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("refresh %s: %w", view, err)
		}
	}

	return nil
}
