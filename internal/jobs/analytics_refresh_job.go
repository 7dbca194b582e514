package jobs

import (
	"context"
	"log/slog"

	"orderhub/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AnalyticsRefreshJob manages the scheduled refresh of the analytics
// materialized views. Runs at the top of every hour, plus once at startup
// so a fresh deployment serves data immediately.
type AnalyticsRefreshJob struct {
	handler commands.RefreshAnalyticsViewsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAnalyticsRefreshJob creates a new job for refreshing analytics views.
// Uses RefreshAnalyticsViewsCommandHandler to recompute the views hourly.
func NewAnalyticsRefreshJob(handler commands.RefreshAnalyticsViewsCommandHandler, logger *slog.Logger) *AnalyticsRefreshJob {
	return &AnalyticsRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "analytics_refresh_job"),
	}
}

// Start runs one immediate refresh and schedules the hourly ones.
func (j *AnalyticsRefreshJob) Start() error {
	j.refresh()

	_, err := j.cron.AddFunc("0 0 * * * *", j.refresh)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Analytics refresh job started (running hourly)")
	return nil
}

// Stop stops the analytics refresh job.
func (j *AnalyticsRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Analytics refresh job stopped")
}

func (j *AnalyticsRefreshJob) refresh() {
	ctx := context.Background()
	cmd := commands.NewRefreshAnalyticsViewsCommand()

	if err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Analytics refresh job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Analytics views refreshed")
}
