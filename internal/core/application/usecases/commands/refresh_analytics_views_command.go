package commands

import (
	"errors"

	"orderhub/internal/pkg/guard"
)

var ErrRefreshAnalyticsViewsCommandIsNotConstructed = errors.New(
	"RefreshAnalyticsViewsCommand must be created via NewRefreshAnalyticsViewsCommand constructor",
)

// RefreshAnalyticsViewsCommand represents a request to recompute the
// analytics materialized views from the current table contents.
type RefreshAnalyticsViewsCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshAnalyticsViewsCommand creates a command to refresh the
// analytics views. This is a parameterless command.
func NewRefreshAnalyticsViewsCommand() RefreshAnalyticsViewsCommand {
	return RefreshAnalyticsViewsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshAnalyticsViewsCommandIsNotConstructed if validation fails.
func (c RefreshAnalyticsViewsCommand) Validate() error {
	return c.guard.Validate(ErrRefreshAnalyticsViewsCommandIsNotConstructed)
}
