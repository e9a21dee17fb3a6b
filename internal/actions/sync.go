package actions

import (
	"context"
	"fmt"
)

// Fetch updates the remote-tracking branches of a working copy.
type Fetch struct {
	*Tool

	Dir string
}

// Run runs the fetch action.
func (action *Fetch) Run(ctx context.Context) error {
	cfg, err := action.GetConfig(ctx)
	if err != nil {
		return fmt.Errorf("getting configuration: %w", err)
	}

	if err := adapter(action.Dir, cfg).Fetch(ctx); err != nil {
		return fmt.Errorf("fetching: %w", err)
	}
	action.success("%s: fetched", action.Dir)
	return nil
}

// Pull merges the upstream of the checked-out branch of a working copy.
type Pull struct {
	*Tool

	Dir string
}

// Run runs the pull action.
func (action *Pull) Run(ctx context.Context) error {
	cfg, err := action.GetConfig(ctx)
	if err != nil {
		return fmt.Errorf("getting configuration: %w", err)
	}

	if err := adapter(action.Dir, cfg).Pull(ctx); err != nil {
		return fmt.Errorf("pulling: %w", err)
	}
	action.success("%s: pulled", action.Dir)
	return nil
}
