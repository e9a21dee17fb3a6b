package actions

import (
	"context"
	"errors"
	"fmt"
)

// ErrEmptyMessage is returned when a commit is requested without a message.
var ErrEmptyMessage = errors.New("commit message is required")

// Commit stages every change in a working copy, commits it and pushes the
// default branch.
type Commit struct {
	*Tool

	Dir     string
	Message string
}

// Run runs the commit action.
func (action *Commit) Run(ctx context.Context) error {
	if action.Message == "" {
		return ErrEmptyMessage
	}
	cfg, err := action.GetConfig(ctx)
	if err != nil {
		return fmt.Errorf("getting configuration: %w", err)
	}

	vcs := adapter(action.Dir, cfg)
	if err := vcs.AddAll(ctx); err != nil {
		return fmt.Errorf("staging changes: %w", err)
	}
	if err := vcs.Commit(ctx, action.Message); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	if err := vcs.Push(ctx, cfg.Remote, cfg.DefaultBranch); err != nil {
		return fmt.Errorf("pushing %s to %s: %w", cfg.DefaultBranch, cfg.Remote, err)
	}

	action.success("%s: committed and pushed %s", action.Dir, cfg.DefaultBranch)
	return nil
}
