package actions

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sourcegraph/conc/pool"

	"github.com/act3-ai/gitui/internal/reconcile"
	"github.com/act3-ai/gitui/pkg/apis/gitui.act3-ai.io/v1alpha1"
)

// Update reconciles one or more working copies with a branch.
type Update struct {
	*Tool

	// Dirs are the working copies to reconcile.
	Dirs   []string
	Branch string
	Force  bool
	// MaxConcurrency bounds the number of working copies updated at once.
	// Zero means one per working copy.
	MaxConcurrency int
}

// Run runs the update action.
func (action *Update) Run(ctx context.Context) error {
	cfg, err := action.GetConfig(ctx)
	if err != nil {
		return fmt.Errorf("getting configuration: %w", err)
	}
	if len(action.Dirs) == 0 {
		action.Dirs = []string{"."}
	}

	p := pool.New().WithErrors()
	if action.MaxConcurrency > 0 {
		p = p.WithMaxGoroutines(action.MaxConcurrency)
	}
	for _, dir := range action.Dirs {
		p.Go(func() error {
			return action.updateOne(ctx, cfg, dir)
		})
	}

	return p.Wait() //nolint:wrapcheck
}

func (action *Update) updateOne(ctx context.Context, cfg *v1alpha1.Configuration, dir string) error {
	if cfg.UpdateTimeout != nil && cfg.UpdateTimeout.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.UpdateTimeout.Duration)
		defer cancel()
	}

	r := reconcile.New(adapter(dir, cfg), reconcileConfig(cfg))
	err := r.Update(ctx, action.Branch, action.Force)
	if err != nil {
		slog.ErrorContext(ctx, "update failed", slog.String("dir", dir), slog.String("error", err.Error()))
		action.failure("%s: failed: %s", dir, err.Error())
		return fmt.Errorf("updating %s: %w", dir, err)
	}

	action.success("%s: ok", dir)
	return nil
}
