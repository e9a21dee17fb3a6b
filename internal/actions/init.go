package actions

import (
	"context"
	"fmt"

	"github.com/act3-ai/gitui/internal/git"
)

// Init creates a repository in a directory that does not hold one yet.
type Init struct {
	*Tool

	Dir string
}

// Run runs the init action.
func (action *Init) Run(ctx context.Context) error {
	created, err := git.Init(ctx, action.Dir)
	if err != nil {
		return fmt.Errorf("initializing %s: %w", action.Dir, err)
	}

	if created {
		action.success("%s: initialized repository", action.Dir)
	} else {
		action.success("%s: repository already exists", action.Dir)
	}
	return nil
}
