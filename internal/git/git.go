// Package git drives a git working copy.
//
// Mutating operations shell out to the git executable so that hooks,
// credential helpers and configured merge behavior apply exactly as they
// would for a user. Read-only inspection of refs and commits goes through
// go-git.
package git

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/act3-ai/go-common/pkg/logger"
)

// Repository represents a git repository.
//
// An interface for the subset of the [gogit.Repository] concrete type used
// to resolve branch tips.
type Repository interface {
	// CommitObject return a Commit with the given hash. If not found
	// plumbing.ErrObjectNotFound is returned.
	CommitObject(h plumbing.Hash) (*object.Commit, error)

	// Reference returns the reference for a given reference name. If resolved is
	// true, any symbolic reference will be resolved.
	Reference(name plumbing.ReferenceName, resolved bool) (*plumbing.Reference, error)
}

// Repo implements [Repository].
type Repo struct {
	*gogit.Repository
}

// NewRepository wraps a [gogit.Repository].
func NewRepository(repo *gogit.Repository) Repository {
	return &Repo{repo}
}

// Open opens the repository containing dir.
func Open(dir string) (Repository, error) {
	r, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	switch {
	case errors.Is(err, gogit.ErrRepositoryNotExists):
		return nil, fmt.Errorf("%w: %s", ErrNotRepository, dir)
	case err != nil:
		return nil, fmt.Errorf("opening repository %s: %w", dir, err)
	}
	return NewRepository(r), nil
}

// Init creates a repository in dir unless dir already holds one. It reports
// whether a repository was created.
func Init(ctx context.Context, dir string) (bool, error) {
	log := logger.FromContext(ctx).With(slog.String("dir", dir))

	_, err := os.Stat(filepath.Join(dir, gogit.GitDirName))
	switch {
	case err == nil:
		log.DebugContext(ctx, "repository already initialized")
		return false, nil
	case !errors.Is(err, os.ErrNotExist):
		return false, fmt.Errorf("checking for existing repository: %w", err)
	}

	log.InfoContext(ctx, "initializing repository")
	if _, err := gogit.PlainInit(dir, false); err != nil {
		return false, fmt.Errorf("initializing repository: %w", err)
	}
	return true, nil
}

// LocalBranch resolves the tip of a local branch.
func LocalBranch(repo Repository, name string) (*BranchTip, error) {
	ref, err := repo.Reference(plumbing.NewBranchReferenceName(name), true)
	switch {
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		return nil, fmt.Errorf("%w: %s", ErrBranchNotFound, name)
	case err != nil:
		return nil, fmt.Errorf("resolving branch %s: %w", name, err)
	}

	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("reading tip commit of branch %s: %w", name, err)
	}

	return &BranchTip{
		Name:    name,
		Hash:    ref.Hash().String(),
		Subject: subject(commit.Message),
	}, nil
}
