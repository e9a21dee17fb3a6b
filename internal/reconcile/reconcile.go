// Package reconcile brings a git working copy onto a requested branch that
// tracks the managed remote, creating and publishing the branch when the
// remote does not have it yet.
//
// A reconciliation either succeeds or fails with a [*Failure] naming the
// step that failed. Nothing is retried and nothing is rolled back, so a
// failure may leave the working copy part way through the procedure.
package reconcile

import (
	"context"
	"errors"
	"log/slog"

	"github.com/act3-ai/go-common/pkg/logger"

	"github.com/act3-ai/gitui/internal/git"
)

// Config holds the fixed settings of a reconciler.
type Config struct {
	// Remote is the managed remote.
	Remote string
	// DefaultBranch is the reset target under ResetToDefault.
	DefaultBranch string
	// FirstCommitMessage is the message of the commit seeding a new branch.
	FirstCommitMessage string
	// ResetTarget chooses the remote branch a forced update resets to and
	// the tracking ref that is compared against.
	ResetTarget ResetTarget
	// PostUpdate commands run in the working copy after a successful pull.
	PostUpdate [][]string
}

// ResetTarget chooses the branch used for the forced reset and the tracking
// check of an existing branch.
type ResetTarget int

const (
	// ResetToRequested uses the requested branch.
	ResetToRequested ResetTarget = iota
	// ResetToDefault uses Config.DefaultBranch regardless of the request.
	ResetToDefault
)

// DefaultConfig returns the standard reconciler settings.
func DefaultConfig() Config {
	return Config{
		Remote:             "origin",
		DefaultBranch:      "staging",
		FirstCommitMessage: "first commit",
		ResetTarget:        ResetToRequested,
	}
}

// Reconciler runs reconciliations against a single working copy.
type Reconciler struct {
	vcs git.Adapter
	cfg Config
}

// New creates a Reconciler for the working copy behind vcs.
func New(vcs git.Adapter, cfg Config) *Reconciler {
	return &Reconciler{vcs: vcs, cfg: cfg}
}

// Update reconciles the working copy with branchName on the remote. When
// force is set and the branch exists remotely, local modifications and
// untracked files are discarded first.
//
// The returned error is nil on success and a [*Failure] otherwise. Calls
// for the same working copy are serialized.
func (r *Reconciler) Update(ctx context.Context, branchName string, force bool) error {
	if branchName == "" {
		return &Failure{Kind: InvalidRequest, Message: "branch name is required", Err: ErrInvalid}
	}

	mu := lockFor(r.vcs.Dir())
	mu.Lock()
	defer mu.Unlock()

	log := logger.FromContext(ctx).With(
		slog.String("dir", r.vcs.Dir()),
		slog.String("branch", branchName),
		slog.Bool("force", force),
	)
	ctx = logger.NewContext(ctx, log)

	log.InfoContext(ctx, "fetching remote branches")
	if err := r.vcs.Fetch(ctx); err != nil {
		return fail(FetchListFailure, err)
	}
	branches, err := r.vcs.ListRemoteBranches(ctx)
	if err != nil {
		return fail(FetchListFailure, err)
	}

	if !git.RemoteBranchExists(branches, r.cfg.Remote, branchName) {
		log.InfoContext(ctx, "branch absent on remote, creating")
		return r.create(ctx, branchName)
	}

	log.InfoContext(ctx, "branch present on remote, updating")
	return r.update(ctx, branchName, force)
}

// create makes branchName locally, seeds it with an empty commit and
// publishes it with upstream tracking.
func (r *Reconciler) create(ctx context.Context, branchName string) error {
	log := logger.FromContext(ctx)

	resumed, err := r.resumeCreated(ctx, branchName)
	if err != nil {
		return err
	}

	if !resumed {
		if err := r.vcs.CreateAndCheckoutLocalBranch(ctx, branchName); err != nil {
			return fail(BranchCreateFailure, err)
		}
		if err := r.vcs.CommitAllowEmpty(ctx, r.cfg.FirstCommitMessage); err != nil {
			return fail(CommitFailure, err)
		}
	}

	if err := r.vcs.PushSetUpstream(ctx, r.cfg.Remote, branchName); err != nil {
		return fail(PushFailure, err)
	}

	log.InfoContext(ctx, "branch created and published")
	return nil
}

// resumeCreated checks out a local branch left behind by an earlier create
// that failed before publishing. Only a branch whose tip is the seed commit
// qualifies; any other existing branch is left for checkout -b to reject.
func (r *Reconciler) resumeCreated(ctx context.Context, branchName string) (bool, error) {
	tip, err := r.vcs.LocalBranch(ctx, branchName)
	switch {
	case errors.Is(err, git.ErrBranchNotFound):
		return false, nil
	case err != nil:
		// unreadable here means checkout -b decides
		logger.FromContext(ctx).DebugContext(ctx, "inspecting local branch", slog.String("error", err.Error()))
		return false, nil
	case tip.Subject != r.cfg.FirstCommitMessage:
		return false, nil
	}

	logger.FromContext(ctx).InfoContext(ctx, "resuming partially created branch", slog.String("tip", tip.Hash))
	if err := r.vcs.Checkout(ctx, branchName); err != nil {
		return false, fail(CheckoutFailure, err)
	}
	return true, nil
}

// update brings an existing remote branch into the working copy.
func (r *Reconciler) update(ctx context.Context, branchName string, force bool) error {
	log := logger.FromContext(ctx)

	status, err := r.vcs.Status(ctx)
	if err != nil {
		return fail(StatusReadFailure, err)
	}
	log.DebugContext(ctx, "read status",
		slog.String("current", status.Branch),
		slog.String("tracking", status.Tracking),
		slog.Bool("localChanges", status.HasLocalChanges()))

	target := r.cfg.Remote + "/" + r.targetBranch(branchName)

	// The reset rewrites whichever branch is checked out, so under
	// ResetToRequested switch first and leave the other branch alone.
	switched := false
	if force && r.cfg.ResetTarget == ResetToRequested && status.Branch != branchName {
		log.InfoContext(ctx, "switching branch before discarding local changes", slog.String("current", status.Branch))
		if err := r.vcs.ForceCheckout(ctx, branchName); err != nil {
			return fail(CheckoutFailure, err)
		}
		switched = true
	}

	if force {
		if err := r.discardLocal(ctx, target); err != nil {
			return err
		}
	}

	if !switched && status.Tracking != target {
		log.InfoContext(ctx, "checking out branch", slog.String("tracking", status.Tracking))
		if err := r.vcs.Checkout(ctx, branchName); err != nil {
			return fail(CheckoutFailure, err)
		}
	}

	if err := r.vcs.Pull(ctx); err != nil {
		return fail(PullFailure, err)
	}

	if err := runHooks(ctx, r.vcs.Dir(), r.cfg.PostUpdate); err != nil {
		return fail(HookFailure, err)
	}

	log.InfoContext(ctx, "branch updated")
	return nil
}

// discardLocal hard resets to target and removes untracked files. Both are
// attempted; a reset failure is reported in preference to a clean failure.
func (r *Reconciler) discardLocal(ctx context.Context, target string) error {
	logger.FromContext(ctx).InfoContext(ctx, "discarding local changes", slog.String("target", target))

	resetErr := r.vcs.HardReset(ctx, target)
	cleanErr := r.vcs.CleanUntracked(ctx)
	switch {
	case resetErr != nil:
		return fail(ResetFailure, resetErr)
	case cleanErr != nil:
		return fail(CleanFailure, cleanErr)
	}
	return nil
}

func (r *Reconciler) targetBranch(branchName string) string {
	if r.cfg.ResetTarget == ResetToDefault {
		return r.cfg.DefaultBranch
	}
	return branchName
}
