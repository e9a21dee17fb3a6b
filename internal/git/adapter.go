package git

import "context"

// Adapter performs single git operations against one working copy. Each call
// blocks until git exits and reports either success or an error carrying
// git's diagnostic output. Implementations hold no state between calls.
type Adapter interface {
	// Dir returns the working copy directory.
	Dir() string

	// Fetch updates remote-tracking refs from all remotes.
	Fetch(ctx context.Context) error
	// ListRemoteBranches returns remote-tracking branches as "<remote>/<name>".
	ListRemoteBranches(ctx context.Context) ([]string, error)
	// LocalBranch resolves a local branch tip, returning [ErrBranchNotFound]
	// if it does not exist.
	LocalBranch(ctx context.Context, name string) (*BranchTip, error)
	// Status reads the checked-out branch, its upstream and local changes.
	Status(ctx context.Context) (*Status, error)

	// CreateAndCheckoutLocalBranch creates a branch at HEAD and checks it out.
	CreateAndCheckoutLocalBranch(ctx context.Context, name string) error
	// Checkout switches to an existing branch, creating a tracking branch
	// from a unique remote-tracking branch of the same name if needed.
	Checkout(ctx context.Context, name string) error
	// ForceCheckout is Checkout that throws away local modifications and
	// overwrites untracked files in the way.
	ForceCheckout(ctx context.Context, name string) error
	// CommitAllowEmpty records a commit even when nothing is staged.
	CommitAllowEmpty(ctx context.Context, message string) error
	// PushSetUpstream publishes a branch and records the remote branch as
	// its upstream.
	PushSetUpstream(ctx context.Context, remote, name string) error
	// HardReset moves the current branch and working tree to ref.
	HardReset(ctx context.Context, ref string) error
	// CleanUntracked removes untracked files and directories.
	CleanUntracked(ctx context.Context) error
	// Pull merges the upstream of the current branch.
	Pull(ctx context.Context) error

	// AddAll stages every change in the working tree.
	AddAll(ctx context.Context) error
	// Commit records the staged changes.
	Commit(ctx context.Context, message string) error
	// Push publishes a branch to remote.
	Push(ctx context.Context, remote, branch string) error
}

// BranchTip is the commit a local branch points at.
type BranchTip struct {
	Name    string
	Hash    string
	Subject string
}
