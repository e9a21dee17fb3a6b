package git

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/act3-ai/go-common/pkg/logger"

	"github.com/act3-ai/gitui/internal/logutil"
)

var _ Adapter = (*CLI)(nil)

// CLI implements [Adapter] by running the git executable.
type CLI struct {
	dir     string
	gitPath string
	env     []string
}

// Option configures a [CLI].
type Option func(*CLI)

// WithGitPath sets the git executable.
func WithGitPath(path string) Option {
	return func(c *CLI) {
		if path != "" {
			c.gitPath = path
		}
	}
}

// WithAuthor sets the author and committer identity of new commits.
func WithAuthor(name, email string) Option {
	return func(c *CLI) {
		c.env = append(c.env,
			"GIT_AUTHOR_NAME="+name,
			"GIT_AUTHOR_EMAIL="+email,
			"GIT_COMMITTER_NAME="+name,
			"GIT_COMMITTER_EMAIL="+email,
		)
	}
}

// WithEnv adds KEY=value pairs to the environment of every git invocation.
func WithEnv(kv ...string) Option {
	return func(c *CLI) {
		c.env = append(c.env, kv...)
	}
}

// NewCLI creates an adapter for the working copy at dir.
func NewCLI(dir string, opts ...Option) *CLI {
	c := &CLI{
		dir:     dir,
		gitPath: "git",
		// never block on a credential prompt
		env: []string{"GIT_TERMINAL_PROMPT=0"},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Dir returns the working copy directory.
func (c *CLI) Dir() string {
	return c.dir
}

// Fetch runs "git fetch --all".
func (c *CLI) Fetch(ctx context.Context) error {
	_, err := c.run(ctx, "fetch", "--all")
	return err
}

// ListRemoteBranches lists remote-tracking branches, omitting symbolic
// "<remote>/HEAD" entries.
func (c *CLI) ListRemoteBranches(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, "for-each-ref", "--format=%(refname:strip=2)", "refs/remotes")
	if err != nil {
		return nil, err
	}
	return parseRemoteBranches(out), nil
}

// LocalBranch resolves a local branch tip. The repository is opened anew on
// every call.
func (c *CLI) LocalBranch(ctx context.Context, name string) (*BranchTip, error) {
	repo, err := Open(c.dir)
	if err != nil {
		return nil, err
	}
	tip, err := LocalBranch(repo, name)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).DebugContext(ctx, "resolved local branch",
		slog.String("dir", c.dir), slog.String("branch", name), slog.String("hash", tip.Hash))
	return tip, nil
}

// Status runs "git status --porcelain=v2 --branch".
func (c *CLI) Status(ctx context.Context) (*Status, error) {
	out, err := c.run(ctx, "status", "--porcelain=v2", "--branch")
	if err != nil {
		return nil, err
	}
	st, err := parseStatus(out)
	if err != nil {
		return nil, fmt.Errorf("parsing status: %w", err)
	}
	return st, nil
}

// CreateAndCheckoutLocalBranch runs "git checkout -b".
func (c *CLI) CreateAndCheckoutLocalBranch(ctx context.Context, name string) error {
	_, err := c.run(ctx, "checkout", "-b", name)
	return err
}

// Checkout runs "git checkout".
func (c *CLI) Checkout(ctx context.Context, name string) error {
	_, err := c.run(ctx, "checkout", name)
	return err
}

// ForceCheckout runs "git checkout --force".
func (c *CLI) ForceCheckout(ctx context.Context, name string) error {
	_, err := c.run(ctx, "checkout", "--force", name)
	return err
}

// CommitAllowEmpty runs "git commit --allow-empty".
func (c *CLI) CommitAllowEmpty(ctx context.Context, message string) error {
	_, err := c.run(ctx, "commit", "--allow-empty", "-m", message)
	return err
}

// PushSetUpstream runs "git push --set-upstream".
func (c *CLI) PushSetUpstream(ctx context.Context, remote, name string) error {
	_, err := c.run(ctx, "push", "--set-upstream", remote, name)
	return err
}

// HardReset runs "git reset --hard".
func (c *CLI) HardReset(ctx context.Context, ref string) error {
	_, err := c.run(ctx, "reset", "--hard", ref)
	return err
}

// CleanUntracked runs "git clean -d -f".
func (c *CLI) CleanUntracked(ctx context.Context) error {
	_, err := c.run(ctx, "clean", "-d", "-f")
	return err
}

// Pull merges the upstream of the current branch, never rebasing and never
// opening an editor for the merge message.
func (c *CLI) Pull(ctx context.Context) error {
	_, err := c.run(ctx, "pull", "--no-rebase", "--no-edit")
	return err
}

// AddAll runs "git add --all".
func (c *CLI) AddAll(ctx context.Context) error {
	_, err := c.run(ctx, "add", "--all")
	return err
}

// Commit runs "git commit".
func (c *CLI) Commit(ctx context.Context, message string) error {
	_, err := c.run(ctx, "commit", "-m", message)
	return err
}

// Push runs "git push <remote> <branch>".
func (c *CLI) Push(ctx context.Context, remote, branch string) error {
	_, err := c.run(ctx, "push", remote, branch)
	return err
}

// run executes git in the working copy, returning stdout on success.
func (c *CLI) run(ctx context.Context, args ...string) (string, error) {
	display := logutil.RedactArgs(args)
	log := logutil.CommandLogger(ctx, c.dir)
	log.DebugContext(ctx, "running git", slog.Any("args", display))

	cmd := exec.CommandContext(ctx, c.gitPath, args...)
	cmd.Dir = c.dir
	cmd.Env = append(os.Environ(), c.env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	logutil.OutputLogger(log).InfoContext(ctx, "git output",
		slog.String("stdout", stdout.String()),
		slog.String("stderr", stderr.String()))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%w: %w", ctxErr, err)
		}
		cmdErr := &CommandError{
			Args:   display,
			Output: combineOutput(stdout.String(), stderr.String()),
			Err:    err,
		}
		log.DebugContext(ctx, "git failed", slog.String("error", cmdErr.Error()))
		return stdout.String(), cmdErr
	}

	return stdout.String(), nil
}

func combineOutput(stdout, stderr string) string {
	stdout = strings.TrimSpace(stdout)
	stderr = strings.TrimSpace(stderr)
	switch {
	case stdout == "":
		return stderr
	case stderr == "":
		return stdout
	default:
		return stdout + "\n" + stderr
	}
}
