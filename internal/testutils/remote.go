package testutils

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// RemoteFixture is a bare repository standing in for a hosted remote, plus a
// working copy cloned from it.
type RemoteFixture struct {
	// Root holds every repository of the fixture.
	Root string
	// Remote is the bare repository path.
	Remote string
	// Work is the primary working copy, cloned from Remote as "origin".
	Work string
}

// NewRemoteFixture seeds a repository with one commit on each of branches
// (the first one becomes the remote's default branch), publishes it as a
// bare remote under root and clones a working copy from it.
func NewRemoteFixture(root string, branches ...string) (*RemoteFixture, error) {
	if len(branches) == 0 {
		branches = []string{"main"}
	}

	seed := filepath.Join(root, "seed")
	rb, err := NewRepoBuilder(seed)
	if err != nil {
		return nil, err
	}
	hash, err := rb.CreateCommit("README.md", "seed\n", "initial commit")
	if err != nil {
		return nil, err
	}
	for _, b := range branches {
		if _, err := rb.CreateBranch(b, hash); err != nil {
			return nil, err
		}
	}
	if err := rb.SetHead(branches[0]); err != nil {
		return nil, err
	}

	f := &RemoteFixture{
		Root:   root,
		Remote: filepath.Join(root, "remote.git"),
		Work:   filepath.Join(root, "work"),
	}
	if _, err := Git(root, "clone", "--bare", seed, f.Remote); err != nil {
		return nil, err
	}
	if _, err := Git(root, "clone", f.Remote, f.Work); err != nil {
		return nil, err
	}
	return f, nil
}

// Clone creates another working copy of the remote under Root.
func (f *RemoteFixture) Clone(name string) (string, error) {
	dir := filepath.Join(f.Root, name)
	if _, err := Git(f.Root, "clone", f.Remote, dir); err != nil {
		return "", err
	}
	return dir, nil
}

// PushCommit advances branch on the remote by one commit made in a scratch
// clone, returning the new commit hash.
func (f *RemoteFixture) PushCommit(branch, filename, content string) (string, error) {
	dir, err := os.MkdirTemp(f.Root, "pusher-")
	if err != nil {
		return "", fmt.Errorf("creating scratch dir: %w", err)
	}
	if _, err := Git(f.Root, "clone", "--branch", branch, f.Remote, dir); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o666); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}
	if _, err := Git(dir, "add", filename); err != nil {
		return "", err
	}
	if _, err := Git(dir, "commit", "-m", "update "+filename); err != nil {
		return "", err
	}
	if _, err := Git(dir, "push", "origin", branch); err != nil {
		return "", err
	}
	return Git(dir, "rev-parse", "HEAD")
}

// Git runs git in dir with the test identity and returns trimmed stdout.
func Git(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), GitEnv()...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w\n%s", strings.Join(args, " "), err, stderr.String())
	}
	return strings.TrimSpace(stdout.String()), nil
}

// GitEnv isolates git from user and system configuration and sets the test
// identity.
func GitEnv() []string {
	return []string{
		"GIT_CONFIG_NOSYSTEM=1",
		"GIT_CONFIG_GLOBAL=" + os.DevNull,
		"GIT_AUTHOR_NAME=" + AuthorName,
		"GIT_AUTHOR_EMAIL=" + AuthorEmail,
		"GIT_COMMITTER_NAME=" + AuthorName,
		"GIT_COMMITTER_EMAIL=" + AuthorEmail,
		"GIT_TERMINAL_PROMPT=0",
	}
}

// HasGit reports whether a git executable is on PATH.
func HasGit() bool {
	_, err := exec.LookPath("git")
	return err == nil
}
