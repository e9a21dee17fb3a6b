// Package testutils provides utility functions for building testdata.
package testutils

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Test identity used for every commit created by test helpers.
const (
	AuthorName  = "Test User"
	AuthorEmail = "test@example.com"
)

// RepoBuilder provides methods for building a git repository.
type RepoBuilder struct {
	repo *git.Repository
}

// NewRepoBuilder initializes a RepoBuilder.
func NewRepoBuilder(dir string) (*RepoBuilder, error) {
	// will create if dir dne
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return nil, fmt.Errorf("initializing plain git repository: %w", err)
	}

	return &RepoBuilder{repo: repo}, nil
}

// Repo returns the underlying git repository.
func (b *RepoBuilder) Repo() *git.Repository {
	return b.repo
}

// CreateCommit writes content to filename and commits it on the current
// branch.
func (b *RepoBuilder) CreateCommit(filename, content, message string) (plumbing.Hash, error) {
	wt, err := b.repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("getting repository worktree: %w", err)
	}

	f, err := wt.Filesystem.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	if _, err := io.WriteString(f, content); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("writing file: %w", err)
	}
	if err := f.Close(); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("closing file: %w", err)
	}

	return b.commit(wt, filename, message)
}

// CreateRandomCommit creates a commit with random file data of given size.
func (b *RepoBuilder) CreateRandomCommit(size int64) (plumbing.Hash, error) {
	if size < 0 {
		return plumbing.ZeroHash, fmt.Errorf("invalid file size %d expected > 0", size)
	}
	wt, err := b.repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("getting repository worktree: %w", err)
	}

	filename := fmt.Sprintf("file_%s.txt", rand.Text())
	f, err := wt.Filesystem.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, io.LimitReader(rand.Reader, size)); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("writing random data to file: %w", err)
	}
	if err := f.Close(); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("closing file: %w", err)
	}

	return b.commit(wt, filename, "test commit")
}

func (b *RepoBuilder) commit(wt *git.Worktree, filename, message string) (plumbing.Hash, error) {
	if _, err := wt.Add(filename); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("adding file to worktree: %w", err)
	}

	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  AuthorName,
			Email: AuthorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("committing file: %w", err)
	}

	return hash, nil
}

// CreateBranch creates a new branch.
func (b *RepoBuilder) CreateBranch(branchName string, commit plumbing.Hash) (*plumbing.Reference, error) {
	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(branchName), commit)
	if err := b.repo.Storer.SetReference(ref); err != nil {
		return nil, fmt.Errorf("creating branch reference: %w", err)
	}
	return ref, nil
}

// DeleteBranch deletes a branch.
func (b *RepoBuilder) DeleteBranch(branchName string) error {
	refName := plumbing.NewBranchReferenceName(branchName)
	if err := b.repo.Storer.RemoveReference(refName); err != nil {
		return fmt.Errorf("deleting branch reference: %w", err)
	}
	return nil
}

// SetHead points HEAD at a branch without touching the worktree.
func (b *RepoBuilder) SetHead(branchName string) error {
	ref := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(branchName))
	if err := b.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("setting HEAD: %w", err)
	}
	return nil
}
