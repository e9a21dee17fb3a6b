package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/act3-ai/gitui/internal/testutils"
)

func TestOpen(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		dir := t.TempDir()
		_, err := testutils.NewRepoBuilder(dir)
		assert.NoError(t, err)

		sub := filepath.Join(dir, "sub")
		assert.NoError(t, os.Mkdir(sub, 0o755))

		repo, err := Open(sub)
		assert.NoError(t, err)
		assert.NotNil(t, repo)
	})

	t.Run("NotRepository", func(t *testing.T) {
		_, err := Open(t.TempDir())
		assert.ErrorIs(t, err, ErrNotRepository)
	})
}

func TestInit(t *testing.T) {
	t.Run("Creates", func(t *testing.T) {
		dir := t.TempDir()

		created, err := Init(t.Context(), dir)
		assert.NoError(t, err)
		assert.True(t, created)

		_, statErr := os.Stat(filepath.Join(dir, ".git"))
		assert.NoError(t, statErr)
	})

	t.Run("Existing", func(t *testing.T) {
		dir := t.TempDir()
		rb, err := testutils.NewRepoBuilder(dir)
		assert.NoError(t, err)
		hash, err := rb.CreateRandomCommit(8)
		assert.NoError(t, err)

		created, err := Init(t.Context(), dir)
		assert.NoError(t, err)
		assert.False(t, created)

		// history untouched
		head, err := rb.Repo().Head()
		assert.NoError(t, err)
		assert.Equal(t, hash, head.Hash())
	})
}

func TestLocalBranch(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		dir := t.TempDir()
		rb, err := testutils.NewRepoBuilder(dir)
		assert.NoError(t, err)
		hash, err := rb.CreateCommit("a.txt", "a", "first commit\n\nbody")
		assert.NoError(t, err)
		_, err = rb.CreateBranch("feature", hash)
		assert.NoError(t, err)

		tip, err := LocalBranch(NewRepository(rb.Repo()), "feature")
		assert.NoError(t, err)
		assert.Equal(t, "feature", tip.Name)
		assert.Equal(t, hash.String(), tip.Hash)
		assert.Equal(t, "first commit", tip.Subject)
	})

	t.Run("NotFound", func(t *testing.T) {
		dir := t.TempDir()
		rb, err := testutils.NewRepoBuilder(dir)
		assert.NoError(t, err)
		_, err = rb.CreateRandomCommit(8)
		assert.NoError(t, err)

		_, err = LocalBranch(NewRepository(rb.Repo()), "nope")
		assert.ErrorIs(t, err, ErrBranchNotFound)
	})
}
