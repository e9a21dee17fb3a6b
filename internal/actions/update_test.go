package actions

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/act3-ai/gitui/internal/reconcile"
	"github.com/act3-ai/gitui/internal/testutils"
)

func newFixture(t *testing.T, branches ...string) *testutils.RemoteFixture {
	t.Helper()
	if !testutils.HasGit() {
		t.Skip("git not found on PATH")
	}
	f, err := testutils.NewRemoteFixture(t.TempDir(), branches...)
	require.NoError(t, err)
	return f
}

// testConfig sets the identity used for commits made by the actions.
func testConfig(t *testing.T) string {
	t.Helper()
	for _, kv := range testutils.GitEnv() {
		k, v, _ := strings.Cut(kv, "=")
		t.Setenv(k, v)
	}
	return writeConfig(t, "apiVersion: gitui.act3-ai.io/v1alpha1\n"+
		"kind: Configuration\n"+
		"author:\n  name: "+testutils.AuthorName+"\n  email: "+testutils.AuthorEmail+"\n")
}

func TestUpdate_Run(t *testing.T) {
	t.Run("MultipleWorkingCopies", func(t *testing.T) {
		f := newFixture(t, "main")
		second, err := f.Clone("second")
		require.NoError(t, err)
		cfgPath := testConfig(t)

		out := new(bytes.Buffer)
		action := &Update{
			Tool:   NewTool(out, "v1.0.0", []string{cfgPath}),
			Dirs:   []string{f.Work, second},
			Branch: "release",
			// concurrent creation from two clones would race on the push
			MaxConcurrency: 1,
		}

		err = action.Run(t.Context())
		require.NoError(t, err)

		// the first to run creates the branch, the other finds and tracks it
		for _, dir := range []string{f.Work, second} {
			head, err := testutils.Git(dir, "rev-parse", "--abbrev-ref", "HEAD")
			assert.NoError(t, err)
			assert.Equal(t, "release", head)
		}
		assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte(": ok")))
	})

	t.Run("Force", func(t *testing.T) {
		f := newFixture(t, "staging")
		cfgPath := testConfig(t)
		require.NoError(t, os.WriteFile(filepath.Join(f.Work, "tmp.txt"), []byte("x"), 0o666))

		action := &Update{
			Tool:   NewTool(new(bytes.Buffer), "v1.0.0", []string{cfgPath}),
			Dirs:   []string{f.Work},
			Branch: "staging",
			Force:  true,
		}

		require.NoError(t, action.Run(t.Context()))
		_, statErr := os.Stat(filepath.Join(f.Work, "tmp.txt"))
		assert.ErrorIs(t, statErr, os.ErrNotExist)
	})

	t.Run("Failure", func(t *testing.T) {
		if !testutils.HasGit() {
			t.Skip("git not found on PATH")
		}
		cfgPath := testConfig(t)
		notRepo := t.TempDir()

		out := new(bytes.Buffer)
		action := &Update{
			Tool:   NewTool(out, "v1.0.0", []string{cfgPath}),
			Dirs:   []string{notRepo},
			Branch: "staging",
		}

		err := action.Run(t.Context())
		assert.Error(t, err)
		assert.Equal(t, reconcile.FetchListFailure, reconcile.KindOf(err))
		assert.Contains(t, out.String(), notRepo+": failed: FetchListFailure: ")
	})
}
