package actions

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/act3-ai/gitui/internal/reconcile"
	"github.com/act3-ai/gitui/pkg/apis/gitui.act3-ai.io/v1alpha1"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o666))
	return path
}

func TestNewTool(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		out := new(bytes.Buffer)
		cfgFiles := []string{"/tmp/foo"}

		tool := NewTool(out, "v1.0.0", cfgFiles)
		assert.NotNil(t, tool)
		assert.Equal(t, "v1.0.0", tool.Version())
		assert.NotNil(t, tool.GetScheme())
		assert.Equal(t, cfgFiles, tool.ConfigFiles)
	})
}

func TestTool_GetConfig(t *testing.T) {
	t.Run("File", func(t *testing.T) {
		path := writeConfig(t, "# gitui configuration\n"+
			"apiVersion: gitui.act3-ai.io/v1alpha1\n"+
			"kind: Configuration\n"+
			"remote: upstream\n"+
			"defaultBranch: main\n"+
			"resetTarget: Default\n"+
			"author:\n  name: bot\n  email: bot@example.com\n"+
			"postUpdate:\n- [make, deps]\n"+
			"updateTimeout: 30s\n")

		tool := NewTool(new(bytes.Buffer), "v1.0.0", []string{path})
		cfg, err := tool.GetConfig(t.Context())
		assert.NoError(t, err)
		assert.Equal(t, "upstream", cfg.Remote)
		assert.Equal(t, "main", cfg.DefaultBranch)
		assert.Equal(t, v1alpha1.ResetTargetDefault, cfg.ResetTarget)
		assert.Equal(t, "first commit", cfg.FirstCommitMessage)
		assert.Equal(t, &v1alpha1.Author{Name: "bot", Email: "bot@example.com"}, cfg.Author)
		assert.Equal(t, [][]string{{"make", "deps"}}, cfg.PostUpdate)
		assert.Equal(t, 30*time.Second, cfg.UpdateTimeout.Duration)
	})

	t.Run("Defaults", func(t *testing.T) {
		tool := NewTool(new(bytes.Buffer), "v1.0.0", []string{filepath.Join(t.TempDir(), "missing.yaml")})
		cfg, err := tool.GetConfig(t.Context())
		assert.NoError(t, err)
		assert.Equal(t, "origin", cfg.Remote)
		assert.Equal(t, "staging", cfg.DefaultBranch)
		assert.Equal(t, v1alpha1.ResetTargetRequested, cfg.ResetTarget)
	})
}

func Test_reconcileConfig(t *testing.T) {
	t.Run("Requested", func(t *testing.T) {
		cfg := &v1alpha1.Configuration{}
		v1alpha1.ConfigurationDefault(cfg)

		got := reconcileConfig(cfg)
		assert.Equal(t, reconcile.DefaultConfig(), got)
	})

	t.Run("Default", func(t *testing.T) {
		cfg := &v1alpha1.Configuration{
			ConfigurationSpec: v1alpha1.ConfigurationSpec{
				ResetTarget:   v1alpha1.ResetTargetDefault,
				PostUpdate:    [][]string{{"npm", "install"}},
				UpdateTimeout: &metav1.Duration{Duration: time.Second},
			},
		}
		v1alpha1.ConfigurationDefault(cfg)

		got := reconcileConfig(cfg)
		assert.Equal(t, reconcile.ResetToDefault, got.ResetTarget)
		assert.Equal(t, [][]string{{"npm", "install"}}, got.PostUpdate)
	})
}

func Test_adapter(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cfg := &v1alpha1.Configuration{
			ConfigurationSpec: v1alpha1.ConfigurationSpec{
				Author: &v1alpha1.Author{Name: "bot", Email: "bot@example.com"},
			},
		}
		v1alpha1.ConfigurationDefault(cfg)

		vcs := adapter("/tmp/work", cfg)
		assert.Equal(t, "/tmp/work", vcs.Dir())
	})
}
