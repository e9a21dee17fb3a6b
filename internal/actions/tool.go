// Package actions holds actions called by the gitui commands.
package actions

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/muesli/termenv"
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/act3-ai/go-common/pkg/config"

	"github.com/act3-ai/gitui/internal/git"
	"github.com/act3-ai/gitui/internal/reconcile"
	"github.com/act3-ai/gitui/pkg/apis"
	"github.com/act3-ai/gitui/pkg/apis/gitui.act3-ai.io/v1alpha1"
)

// Tool represents the base action.
type Tool struct {
	version   string
	apiScheme *runtime.Scheme
	// ConfigFiles contains a list of potential configuration file locations.
	ConfigFiles []string

	out   *termenv.Output
	outMu sync.Mutex
}

// NewTool creates a new Tool with default values.
func NewTool(out io.Writer, version string, cfgFiles []string) *Tool {
	return &Tool{
		version:     version,
		apiScheme:   apis.NewScheme(),
		ConfigFiles: cfgFiles,
		out:         termenv.NewOutput(out),
	}
}

// Version returns the tool version.
func (action *Tool) Version() string {
	return action.version
}

// GetScheme returns the runtime scheme used for configuration file loading.
func (action *Tool) GetScheme() *runtime.Scheme {
	return action.apiScheme
}

// GetConfig loads Configuration using the current gitui options.
func (action *Tool) GetConfig(ctx context.Context) (c *v1alpha1.Configuration, err error) {
	c = &v1alpha1.Configuration{}

	slog.DebugContext(ctx, "searching for configuration files", slog.Any("cfgFiles", action.ConfigFiles))

	err = config.Load(slog.Default(), action.GetScheme(), c, action.ConfigFiles)
	if err != nil {
		return c, fmt.Errorf("loading configuration: %w", err)
	}
	// an absent file leaves the object undefaulted
	action.GetScheme().Default(c)

	defer slog.DebugContext(ctx, "using config", slog.Any("configuration", c))

	return c, nil
}

// adapter builds the git adapter for one working copy.
func adapter(dir string, cfg *v1alpha1.Configuration) *git.CLI {
	opts := []git.Option{git.WithGitPath(cfg.GitPath)}
	if cfg.Author != nil {
		opts = append(opts, git.WithAuthor(cfg.Author.Name, cfg.Author.Email))
	}
	return git.NewCLI(dir, opts...)
}

func reconcileConfig(cfg *v1alpha1.Configuration) reconcile.Config {
	rc := reconcile.Config{
		Remote:             cfg.Remote,
		DefaultBranch:      cfg.DefaultBranch,
		FirstCommitMessage: cfg.FirstCommitMessage,
		ResetTarget:        reconcile.ResetToRequested,
		PostUpdate:         cfg.PostUpdate,
	}
	if cfg.ResetTarget == v1alpha1.ResetTargetDefault {
		rc.ResetTarget = reconcile.ResetToDefault
	}
	return rc
}

// success prints a green outcome line.
func (action *Tool) success(format string, a ...any) {
	action.printf(termenv.ANSIGreen, format, a...)
}

// failure prints a red outcome line.
func (action *Tool) failure(format string, a ...any) {
	action.printf(termenv.ANSIRed, format, a...)
}

func (action *Tool) printf(color termenv.ANSIColor, format string, a ...any) {
	action.outMu.Lock()
	defer action.outMu.Unlock()
	line := action.out.String(fmt.Sprintf(format, a...)).Foreground(color)
	fmt.Fprintln(action.out, line)
}
