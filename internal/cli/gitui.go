// Package cli defines CLI commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/act3-ai/go-common/pkg/config"

	"github.com/act3-ai/gitui/internal/actions"
)

type rootOptions struct {
	configFiles []string
	dirs        []string
	verbosity   int
}

// dir returns the single working copy for commands that take one.
func (o *rootOptions) dir() string {
	if len(o.dirs) == 0 {
		return "."
	}
	return o.dirs[0]
}

// NewCLI creates the base gitui command.
func NewCLI(version string) *cobra.Command {
	opts := &rootOptions{}
	var tool *actions.Tool

	// cmd represents the base command when called without any subcommands
	cmd := &cobra.Command{
		Use:          "gitui",
		Short:        "Drive git working copies on behalf of a remote caller.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), cmd.ErrOrStderr(), opts.verbosity))
			tool = actions.NewTool(cmd.OutOrStdout(), version, opts.configFiles)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringArrayVar(&opts.configFiles, "config",
		config.EnvPathOr("GITUI_CONFIG", config.DefaultConfigSearchPath("gitui", "config.yaml")),
		"configuration file locations, later files take precedence")
	flags.StringArrayVarP(&opts.dirs, "dir", "C", nil, "working copy directory (repeatable for update)")
	flags.CountVarP(&opts.verbosity, "verbosity", "v", "increase log verbosity")

	toolFn := func() *actions.Tool { return tool }
	cmd.AddCommand(
		newUpdateCmd(opts, toolFn),
		newCommitCmd(opts, toolFn),
		newInitCmd(opts, toolFn),
		newFetchCmd(opts, toolFn),
		newPullCmd(opts, toolFn),
		newConfigCmd(toolFn),
	)

	return cmd
}

func newUpdateCmd(opts *rootOptions, tool func() *actions.Tool) *cobra.Command {
	var (
		force       bool
		concurrency int
	)
	cmd := &cobra.Command{
		Use:   "update BRANCH",
		Short: "Reconcile working copies with BRANCH on the remote, creating it when missing.",
		Long: `Fetch all remotes and reconcile each working copy with BRANCH.

If the remote has no BRANCH, it is created from the current HEAD, seeded with
an empty commit and pushed with upstream tracking. Otherwise BRANCH is checked
out if it is not already tracked and pulled. --force discards local
modifications and untracked files first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			action := &actions.Update{
				Tool:           tool(),
				Dirs:           opts.dirs,
				Branch:         args[0],
				Force:          force,
				MaxConcurrency: concurrency,
			}
			return action.Run(cmd.Context())
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "discard local modifications and untracked files")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "maximum working copies updated at once, 0 for no limit")
	return cmd
}

func newCommitCmd(opts *rootOptions, tool func() *actions.Tool) *cobra.Command {
	return &cobra.Command{
		Use:   "commit MESSAGE",
		Short: "Stage all changes, commit them and push the default branch.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			action := &actions.Commit{Tool: tool(), Dir: opts.dir(), Message: args[0]}
			return action.Run(cmd.Context())
		},
	}
}

func newInitCmd(opts *rootOptions, tool func() *actions.Tool) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a repository in the working copy directory if it has none.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			action := &actions.Init{Tool: tool(), Dir: opts.dir()}
			return action.Run(cmd.Context())
		},
	}
}

func newFetchCmd(opts *rootOptions, tool func() *actions.Tool) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Fetch all remotes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			action := &actions.Fetch{Tool: tool(), Dir: opts.dir()}
			return action.Run(cmd.Context())
		},
	}
}

func newPullCmd(opts *rootOptions, tool func() *actions.Tool) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Pull the upstream of the checked-out branch.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			action := &actions.Pull{Tool: tool(), Dir: opts.dir()}
			return action.Run(cmd.Context())
		},
	}
}

func newConfigCmd(tool func() *actions.Tool) *cobra.Command {
	var (
		write bool
		path  string
	)
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration, or write the defaults.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			action := &actions.ShowConfig{Tool: tool(), Write: write, Path: path}
			return action.Run(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "write the default configuration instead of printing")
	cmd.Flags().StringVar(&path, "path", "", "file to write, defaults to the user configuration directory")
	return cmd
}
