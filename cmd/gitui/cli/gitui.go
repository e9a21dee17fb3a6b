// Package cli exports the gitui command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/act3-ai/gitui/internal/cli"
)

// NewCLI creates the base gitui command.
func NewCLI(version string) *cobra.Command {
	return cli.NewCLI(version)
}
