package actions

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"

	"github.com/act3-ai/gitui/pkg/apis/gitui.act3-ai.io/v1alpha1"
	"github.com/act3-ai/gitui/pkg/apis/utils"
)

const configHeader = "gitui configuration"

// ErrConfigExists is returned when writing a default configuration would
// overwrite an existing file.
var ErrConfigExists = errors.New("configuration file already exists")

// ShowConfig prints the effective configuration, or writes the default
// configuration to the user's configuration directory.
type ShowConfig struct {
	*Tool

	// Write saves the defaults instead of printing.
	Write bool
	// Path overrides the file written by Write.
	Path string
}

// Run runs the config action.
func (action *ShowConfig) Run(ctx context.Context) error {
	if action.Write {
		return action.writeDefaults()
	}

	cfg, err := action.GetConfig(ctx)
	if err != nil {
		return fmt.Errorf("getting configuration: %w", err)
	}
	data, err := utils.CommentedYAML(cfg, configHeader)
	if err != nil {
		return fmt.Errorf("rendering configuration: %w", err)
	}

	action.outMu.Lock()
	defer action.outMu.Unlock()
	if _, err := action.out.Write(data); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}
	return nil
}

func (action *ShowConfig) writeDefaults() error {
	path := action.Path
	if path == "" {
		var err error
		path, err = xdg.ConfigFile("gitui/config.yaml")
		if err != nil {
			return fmt.Errorf("resolving configuration path: %w", err)
		}
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	cfg := &v1alpha1.Configuration{}
	action.GetScheme().Default(cfg)
	data, err := utils.CommentedYAML(cfg, configHeader)
	if err != nil {
		return fmt.Errorf("rendering configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}

	action.success("wrote %s", path)
	return nil
}
