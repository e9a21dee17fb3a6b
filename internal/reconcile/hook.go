package reconcile

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/act3-ai/gitui/internal/logutil"
)

// HookError is returned when a post-update command fails.
type HookError struct {
	Argv   []string
	Output string
	Err    error
}

func (e *HookError) Error() string {
	if e.Output != "" {
		return e.Output
	}
	return fmt.Sprintf("%s: %v", strings.Join(e.Argv, " "), e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}

// runHooks runs each command in dir, stopping at the first failure.
func runHooks(ctx context.Context, dir string, hooks [][]string) error {
	for _, argv := range hooks {
		if len(argv) == 0 {
			continue
		}
		log := logutil.CommandLogger(ctx, dir)
		log.InfoContext(ctx, "running post-update hook", slog.Any("argv", logutil.RedactArgs(argv)))

		cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
		cmd.Dir = dir
		var out bytes.Buffer
		cmd.Stdout = &out
		cmd.Stderr = &out

		if err := cmd.Run(); err != nil {
			return &HookError{Argv: argv, Output: strings.TrimSpace(out.String()), Err: err}
		}
		logutil.OutputLogger(log).InfoContext(ctx, "hook output", slog.String("output", out.String()))
	}
	return nil
}
