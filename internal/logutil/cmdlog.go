// Package logutil provides logging convenience functions.
package logutil

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/act3-ai/go-common/pkg/logger"
	"github.com/act3-ai/go-common/pkg/redact"
)

var commandNumber atomic.Int64

// CommandLogger returns a logger for a single external command run in dir,
// tagged with a process-unique command ID.
func CommandLogger(ctx context.Context, dir string) *slog.Logger {
	return logger.FromContext(ctx).WithGroup("git").With(
		slog.Int64("commandID", commandNumber.Add(1)),
		slog.String("dir", dir),
	)
}

// OutputLogger returns log at the verbosity used for dumping command output.
// The output can be large, so it is only enabled well below debug.
func OutputLogger(log *slog.Logger) *slog.Logger {
	return logger.V(log, 8)
}

var redactedConfigKeys = []string{
	"http.extraheader",
	"credential.helper",
}

// RedactArgs returns a copy of a git argument vector that is safe to log.
// URLs lose their user credentials and query strings, and "-c key=value"
// settings known to carry secrets have their values redacted.
func RedactArgs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		switch {
		case isSecretConfig(arg):
			key, _, _ := strings.Cut(arg, "=")
			out[i] = key + "=" + redact.String(arg)
		case strings.Contains(arg, "://"):
			out[i] = redactURL(arg)
		default:
			out[i] = arg
		}
	}
	return out
}

func isSecretConfig(arg string) bool {
	key, _, ok := strings.Cut(arg, "=")
	if !ok {
		return false
	}
	key = strings.ToLower(key)
	for _, k := range redactedConfigKeys {
		if strings.HasPrefix(key, k) {
			return true
		}
	}
	return false
}

// redact the URL removing user credentials and query string params.
func redactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	u.User = nil
	u.RawQuery = ""
	return u.String()
}
