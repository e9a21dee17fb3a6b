// Package gitmock mocks the git working copy adapter.
package gitmock

//go:generate go tool mockgen -typed -package gitmock -destination ./adapter.gen.go github.com/act3-ai/gitui/internal/git Adapter
