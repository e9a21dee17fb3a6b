// Package v1alpha1 defines the v1alpha1 schema.
//
// +kubebuilder:object:generate=true
package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Defaults applied by [ConfigurationDefault].
const (
	DefaultRemote             = "origin"
	DefaultDefaultBranch      = "staging"
	DefaultFirstCommitMessage = "first commit"
	DefaultGitPath            = "git"
)

// +kubebuilder:object:root=true

// Configuration type is used to store a user's current configuration settings.
type Configuration struct {
	metav1.TypeMeta `json:",inline"`

	ConfigurationSpec `json:",inline"`
}

// ConfigurationSpec is the actual configuration values.
type ConfigurationSpec struct {
	// Remote is the name of the single managed remote.
	Remote string `json:"remote,omitempty"`

	// DefaultBranch is the fixed branch used by commit-and-push, and as the
	// reset target when ResetTarget is "Default".
	DefaultBranch string `json:"defaultBranch,omitempty"`

	// FirstCommitMessage is the message of the empty commit that seeds a
	// newly created branch.
	FirstCommitMessage string `json:"firstCommitMessage,omitempty"`

	// ResetTarget selects the remote branch a forced update resets to.
	ResetTarget ResetTarget `json:"resetTarget,omitempty"`

	// GitPath is the git executable, resolved through PATH when not absolute.
	GitPath string `json:"gitPath,omitempty"`

	// Author overrides the identity recorded on commits.
	Author *Author `json:"author,omitempty"`

	// PostUpdate lists commands, in argv form, run in the working copy after
	// a successful pull.
	PostUpdate [][]string `json:"postUpdate,omitempty"`

	// UpdateTimeout bounds a single update of one working copy. Zero means
	// no bound.
	UpdateTimeout *metav1.Duration `json:"updateTimeout,omitempty"`
}

// ResetTarget names the branch a forced update resets the working copy to.
type ResetTarget string

const (
	// ResetTargetRequested resets to the requested branch on the remote.
	ResetTargetRequested ResetTarget = "Requested"
	// ResetTargetDefault resets to the configured default branch on the remote.
	ResetTargetDefault ResetTarget = "Default"
)

// Author is a git identity.
type Author struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ConfigurationDefault the fields in Configuration.  The argument must be a Configuration.
func ConfigurationDefault(obj *Configuration) {
	if obj == nil {
		obj = &Configuration{}
	}

	// Default the TypeMeta
	obj.APIVersion = GroupVersion.String()
	obj.Kind = "Configuration"

	if obj.Remote == "" {
		obj.Remote = DefaultRemote
	}
	if obj.DefaultBranch == "" {
		obj.DefaultBranch = DefaultDefaultBranch
	}
	if obj.FirstCommitMessage == "" {
		obj.FirstCommitMessage = DefaultFirstCommitMessage
	}
	if obj.ResetTarget == "" {
		obj.ResetTarget = ResetTargetRequested
	}
	if obj.GitPath == "" {
		obj.GitPath = DefaultGitPath
	}
}
