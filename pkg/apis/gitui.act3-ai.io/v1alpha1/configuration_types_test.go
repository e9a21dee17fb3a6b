// Package v1alpha1 defines the v1alpha1 schema.
//
// +kubebuilder:object:generate=true
package v1alpha1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	v1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestConfigurationDefault(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		expected := &Configuration{
			TypeMeta: v1.TypeMeta{
				Kind:       "Configuration",
				APIVersion: GroupVersion.String(),
			},
			ConfigurationSpec: ConfigurationSpec{
				Remote:             "origin",
				DefaultBranch:      "staging",
				FirstCommitMessage: "first commit",
				ResetTarget:        ResetTargetRequested,
				GitPath:            "git",
			},
		}

		in := &Configuration{}
		ConfigurationDefault(in)

		assert.Equal(t, expected, in)
	})

	t.Run("Preserved", func(t *testing.T) {
		in := &Configuration{
			ConfigurationSpec: ConfigurationSpec{
				Remote:             "upstream",
				DefaultBranch:      "main",
				FirstCommitMessage: "init",
				ResetTarget:        ResetTargetDefault,
				GitPath:            "/usr/bin/git",
				Author:             &Author{Name: "bot", Email: "bot@example.com"},
				PostUpdate:         [][]string{{"make", "deps"}},
				UpdateTimeout:      &v1.Duration{Duration: time.Minute},
			},
		}
		want := in.DeepCopy()

		ConfigurationDefault(in)

		assert.Equal(t, want.ConfigurationSpec, in.ConfigurationSpec)
		assert.Equal(t, "Configuration", in.Kind)
	})
}

func TestConfigurationDeepCopy(t *testing.T) {
	t.Run("Independent", func(t *testing.T) {
		in := &Configuration{
			ConfigurationSpec: ConfigurationSpec{
				Author:     &Author{Name: "a", Email: "a@example.com"},
				PostUpdate: [][]string{{"echo", "hi"}},
			},
		}

		out := in.DeepCopy()
		out.Author.Name = "b"
		out.PostUpdate[0][1] = "bye"

		assert.Equal(t, "a", in.Author.Name)
		assert.Equal(t, "hi", in.PostUpdate[0][1])
	})
}
