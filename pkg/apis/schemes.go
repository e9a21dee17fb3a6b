// Package apis defines api schemas.
package apis

//go:generate go run ../../internal/gen ../../docs/apis/schemas

import (
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"

	"github.com/act3-ai/gitui/pkg/apis/gitui.act3-ai.io/v1alpha1"
)

// NewScheme creates a new scheme with all gitui API types registered.
func NewScheme() *runtime.Scheme {
	scheme := runtime.NewScheme()
	utilruntime.Must(v1alpha1.AddToScheme(scheme))
	return scheme
}
