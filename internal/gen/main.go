// Command gen writes the JSON Schema of the gitui configuration API.
//
//	go run ./internal/gen docs/apis/schemas
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/act3-ai/go-common/pkg/genschema"

	"github.com/act3-ai/gitui/pkg/apis"
	"github.com/act3-ai/gitui/pkg/apis/gitui.act3-ai.io/v1alpha1"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: gen OUTPUT_DIR")
	}
	dir := os.Args[1]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(fmt.Errorf("creating %s: %w", dir, err))
	}

	if err := genschema.GenerateGroupSchemas(dir, apis.NewScheme(), []string{v1alpha1.Group}, v1alpha1.Repository); err != nil {
		log.Fatal(fmt.Errorf("generating configuration schema: %w", err))
	}
}
