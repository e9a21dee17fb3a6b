// Package utils provides miscellaneous utility functions.
package utils //nolint: revive

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
	k8syaml "sigs.k8s.io/yaml"
)

// ToYamlNode converts v into a yaml.Node document, honoring json struct tags
// the way API objects expect.
func ToYamlNode(v any) (*yaml.Node, error) {
	data, err := k8syaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	node := &yaml.Node{}
	if err := yaml.Unmarshal(data, node); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return node, nil
}

// CommentedYAML encodes v as a yaml document headed by comment.
func CommentedYAML(v any, comment string) ([]byte, error) {
	node, err := ToYamlNode(v)
	if err != nil {
		return nil, err
	}
	node.HeadComment = comment

	buf := new(bytes.Buffer)
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("encoding yaml document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("closing yaml encoder: %w", err)
	}
	return buf.Bytes(), nil
}
