package oas

import (
	"bytes"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaswire/oaserrors"
)

// EncodeYAML writes doc as block-style YAML with the same members, in the
// same order, as Encode.
func (e *Encoder) EncodeYAML(doc *Document) ([]byte, error) {
	data, err := e.encode(doc)
	if err != nil {
		return nil, err
	}

	// JSON is a subset of YAML, so the encoded bytes parse into a node tree
	// that keeps member order.
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, &oaserrors.EncodingError{Message: "converting to YAML", Cause: err}
	}
	clearStyle(&node)

	var out bytes.Buffer
	ye := yaml.NewEncoder(&out)
	ye.SetIndent(2)
	if err := ye.Encode(&node); err != nil {
		return nil, &oaserrors.EncodingError{Message: "converting to YAML", Cause: err}
	}
	if err := ye.Close(); err != nil {
		return nil, &oaserrors.EncodingError{Message: "converting to YAML", Cause: err}
	}
	return out.Bytes(), nil
}

// clearStyle drops the flow and quoting styles the JSON input carried.
// Scalars that would otherwise resolve to another type are still quoted.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		clearStyle(child)
	}
}
