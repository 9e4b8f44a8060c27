// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/actiondoc

package actiondoc

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultActionFile is the action metadata file name used when caller does not provide one.
	DefaultActionFile = "action.yaml"
	// alternateActionFile is the second metadata file name accepted by GitHub.
	alternateActionFile = "action.yml"
)

// Declaration is one named input or output entry of action metadata.
type Declaration struct {
	Name        string
	Description string
	Default     string
	Required    bool
}

// Inputs holds action inputs split into required and optional groups,
// each sorted by name.
type Inputs struct {
	Required []Declaration
	Optional []Declaration
}

// Outputs holds action outputs sorted by name.
type Outputs []Declaration

// Action is the documented subset of GitHub Action metadata.
type Action struct {
	Name        string
	Description string
	Inputs      Inputs
	Outputs     Outputs
}

// ResolveActionFile returns the first existing action metadata file in dir.
// When none exists, the action.yaml path is returned together with error.
func ResolveActionFile(dir string) (string, error) {
	candidates := []string{DefaultActionFile, alternateActionFile}
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	path := filepath.Join(dir, DefaultActionFile)
	_, err := os.Stat(path)
	return path, fmt.Errorf("%w: %w", ErrReadActionFile, err)
}

// ParseActionFile reads action metadata from file and parses it.
func ParseActionFile(path string) (Action, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Action{}, fmt.Errorf("%w: %w", ErrReadActionFile, err)
	}

	return ParseAction(data)
}

// ParseAction decodes action metadata YAML into inputs and outputs groups.
func ParseAction(data []byte) (Action, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Action{}, fmt.Errorf("%w: %w", ErrDecodeAction, err)
	}

	root := documentRoot(&doc)
	if root == nil || isNullNode(root) {
		return Action{}, nil
	}

	if root.Kind != yaml.MappingNode {
		return Action{}, schemaTypeError("(root)", "a mapping", root)
	}

	var action Action
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		value := resolveAlias(root.Content[i+1])

		switch key {
		case "name":
			text, err := scalarText(key, value)
			if err != nil {
				return Action{}, err
			}

			action.Name = text
		case "description":
			text, err := scalarText(key, value)
			if err != nil {
				return Action{}, err
			}

			action.Description = text
		case "inputs":
			declarations, err := parseDeclarations(key, value)
			if err != nil {
				return Action{}, err
			}

			action.Inputs = newInputs(declarations)
		case "outputs":
			declarations, err := parseDeclarations(key, value)
			if err != nil {
				return Action{}, err
			}

			action.Outputs = newOutputs(declarations)
		}
	}

	return action, nil
}

// newInputs splits declarations into required and optional groups before sorting.
func newInputs(declarations []Declaration) Inputs {
	var inputs Inputs
	for _, declaration := range declarations {
		if declaration.Required {
			inputs.Required = append(inputs.Required, declaration)
			continue
		}

		inputs.Optional = append(inputs.Optional, declaration)
	}

	sortDeclarations(inputs.Required)
	sortDeclarations(inputs.Optional)
	return inputs
}

// newOutputs sorts output declarations by name.
func newOutputs(declarations []Declaration) Outputs {
	outputs := Outputs(declarations)
	sortDeclarations(outputs)
	return outputs
}

// sortDeclarations orders declarations by name only.
func sortDeclarations(declarations []Declaration) {
	slices.SortFunc(declarations, func(a, b Declaration) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// parseDeclarations walks one "inputs" or "outputs" mapping.
// A present but null group is a type error; only an absent key means empty.
func parseDeclarations(group string, node *yaml.Node) ([]Declaration, error) {
	if node.Kind != yaml.MappingNode {
		return nil, schemaTypeError(group, "a mapping", node)
	}

	out := make([]Declaration, 0, len(node.Content)/2)
	seen := make(map[string]struct{}, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := resolveAlias(node.Content[i])
		if keyNode.Kind != yaml.ScalarNode {
			return nil, schemaTypeError(group+" key", "a scalar", keyNode)
		}

		name := keyNode.Value
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %s.%s is declared more than once", ErrSchemaType, group, name)
		}

		seen[name] = struct{}{}

		declaration, err := parseDeclaration(group+"."+name, name, resolveAlias(node.Content[i+1]))
		if err != nil {
			return nil, err
		}

		out = append(out, declaration)
	}

	return out, nil
}

// parseDeclaration reads description, required and default fields of one record.
func parseDeclaration(path, name string, node *yaml.Node) (Declaration, error) {
	declaration := Declaration{Name: name}
	if node.Kind != yaml.MappingNode {
		return Declaration{}, schemaTypeError(path, "a mapping", node)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		field := node.Content[i].Value
		value := resolveAlias(node.Content[i+1])
		fieldPath := path + "." + field

		switch field {
		case "description":
			text, err := scalarText(fieldPath, value)
			if err != nil {
				return Declaration{}, err
			}

			declaration.Description = text
		case "default":
			text, err := scalarText(fieldPath, value)
			if err != nil {
				return Declaration{}, err
			}

			declaration.Default = text
		case "required":
			if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!bool" {
				return Declaration{}, schemaTypeError(fieldPath, "a boolean", value)
			}

			var required bool
			if err := value.Decode(&required); err != nil {
				return Declaration{}, fmt.Errorf("%w: %s: %w", ErrSchemaType, fieldPath, err)
			}

			declaration.Required = required
		}
	}

	return declaration, nil
}

// scalarText returns literal scalar text; null scalars become empty string.
func scalarText(path string, node *yaml.Node) (string, error) {
	if isNullNode(node) {
		return "", nil
	}

	if node.Kind != yaml.ScalarNode {
		return "", schemaTypeError(path, "a scalar", node)
	}

	return node.Value, nil
}

// documentRoot unwraps document node into its single content node.
func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind != yaml.DocumentNode {
		return resolveAlias(doc)
	}

	if len(doc.Content) == 0 {
		return nil
	}

	return resolveAlias(doc.Content[0])
}

// resolveAlias follows YAML alias nodes to their anchors.
func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}

// isNullNode reports whether node is absent or an explicit YAML null.
func isNullNode(node *yaml.Node) bool {
	if node == nil || node.Kind == 0 {
		return true
	}

	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

// schemaTypeError formats shape mismatch error with YAML position.
func schemaTypeError(path, want string, node *yaml.Node) error {
	return fmt.Errorf("%w: %s must be %s, got %s at line %d", ErrSchemaType, path, want, nodeKindName(node), node.Line)
}

// nodeKindName describes node kind for error messages.
func nodeKindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar " + node.ShortTag()
	default:
		return "unknown node"
	}
}
