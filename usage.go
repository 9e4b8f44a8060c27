// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/actiondoc

package actiondoc

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// UsageModeAll includes every declared input in usage snippet.
	UsageModeAll UsageMode = "all"
	// UsageModeRequired includes required inputs only.
	UsageModeRequired UsageMode = "required"
)

// UsageMode configures which inputs appear in usage snippet.
type UsageMode string

// defaultUses is the step reference used when caller does not provide one.
const defaultUses = "./"

// GenerateUsage returns a workflow step snippet calling the action,
// with input descriptions rendered as YAML comments.
func GenerateUsage(action Action, uses string, mode UsageMode) ([]byte, error) {
	mode, err := normalizeUsageMode(mode)
	if err != nil {
		return nil, err
	}

	uses = strings.TrimSpace(uses)
	if uses == "" {
		uses = defaultUses
	}

	step := &yaml.Node{Kind: yaml.MappingNode}
	if name := sanitizeText(action.Name); name != "" {
		step.Content = append(step.Content, yamlScalarNode("!!str", "name"), yamlScalarNode("!!str", name))
	}

	step.Content = append(step.Content, yamlScalarNode("!!str", "uses"), yamlScalarNode("!!str", uses))

	inputs := action.Inputs.Required
	if mode == UsageModeAll {
		inputs = append(inputs[:len(inputs):len(inputs)], action.Inputs.Optional...)
	}

	if len(inputs) > 0 {
		with := &yaml.Node{Kind: yaml.MappingNode}
		for _, input := range inputs {
			key := yamlScalarNode("!!str", input.Name)
			key.HeadComment = normalizeYAMLComment(input.Description)
			with.Content = append(with.Content, key, yamlScalarNode("!!str", usageValue(input)))
		}

		step.Content = append(step.Content, yamlScalarNode("!!str", "with"), with)
	}

	root := &yaml.Node{
		Kind:    yaml.SequenceNode,
		Content: []*yaml.Node{step},
	}

	data, err := marshalYAMLNode(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeUsage, err)
	}

	return data, nil
}

// normalizeUsageMode validates and normalizes caller mode value.
func normalizeUsageMode(mode UsageMode) (UsageMode, error) {
	normalized := UsageMode(strings.ToLower(strings.TrimSpace(string(mode))))
	switch normalized {
	case "":
		return UsageModeRequired, nil
	case UsageModeAll, UsageModeRequired:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownUsageMode, mode)
	}
}

// usageValue returns declared default or a placeholder named after input.
func usageValue(input Declaration) string {
	if input.Default != "" {
		return input.Default
	}

	return "<" + input.Name + ">"
}

// marshalYAMLNode encodes node as a YAML document with two-space indent.
func marshalYAMLNode(node *yaml.Node) ([]byte, error) {
	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{node},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// normalizeYAMLComment strips blank lines from comment body.
func normalizeYAMLComment(comment string) string {
	lines := strings.Split(normalizeLineEndings(comment), "\n")
	normalized := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}

		normalized = append(normalized, line)
	}

	return strings.Join(normalized, "\n")
}

// yamlScalarNode creates one scalar yaml.Node with explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}
