// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/actiondoc

package actiondoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// BenchmarkParseAction measures action metadata decoding and grouping cost.
func BenchmarkParseAction(b *testing.B) {
	data := []byte(benchmarkActionYAML(50))

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for i := 0; i < b.N; i++ {
		if _, err := ParseAction(data); err != nil {
			b.Fatalf("ParseAction: %v", err)
		}
	}
}

// BenchmarkSection measures table building and rendering for parsed action.
func BenchmarkSection(b *testing.B) {
	action, err := ParseAction([]byte(benchmarkActionYAML(50)))
	if err != nil {
		b.Fatalf("ParseAction: %v", err)
	}

	updater := NewUpdater(DefaultConfig())

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = updater.Section(action)
	}
}

// BenchmarkPlan measures read + render + replace flow from files.
func BenchmarkPlan(b *testing.B) {
	dir := b.TempDir()
	actionPath := filepath.Join(dir, "action.yaml")
	docPath := filepath.Join(dir, "README.md")

	if err := os.WriteFile(actionPath, []byte(benchmarkActionYAML(50)), 0o600); err != nil {
		b.Fatalf("write action: %v", err)
	}

	if err := os.WriteFile(docPath, []byte("# Bench\n\n"+Scaffold(DefaultStartMarker, DefaultEndMarker)+"\n"), 0o600); err != nil {
		b.Fatalf("write document: %v", err)
	}

	updater := NewUpdater(Config{ActionFile: actionPath, DocumentFile: docPath})

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := updater.Plan(); err != nil {
			b.Fatalf("Plan: %v", err)
		}
	}
}

// benchmarkActionYAML builds action metadata with count inputs and outputs.
func benchmarkActionYAML(count int) string {
	var out strings.Builder
	out.WriteString("name: Bench\ninputs:\n")
	for i := 0; i < count; i++ {
		fmt.Fprintf(&out, "  input-%03d:\n    description: Input number %d\n    required: %t\n    default: value-%d\n", i, i, i%3 == 0, i)
	}

	out.WriteString("outputs:\n")
	for i := 0; i < count; i++ {
		fmt.Fprintf(&out, "  output-%03d:\n    description: Output number %d\n", i, i)
	}

	return out.String()
}
