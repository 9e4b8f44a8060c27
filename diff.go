// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/actiondoc

package actiondoc

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff returns unified diff between current and regenerated document text.
func UnifiedDiff(path, before, after string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path + " (generated)",
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff %q: %w", path, err)
	}

	return text, nil
}
