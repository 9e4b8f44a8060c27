// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/actiondoc

package actiondoc

import "strings"

const (
	// DefaultStartMarker opens the generated region of a document.
	DefaultStartMarker = "<!-- BEGINNING OF TEMPLATE -->"
	// DefaultEndMarker closes the generated region of a document.
	DefaultEndMarker = "<!-- END OF TEMPLATE -->"
)

// ReplaceSection replaces text strictly between the first startMarker and the
// first endMarker that follows it. Markers and surrounding text are kept.
//
// When either marker is missing the lines are appended to content instead and
// false is returned. Repeated appends duplicate the section.
func ReplaceSection(content string, lines []string, startMarker, endMarker string) (string, bool) {
	body := strings.Join(lines, "\n")

	start := strings.Index(content, startMarker)
	if start < 0 {
		return content + body + "\n", false
	}

	end := strings.Index(content[start:], endMarker)
	if end < 0 {
		return content + body + "\n", false
	}

	end += start

	var out strings.Builder
	out.Grow(len(content) + len(body) + 2)
	out.WriteString(content[:start+len(startMarker)])
	out.WriteByte('\n')
	out.WriteString(body)
	out.WriteByte('\n')
	out.WriteString(content[end:])

	return out.String(), true
}

// Scaffold returns minimal document holding only the marker pair.
func Scaffold(startMarker, endMarker string) string {
	return startMarker + "\n" + endMarker
}
