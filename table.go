// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/actiondoc

package actiondoc

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	// InputHeaders are column headers of the inputs table.
	InputHeaders = []string{"Name", "Description", "Required", "Default"}
	// OutputHeaders are column headers of the outputs table.
	OutputHeaders = []string{"Name", "Description"}
)

// cellStyle gives every table cell a one character margin and no colors.
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Rows returns table rows for inputs: required first, then optional.
func (inputs Inputs) Rows() [][]string {
	rows := make([][]string, 0, len(inputs.Required)+len(inputs.Optional))
	for _, group := range [][]Declaration{inputs.Required, inputs.Optional} {
		for _, input := range group {
			rows = append(rows, []string{
				tableCell(input.Name),
				tableCell(input.Description),
				strconv.FormatBool(input.Required),
				tableCell(input.Default),
			})
		}
	}

	return rows
}

// Rows returns table rows for outputs.
func (outputs Outputs) Rows() [][]string {
	rows := make([][]string, 0, len(outputs))
	for _, output := range outputs {
		rows = append(rows, []string{
			tableCell(output.Name),
			tableCell(output.Description),
		})
	}

	return rows
}

// RenderTable formats headers and rows as markdown pipe table lines.
func RenderTable(headers []string, rows [][]string) []string {
	t := table.New().
		Border(lipgloss.MarkdownBorder()).
		BorderTop(false).
		BorderBottom(false).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	rendered := normalizeLineEndings(t.String())
	lines := strings.Split(strings.Trim(rendered, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return lines
}

// tableCell squashes whitespace and escapes pipes so text stays in one cell.
func tableCell(text string) string {
	return strings.ReplaceAll(sanitizeText(text), "|", `\|`)
}
