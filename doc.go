// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/actiondoc

/*
Package actiondoc regenerates GitHub Action inputs/outputs documentation
inside a markdown document.

Action metadata (action.yaml or action.yml) is parsed into declarations,
turned into markdown tables and written between two marker comments of the
target document. Text outside the markers is kept verbatim.

Update README.md from action.yaml with default markers:

	result, err := actiondoc.NewUpdater(actiondoc.DefaultConfig()).Update()
	if err != nil {
		return err
	}

	fmt.Printf("%s file has been updated.\n", result.DocumentFile)

Use custom files and markers:

	updater := actiondoc.NewUpdater(actiondoc.Config{
		ActionFile:   "action.yml",
		DocumentFile: "docs/usage.md",
		StartMarker:  "<!-- action-docs-start -->",
		EndMarker:    "<!-- action-docs-end -->",
	})

Verify document in CI without writing it:

	_, diff, err := updater.Check()
	if errors.Is(err, actiondoc.ErrDocumentOutdated) {
		fmt.Print(diff)
	}

Work with parts directly:

	action, err := actiondoc.ParseActionFile("action.yaml")
	if err != nil {
		return err
	}

	lines := actiondoc.RenderTable(actiondoc.InputHeaders, action.Inputs.Rows())
	content, found := actiondoc.ReplaceSection(readme, lines,
		actiondoc.DefaultStartMarker, actiondoc.DefaultEndMarker)

When markers are missing ReplaceSection appends the lines to the document
and reports false; running it again appends them again.
*/
package actiondoc
