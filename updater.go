// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/actiondoc

package actiondoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

const (
	// DefaultDocumentFile is the target document used when caller does not provide one.
	DefaultDocumentFile = "README.md"
	// documentFileMode is used when the target document has to be created.
	documentFileMode fs.FileMode = 0o644
)

const (
	inputsHeading  = "### Inputs"
	outputsHeading = "### Outputs"
)

// Config selects source metadata, target document and region markers.
type Config struct {
	// ActionFile is the action metadata YAML path.
	ActionFile string
	// DocumentFile is the markdown document rewritten between markers.
	DocumentFile string
	// StartMarker opens the generated region.
	StartMarker string
	// EndMarker closes the generated region.
	EndMarker string
}

// DefaultConfig returns configuration matching the conventional repository layout.
func DefaultConfig() Config {
	return Config{
		ActionFile:   DefaultActionFile,
		DocumentFile: DefaultDocumentFile,
		StartMarker:  DefaultStartMarker,
		EndMarker:    DefaultEndMarker,
	}
}

// normalize fills empty fields with defaults.
func (cfg Config) normalize() Config {
	defaults := DefaultConfig()
	if strings.TrimSpace(cfg.ActionFile) == "" {
		cfg.ActionFile = defaults.ActionFile
	}

	if strings.TrimSpace(cfg.DocumentFile) == "" {
		cfg.DocumentFile = defaults.DocumentFile
	}

	if cfg.StartMarker == "" {
		cfg.StartMarker = defaults.StartMarker
	}

	if cfg.EndMarker == "" {
		cfg.EndMarker = defaults.EndMarker
	}

	return cfg
}

// Result describes one planned or applied document update.
type Result struct {
	DocumentFile string
	Before       string
	After        string
	MarkersFound bool
	Created      bool
	Changed      bool
}

// Updater regenerates the inputs/outputs section of one document.
type Updater struct {
	config Config
}

// NewUpdater creates updater for configured file pair.
func NewUpdater(cfg Config) *Updater {
	return &Updater{config: cfg.normalize()}
}

// Config returns effective updater configuration.
func (updater *Updater) Config() Config {
	return updater.config
}

// Section renders generated markdown lines for action inputs and outputs.
func (updater *Updater) Section(action Action) []string {
	inputsTable := RenderTable(InputHeaders, action.Inputs.Rows())
	outputsTable := RenderTable(OutputHeaders, action.Outputs.Rows())

	lines := make([]string, 0, len(inputsTable)+len(outputsTable)+6)
	lines = append(lines, inputsHeading, "")
	lines = append(lines, inputsTable...)
	lines = append(lines, "", outputsHeading, "")
	lines = append(lines, outputsTable...)
	return lines
}

// Plan computes new document content without touching the filesystem.
func (updater *Updater) Plan() (Result, error) {
	action, err := ParseActionFile(updater.config.ActionFile)
	if err != nil {
		return Result{}, err
	}

	before, created, err := updater.readDocument()
	if err != nil {
		return Result{}, err
	}

	after, found := ReplaceSection(before, updater.Section(action), updater.config.StartMarker, updater.config.EndMarker)
	return Result{
		DocumentFile: updater.config.DocumentFile,
		Before:       before,
		After:        after,
		MarkersFound: found,
		Created:      created,
		Changed:      created || before != after,
	}, nil
}

// Update regenerates the document section and writes the document.
// A missing document is planned from the marker scaffold and written once.
func (updater *Updater) Update() (Result, error) {
	result, err := updater.Plan()
	if err != nil {
		return Result{}, err
	}

	if err := writeDocument(result.DocumentFile, result.After); err != nil {
		return Result{}, err
	}

	return result, nil
}

// Check reports whether document already holds generated section.
// Outdated document returns unified diff and ErrDocumentOutdated,
// also wrapping ErrMarkersNotFound when markers are absent.
func (updater *Updater) Check() (Result, string, error) {
	result, err := updater.Plan()
	if err != nil {
		return Result{}, "", err
	}

	if !result.Changed {
		return result, "", nil
	}

	before := result.Before
	if result.Created {
		before = ""
	}

	diff, err := UnifiedDiff(result.DocumentFile, before, result.After)
	if err != nil {
		return result, "", err
	}

	if !result.MarkersFound {
		return result, diff, fmt.Errorf("%w: %w in %s", ErrDocumentOutdated, ErrMarkersNotFound, result.DocumentFile)
	}

	return result, diff, fmt.Errorf("%w: %s", ErrDocumentOutdated, result.DocumentFile)
}

// readDocument loads target document, falling back to scaffold when missing.
func (updater *Updater) readDocument() (string, bool, error) {
	data, err := os.ReadFile(updater.config.DocumentFile)
	if err == nil {
		return string(data), false, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return Scaffold(updater.config.StartMarker, updater.config.EndMarker), true, nil
	}

	return "", false, fmt.Errorf("%w %q: %w", ErrReadDocument, updater.config.DocumentFile, err)
}

// writeDocument overwrites document, keeping mode of existing file.
func writeDocument(path, content string) error {
	//nolint:gosec // documentation files are meant to be world-readable.
	if err := os.WriteFile(path, []byte(content), documentFileMode); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteDocument, path, err)
	}

	return nil
}
