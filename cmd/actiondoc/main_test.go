// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/actiondoc

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testStartMarker = "<!-- BEGINNING OF TEMPLATE -->"

func TestRunUpdatesDocumentByDefault(t *testing.T) {
	t.Parallel()

	actionPath, docPath := writeActionFixture(t)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"-a", actionPath, "-d", docPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), docPath+" file has been updated.")
	if stderr.Len() != 0 {
		t.Fatalf("stderr should be empty, got: %s", stderr.String())
	}

	content := readFile(t, docPath)
	assertContains(t, content, testStartMarker+"\n### Inputs")
	assertContains(t, content, "| token ")
}

func TestRunUpdateCommandIsIdempotent(t *testing.T) {
	t.Parallel()

	actionPath, docPath := writeActionFixture(t)
	writeFile(t, docPath, "# Demo\n\n"+testStartMarker+"\n<!-- END OF TEMPLATE -->\n")

	for i := 0; i < 2; i++ {
		var stdout bytes.Buffer
		var stderr bytes.Buffer
		code := run([]string{"-a", actionPath, "-d", docPath, "update"}, &stdout, &stderr)
		if code != 0 {
			t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
		}
	}

	content := readFile(t, docPath)
	if strings.Count(content, "### Inputs") != 1 {
		t.Fatalf("expected single generated section:\n%s", content)
	}
}

func TestRunWarnsWhenMarkersMissing(t *testing.T) {
	t.Parallel()

	actionPath, docPath := writeActionFixture(t)
	writeFile(t, docPath, "# Demo\n")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"-a", actionPath, "-d", docPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stderr.String(), "warning: markers not found in "+docPath)
	assertContains(t, readFile(t, docPath), "# Demo\n### Inputs")
}

func TestRunCustomMarkers(t *testing.T) {
	t.Parallel()

	actionPath, docPath := writeActionFixture(t)
	writeFile(t, docPath, "<!-- start -->\n<!-- end -->\n")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{
		"-a", actionPath,
		"-d", docPath,
		"--start-marker", "<!-- start -->",
		"--end-marker", "<!-- end -->",
	}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, readFile(t, docPath), "<!-- start -->\n### Inputs")
}

func TestRunRenderWritesSectionToStdout(t *testing.T) {
	t.Parallel()

	actionPath, docPath := writeActionFixture(t)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"-a", actionPath, "-d", docPath, "render"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	rendered := stdout.String()
	if !strings.HasPrefix(rendered, "### Inputs\n") {
		t.Fatalf("unexpected render output:\n%s", rendered)
	}

	assertContains(t, rendered, "### Outputs")
	assertContains(t, rendered, "| result ")

	if _, err := os.Stat(docPath); err == nil {
		t.Fatal("render must not create document")
	}
}

func TestRunCheckFailsForOutdatedDocument(t *testing.T) {
	t.Parallel()

	actionPath, docPath := writeActionFixture(t)
	writeFile(t, docPath, testStartMarker+"\nstale\n<!-- END OF TEMPLATE -->\n")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"-a", actionPath, "-d", docPath, "check"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "-stale")
	assertContains(t, stderr.String(), "document is out of date")

	stdout.Reset()
	stderr.Reset()
	if code := run([]string{"-a", actionPath, "-d", docPath}, &stdout, &stderr); code != 0 {
		t.Fatalf("update exit code = %d, stderr: %s", code, stderr.String())
	}

	stdout.Reset()
	stderr.Reset()
	code = run([]string{"-a", actionPath, "-d", docPath, "check"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("check after update exit code = %d, stdout: %s, stderr: %s", code, stdout.String(), stderr.String())
	}

	assertContains(t, stdout.String(), docPath+" is up to date.")
}

func TestRunCheckReportsMissingMarkers(t *testing.T) {
	t.Parallel()

	actionPath, docPath := writeActionFixture(t)
	writeFile(t, docPath, "# Demo\n")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"-a", actionPath, "-d", docPath, "check"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stderr.String(), "markers not found in "+docPath)
	assertContains(t, stderr.String(), "add "+testStartMarker+" and <!-- END OF TEMPLATE --> lines to document")
	if strings.Contains(stderr.String(), " update") {
		t.Fatalf("check without markers must not suggest update: %s", stderr.String())
	}

	if got := readFile(t, docPath); got != "# Demo\n" {
		t.Fatalf("check must not write document: %q", got)
	}
}

func TestRunUsageWritesStepSnippet(t *testing.T) {
	t.Parallel()

	actionPath, _ := writeActionFixture(t)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"-a", actionPath, "usage", "-u", "acme/demo@v1", "-m", "all"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "uses: acme/demo@v1")
	assertContains(t, stdout.String(), "# GitHub token")
	assertContains(t, stdout.String(), "retries:")
}

func TestRunUsageRejectsUnknownMode(t *testing.T) {
	t.Parallel()

	actionPath, _ := writeActionFixture(t)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"-a", actionPath, "usage", "-m", "optional"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stderr.String(), "Invalid value") {
		t.Fatalf("unexpected stderr: %s", stderr.String())
	}
}

func TestRunReturnsErrorForMissingActionFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	docPath := filepath.Join(dir, "README.md")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"-a", filepath.Join(dir, "action.yaml"), "-d", docPath}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stderr.String(), "update document: read action file:")
	if _, err := os.Stat(docPath); err == nil {
		t.Fatal("document must not be created when action file is missing")
	}
}

func TestRunReturnsErrorForSchemaType(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	actionPath := filepath.Join(dir, "action.yaml")
	writeFile(t, actionPath, "inputs:\n  token:\n    required: \"yes\"\n")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"-a", actionPath, "-d", filepath.Join(dir, "README.md")}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}

	assertContains(t, stderr.String(), "inputs.token.required must be a boolean")
}

//nolint:paralleltest // changes process working directory.
func TestRunResolvesActionYmlInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "action.yml"), fixtureActionYAML)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "README.md file has been updated.")
	assertContains(t, readFile(t, filepath.Join(dir, "README.md")), "| token ")
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"--help"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "--document")
}

func TestRunReturnsErrorForUnknownFlag(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"--missing"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d, stderr: %s", code, stderr.String())
	}
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"version"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "version:  dev")
}

const fixtureActionYAML = `name: Demo
description: Demo action
inputs:
  token:
    description: GitHub token
    required: true
  retries:
    description: Retry count
    default: 3
outputs:
  result:
    description: Result value
`

func writeActionFixture(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	actionPath := filepath.Join(dir, "action.yaml")
	writeFile(t, actionPath, fixtureActionYAML)

	return actionPath, filepath.Join(dir, "README.md")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}

	return string(data)
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}
