// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/actiondoc

// actiondoc regenerates GitHub Action inputs/outputs tables in a README.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/actiondoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/actiondoc"
	_buildTime string
)

// cliOptions describes actiondoc CLI flags and subcommands.
type cliOptions struct {
	Files   documentFlags  `group:"Documents"`
	Version versionCommand `command:"version" description:"Print version information"`
	Update  updateCommand  `command:"update" description:"Regenerate documentation section in document (default)"`
	Render  renderCommand  `command:"render" description:"Print generated documentation section"`
	Check   checkCommand   `command:"check" description:"Fail when document section is out of date"`
	Usage   usageCommand   `command:"usage" description:"Print workflow step snippet calling the action"`
}

// documentFlags selects source metadata, target document and region markers.
type documentFlags struct {
	ActionFile   string `short:"a" long:"action" description:"Action metadata file (defaults to action.yaml, then action.yml)"`
	DocumentFile string `short:"d" long:"document" description:"Markdown document to update" default:"README.md"`
	StartMarker  string `long:"start-marker" description:"Marker line opening generated section" default:"<!-- BEGINNING OF TEMPLATE -->"`
	EndMarker    string `long:"end-marker" description:"Marker line closing generated section" default:"<!-- END OF TEMPLATE -->"`
}

// updateCommand rewrites document section.
type updateCommand struct {
	runner *cliRunner
	files  *documentFlags
}

// Execute runs update subcommand.
func (command *updateCommand) Execute(_ []string) error {
	return command.runner.runUpdate(*command.files)
}

// renderCommand prints generated section without touching document.
type renderCommand struct {
	runner *cliRunner
	files  *documentFlags
}

// Execute runs render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(*command.files)
}

// checkCommand compares document with generated section.
type checkCommand struct {
	runner *cliRunner
	files  *documentFlags
}

// Execute runs check subcommand.
func (command *checkCommand) Execute(_ []string) error {
	return command.runner.runCheck(*command.files)
}

// usageCommand prints workflow step snippet.
type usageCommand struct {
	runner *cliRunner
	files  *documentFlags

	Uses string `short:"u" long:"uses" description:"Action reference placed in uses field" default:"./"`
	Mode string `short:"m" long:"mode" description:"Inputs included in snippet" choice:"required" choice:"all" default:"required"`
}

// Execute runs usage subcommand.
func (command *usageCommand) Execute(_ []string) error {
	return command.runner.runUsage(*command.files, command.Uses, actiondoc.UsageMode(command.Mode))
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo(command.runner.stdout)
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "actiondoc"
	}

	runner := cliRunner{
		programName: filepath.Base(programName),
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runUpdate regenerates document section and reports updated file.
func (runner *cliRunner) runUpdate(files documentFlags) error {
	cfg, err := files.config()
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}

	result, err := actiondoc.NewUpdater(cfg).Update()
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}

	if !result.MarkersFound {
		_, _ = fmt.Fprintf(runner.stderr, "warning: markers not found in %s; generated section appended\n", result.DocumentFile)
	}

	if _, err := fmt.Fprintf(runner.stdout, "%s file has been updated.\n", result.DocumentFile); err != nil {
		return fmt.Errorf("write status to stdout: %w", err)
	}

	return nil
}

// runRender writes generated section lines to stdout.
func (runner *cliRunner) runRender(files documentFlags) error {
	cfg, err := files.config()
	if err != nil {
		return fmt.Errorf("render section: %w", err)
	}

	action, err := actiondoc.ParseActionFile(cfg.ActionFile)
	if err != nil {
		return fmt.Errorf("render section: %w", err)
	}

	lines := actiondoc.NewUpdater(cfg).Section(action)
	if _, err := io.WriteString(runner.stdout, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("write section to stdout: %w", err)
	}

	return nil
}

// runCheck prints diff for outdated document and fails.
func (runner *cliRunner) runCheck(files documentFlags) error {
	cfg, err := files.config()
	if err != nil {
		return fmt.Errorf("check document: %w", err)
	}

	updater := actiondoc.NewUpdater(cfg)
	result, diff, err := updater.Check()
	if errors.Is(err, actiondoc.ErrDocumentOutdated) {
		if _, writeErr := io.WriteString(runner.stdout, diff); writeErr != nil {
			return fmt.Errorf("write diff to stdout: %w", writeErr)
		}

		if errors.Is(err, actiondoc.ErrMarkersNotFound) {
			effective := updater.Config()
			return fmt.Errorf("%w; add %s and %s lines to document", err, effective.StartMarker, effective.EndMarker)
		}

		return fmt.Errorf("%w; run %s update", err, runner.programName)
	}

	if err != nil {
		return fmt.Errorf("check document: %w", err)
	}

	if _, err := fmt.Fprintf(runner.stdout, "%s is up to date.\n", result.DocumentFile); err != nil {
		return fmt.Errorf("write status to stdout: %w", err)
	}

	return nil
}

// runUsage writes workflow step snippet to stdout.
func (runner *cliRunner) runUsage(files documentFlags, uses string, mode actiondoc.UsageMode) error {
	cfg, err := files.config()
	if err != nil {
		return fmt.Errorf("generate usage: %w", err)
	}

	action, err := actiondoc.ParseActionFile(cfg.ActionFile)
	if err != nil {
		return fmt.Errorf("generate usage: %w", err)
	}

	data, err := actiondoc.GenerateUsage(action, uses, mode)
	if err != nil {
		return fmt.Errorf("generate usage: %w", err)
	}

	if _, err := runner.stdout.Write(data); err != nil {
		return fmt.Errorf("write usage to stdout: %w", err)
	}

	return nil
}

// config converts CLI flags into updater configuration.
func (files documentFlags) config() (actiondoc.Config, error) {
	actionFile := strings.TrimSpace(files.ActionFile)
	if actionFile == "" {
		resolved, err := actiondoc.ResolveActionFile(".")
		if err != nil {
			return actiondoc.Config{}, err
		}

		actionFile = resolved
	}

	return actiondoc.Config{
		ActionFile:   actionFile,
		DocumentFile: files.DocumentFile,
		StartMarker:  files.StartMarker,
		EndMarker:    files.EndMarker,
	}, nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and runs selected subcommand, update when none given.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Update.runner = runner
	options.Update.files = &options.Files
	options.Render.runner = runner
	options.Render.files = &options.Files
	options.Check.runner = runner
	options.Check.files = &options.Files
	options.Usage.runner = runner
	options.Usage.files = &options.Files

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	parser.SubcommandsOptional = true
	applyCommandLongDescriptions(parser, runner.programName)

	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}

	if parser.Active == nil {
		return runner.runUpdate(options.Files)
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"update": strings.TrimSpace(fmt.Sprintf(`
Regenerate inputs/outputs tables between start and end markers.
Missing document is created with markers; document without markers
gets the section appended.

Examples:
> $ %s
> $ %s -a action.yml -d docs/usage.md update
`, programName, programName)),
		"render": strings.TrimSpace(fmt.Sprintf(`
Print generated inputs/outputs section to stdout.

Examples:
> $ %s render > section.md
`, programName)),
		"check": strings.TrimSpace(fmt.Sprintf(`
Compare document with generated section and print unified diff.
Exits with code 1 when document is out of date; nothing is written.

Examples:
> $ %s check
> $ %s -d docs/usage.md check
`, programName, programName)),
		"usage": strings.TrimSpace(fmt.Sprintf(`
Print workflow step calling the action with its inputs.
Input descriptions become YAML comments; defaults fill values.

Examples:
> $ %s usage -u acme/demo@v1
> $ %s usage -m all
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo(output io.Writer) {
	_, _ = fmt.Fprintf(output, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
