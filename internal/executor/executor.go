// Package executor handles external command execution with privilege escalation support.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Executor runs external commands with optional dry-run and verbose modes.
type Executor struct {
	dryRun  bool
	verbose bool
}

// New creates a new Executor with the given options.
func New(dryRun, verbose bool) *Executor {
	return &Executor{
		dryRun:  dryRun,
		verbose: verbose,
	}
}

// SetDryRun enables or disables dry-run mode.
func (e *Executor) SetDryRun(dryRun bool) {
	e.dryRun = dryRun
}

// SetVerbose enables or disables verbose mode.
func (e *Executor) SetVerbose(verbose bool) {
	e.verbose = verbose
}

// Run executes a command, streaming its output to the terminal.
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	if e.dryRun {
		e.printDryRun(name, args)
		return nil
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if e.verbose {
		fmt.Printf("Executing: %s %s\n", name, strings.Join(args, " "))
	}

	return cmd.Run()
}

// RunSudo executes a command with privilege elevation if not already root.
func (e *Executor) RunSudo(ctx context.Context, name string, args ...string) error {
	if e.dryRun {
		e.printDryRunSudo(name, args)
		return nil
	}

	var cmd *exec.Cmd
	if IsRoot() {
		cmd = exec.CommandContext(ctx, name, args...)
	} else if elevator, ok := elevationCommand(); ok {
		elevArgs := append([]string{name}, args...)
		cmd = exec.CommandContext(ctx, elevator, elevArgs...)
	} else {
		return fmt.Errorf("this operation requires root privileges, but neither sudo nor doas is available")
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if e.verbose {
		if IsRoot() {
			fmt.Printf("Executing (as root): %s %s\n", name, strings.Join(args, " "))
		} else {
			fmt.Printf("Executing (elevated): %s %s\n", name, strings.Join(args, " "))
		}
	}

	return cmd.Run()
}

// Output runs a command and returns its stdout, passing stderr through
// to the terminal.
func (e *Executor) Output(ctx context.Context, name string, args ...string) (string, error) {
	if e.dryRun {
		e.printDryRun(name, args)
		return "", nil
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	if e.verbose {
		fmt.Printf("Executing: %s %s\n", name, strings.Join(args, " "))
	}

	err := cmd.Run()
	return stdout.String(), err
}

// OutputQuiet runs a command and returns its stdout, suppressing stderr.
func (e *Executor) OutputQuiet(ctx context.Context, name string, args ...string) (string, error) {
	if e.dryRun {
		e.printDryRun(name, args)
		return "", nil
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if e.verbose {
		fmt.Printf("Executing: %s %s\n", name, strings.Join(args, " "))
	}

	err := cmd.Run()
	return stdout.String(), err
}

// OutputSeparate runs a command capturing stdout and stderr independently.
// Nothing is streamed to the terminal; callers that need to classify a
// tool's failure inspect the returned stderr.
func (e *Executor) OutputSeparate(ctx context.Context, name string, args ...string) (string, string, error) {
	if e.dryRun {
		e.printDryRun(name, args)
		return "", "", nil
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if e.verbose {
		fmt.Printf("Executing: %s %s\n", name, strings.Join(args, " "))
	}

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// ExitCode extracts the process exit code from a command error.
// Returns 0 for nil and -1 when the error carries no exit status
// (start failure, killed by signal).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return exitErr.ExitCode()
	}
	return -1
}

func (e *Executor) printDryRun(name string, args []string) {
	fmt.Printf("[dry-run] %s %s\n", name, strings.Join(args, " "))
}

func (e *Executor) printDryRunSudo(name string, args []string) {
	fmt.Printf("[dry-run] sudo %s %s\n", name, strings.Join(args, " "))
}
