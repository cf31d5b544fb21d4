package git

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner invokes the real git binary. Program is overridable for tests.
type Runner struct {
	Program string
}

func (r Runner) program() string {
	if strings.TrimSpace(r.Program) == "" {
		return "git"
	}
	return r.Program
}

// Run executes git with inherited stdio and returns its exit code verbatim.
// This is the passthrough path: no wrapping, no reinterpretation.
func (r Runner) Run(args []string) int {
	cmd := exec.Command(r.program(), args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "gitie: could not run %s: %v\n", r.program(), err)
		return 1
	}
	return 0
}

// Capture runs git and returns its combined output. A non-zero exit is not
// an error here: help text for a misspelled command is still text worth
// explaining. err is only set when git could not be started at all.
func (r Runner) Capture(args []string) (string, int, error) {
	cmd := exec.Command(r.program(), args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return string(output), exitErr.ExitCode(), nil
		}
		return "", -1, fmt.Errorf("could not run %s: %w", r.program(), err)
	}
	return string(output), 0, nil
}

// StagedDiff returns the output of `git diff --staged`. An empty string
// means there is nothing staged.
func (r Runner) StagedDiff() (string, error) {
	cmd := exec.Command(r.program(), "diff", "--staged")
	cmd.Stderr = os.Stderr
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("could not read staged diff: %w", err)
	}
	return string(output), nil
}

// Commit runs `git commit -m <message>` with the caller's remaining
// arguments (signing flags and the like) appended in their original order.
func (r Runner) Commit(message string, extra []string) int {
	return r.Run(CommitArgs(message, extra))
}

// CommitArgs assembles the commit argument vector. Split out so the ordering
// contract is testable without spawning git.
func CommitArgs(message string, extra []string) []string {
	args := make([]string, 0, len(extra)+3)
	args = append(args, "commit", "-m", message)
	args = append(args, extra...)
	return args
}
