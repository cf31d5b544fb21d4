package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/huchen/gitie/internal/config"
	"github.com/huchen/gitie/internal/git"
	"github.com/huchen/gitie/internal/intent"
	"github.com/huchen/gitie/internal/llm"
	"github.com/huchen/gitie/internal/safety"
	"github.com/huchen/gitie/internal/ui"
)

// Exit codes. Passthrough and commit relay git's own exit code instead.
const (
	exitOK            = 0
	exitGeneralError  = 1
	exitConfigMissing = 2
	exitAIFailure     = 3
)

const explainOutputSystemPrompt = `You are an expert in git and version control.
The user ran a git command and captured its output. Explain that output in
plain language: what it means, what state the repository is in, and what the
user can do next. Be concise and concrete. Do not invent output that is not
shown.`

const explainCommandSystemPrompt = `You are an expert in git and version control.
The user will give you a git command line they have not run yet. Explain what
the command does, what each flag and argument means, and any consequences
worth knowing before running it. Be concise. Do not execute anything and do
not invent flags that are not present.`

type gitService interface {
	Run(args []string) int
	Capture(args []string) (string, int, error)
	StagedDiff() (string, error)
	Commit(message string, extra []string) int
}

type completer interface {
	Complete(ctx context.Context, systemPrompt, userContent string) (string, error)
}

// dispatcher executes exactly one resolved action. Collaborators are fields
// so tests can script them; the zero value is not usable, construct with
// newDispatcher.
type dispatcher struct {
	git          gitService
	loadConfig   func() (config.Config, string, error)
	commitPrompt func() (string, error)
	newCompleter func(cfg config.AIConfig) completer
	review       func(backend, message string) (bool, error)
	interactive  func() bool
	stdout       io.Writer
	stderr       io.Writer
}

func newDispatcher(stdout, stderr io.Writer) *dispatcher {
	return &dispatcher{
		git:          git.Runner{},
		loadConfig:   config.LoadOrCreate,
		commitPrompt: config.CommitPrompt,
		newCompleter: func(cfg config.AIConfig) completer { return llm.NewClient(cfg) },
		review:       ui.ReviewCommitMessage,
		interactive:  ui.StdinIsInteractive,
		stdout:       stdout,
		stderr:       stderr,
	}
}

// Dispatch runs the resolved action and returns the process exit code. The
// passthrough path touches neither the config nor the network: a broken AI
// setup must never break plain git usage.
func (d *dispatcher) Dispatch(ctx context.Context, resolved intent.Resolved) int {
	switch resolved.Action {
	case intent.ActionPassthrough:
		return d.git.Run(resolved.Args)
	case intent.ActionCommitMessage:
		return d.generateCommitMessage(ctx, resolved)
	case intent.ActionExplainHelp:
		return d.explainHelp(ctx, resolved)
	case intent.ActionExplainCommand:
		return d.explainCommand(ctx, resolved)
	default:
		fmt.Fprintf(d.stderr, "gitie: unknown action %q\n", resolved.Action)
		return exitGeneralError
	}
}

func (d *dispatcher) generateCommitMessage(ctx context.Context, resolved intent.Resolved) int {
	diff, err := d.git.StagedDiff()
	if err != nil {
		fmt.Fprintf(d.stderr, "gitie: %v\n", err)
		return exitGeneralError
	}
	if strings.TrimSpace(diff) == "" {
		fmt.Fprintln(d.stdout, "gitie: nothing staged; stage changes with `git add` first")
		return exitOK
	}

	cfg, ok := d.requireConfig()
	if !ok {
		return exitConfigMissing
	}
	prompt, err := d.commitPrompt()
	if err != nil {
		fmt.Fprintf(d.stderr, "gitie: %v\n", err)
		return exitConfigMissing
	}

	redacted := safety.RedactText(diff)
	log.Debug("requesting commit message", "model", cfg.AI.ModelName, "diff_bytes", len(redacted))
	message, err := d.newCompleter(cfg.AI).Complete(ctx, prompt, redacted)
	if err != nil {
		fmt.Fprintf(d.stderr, "gitie: %v\n", err)
		return exitAIFailure
	}

	if cfg.Commit.Confirm && d.interactive() {
		approved, reviewErr := d.review(cfg.UI.Backend, message)
		if reviewErr != nil {
			fmt.Fprintf(d.stderr, "gitie: review failed: %v\n", reviewErr)
			return exitGeneralError
		}
		if !approved {
			fmt.Fprintln(d.stdout, "gitie: commit aborted; message not used")
			return exitGeneralError
		}
	}

	return d.git.Commit(message, commitExtraArgs(resolved.Args))
}

func (d *dispatcher) explainHelp(ctx context.Context, resolved intent.Resolved) int {
	// Config first: without it the explanation cannot happen, so there is no
	// point spawning git for output that would be thrown away.
	cfg, ok := d.requireConfig()
	if !ok {
		return exitConfigMissing
	}

	output, _, err := d.git.Capture(resolved.Args)
	if err != nil {
		fmt.Fprintf(d.stderr, "gitie: %v\n", err)
		return exitGeneralError
	}

	commandLine := "git " + strings.Join(resolved.Args, " ")
	userContent := fmt.Sprintf("Command: %s\n\nOutput:\n%s", commandLine, safety.RedactText(output))
	log.Debug("requesting help explanation", "command", commandLine)
	explanation, err := d.newCompleter(cfg.AI).Complete(ctx, explainOutputSystemPrompt, userContent)
	if err != nil {
		fmt.Fprintf(d.stderr, "gitie: %v\n", err)
		return exitAIFailure
	}
	fmt.Fprintln(d.stdout, explanation)
	return exitOK
}

func (d *dispatcher) explainCommand(ctx context.Context, resolved intent.Resolved) int {
	cfg, ok := d.requireConfig()
	if !ok {
		return exitConfigMissing
	}

	commandLine := "git " + strings.Join(resolved.Args, " ")
	log.Debug("requesting command explanation", "command", commandLine)
	explanation, err := d.newCompleter(cfg.AI).Complete(ctx, explainCommandSystemPrompt, commandLine)
	if err != nil {
		fmt.Fprintf(d.stderr, "gitie: %v\n", err)
		return exitAIFailure
	}
	fmt.Fprintln(d.stdout, explanation)
	return exitOK
}

func (d *dispatcher) requireConfig() (config.Config, bool) {
	cfg, path, err := d.loadConfig()
	if err != nil {
		fmt.Fprintf(d.stderr, "gitie: could not load config: %v\n", err)
		return config.Config{}, false
	}
	if err := cfg.RequireAI(); err != nil {
		fmt.Fprintf(d.stderr, "gitie: %v (config: %s)\n", err, path)
		return config.Config{}, false
	}
	return cfg, true
}

// commitExtraArgs keeps the user's own commit flags (signing flags and the
// like) while dropping the leading subcommand token, which Commit re-adds.
func commitExtraArgs(residual []string) []string {
	if len(residual) > 0 && residual[0] == "commit" {
		return residual[1:]
	}
	return residual
}
