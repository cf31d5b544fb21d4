package intent

import (
	"reflect"
	"testing"
)

func resolveArgs(args ...string) Resolved {
	return Resolve(NewScan(args))
}

func TestResolveNoActivationIsPassthrough(t *testing.T) {
	resolved := resolveArgs("status", "-s")
	if resolved.Action != ActionPassthrough {
		t.Fatalf("expected passthrough, got %s", resolved.Action)
	}
	if !reflect.DeepEqual(resolved.Args, []string{"status", "-s"}) {
		t.Fatalf("passthrough args must be the original vector, got %v", resolved.Args)
	}
}

func TestResolveEmptyInvocationIsPassthrough(t *testing.T) {
	resolved := resolveArgs()
	if resolved.Action != ActionPassthrough {
		t.Fatalf("expected passthrough for empty invocation, got %s", resolved.Action)
	}
	if len(resolved.Args) != 0 {
		t.Fatalf("expected empty args, got %v", resolved.Args)
	}
}

func TestResolveCommitWithoutActivationIsPassthrough(t *testing.T) {
	resolved := resolveArgs("commit", "-m", "fix typo")
	if resolved.Action != ActionPassthrough {
		t.Fatalf("expected passthrough, got %s", resolved.Action)
	}
}

func TestResolveCommitOwnsActivationRegardlessOfPosition(t *testing.T) {
	cases := [][]string{
		{"commit", "--ai"},
		{"--ai", "commit"},
		{"--ai", "commit", "--ai", "-S"},
		{"commit", "--ai", "--help"},
	}
	for _, args := range cases {
		resolved := resolveArgs(args...)
		if resolved.Action != ActionCommitMessage {
			t.Fatalf("args %v: expected commit_message, got %s", args, resolved.Action)
		}
	}
}

func TestResolveCommitStripsEveryActivationOccurrence(t *testing.T) {
	resolved := resolveArgs("--ai", "commit", "--ai", "-S")
	want := []string{"commit", "-S"}
	if !reflect.DeepEqual(resolved.Args, want) {
		t.Fatalf("expected residual %v, got %v", want, resolved.Args)
	}
}

func TestResolveExplainHelp(t *testing.T) {
	resolved := resolveArgs("status", "-s", "--ai", "--help")
	if resolved.Action != ActionExplainHelp {
		t.Fatalf("expected explain_help, got %s", resolved.Action)
	}
	if resolved.Subcommand != "status" {
		t.Fatalf("expected subcommand status, got %q", resolved.Subcommand)
	}
	want := []string{"status", "-s", "--help"}
	if !reflect.DeepEqual(resolved.Args, want) {
		t.Fatalf("expected residual %v, got %v", want, resolved.Args)
	}
}

func TestResolveExplainCommand(t *testing.T) {
	resolved := resolveArgs("--ai", "log", "--oneline", "-n", "5")
	if resolved.Action != ActionExplainCommand {
		t.Fatalf("expected explain_command, got %s", resolved.Action)
	}
	if resolved.Subcommand != "log" {
		t.Fatalf("expected subcommand log, got %q", resolved.Subcommand)
	}
	want := []string{"log", "--oneline", "-n", "5"}
	if !reflect.DeepEqual(resolved.Args, want) {
		t.Fatalf("expected residual %v, got %v", want, resolved.Args)
	}
}

func TestResolveActivationAloneExplainsEmptyCommand(t *testing.T) {
	resolved := resolveArgs("--ai")
	if resolved.Action != ActionExplainCommand {
		t.Fatalf("expected explain_command, got %s", resolved.Action)
	}
	if len(resolved.Args) != 0 {
		t.Fatalf("expected empty residual, got %v", resolved.Args)
	}
}

func TestResolveUnknownSubcommandDegradesGracefully(t *testing.T) {
	resolved := resolveArgs("frobnicate", "--now")
	if resolved.Action != ActionPassthrough {
		t.Fatalf("expected passthrough over unknown subcommand, got %s", resolved.Action)
	}

	resolved = resolveArgs("--ai", "frobnicate", "--now")
	if resolved.Action != ActionExplainCommand {
		t.Fatalf("expected explain_command over unknown subcommand, got %s", resolved.Action)
	}
}

func TestResolveMultipleActivationsOutsideOwnedSubcommand(t *testing.T) {
	// Stripping policy: every occurrence goes, in every branch.
	resolved := resolveArgs("--ai", "status", "--ai")
	if resolved.Action != ActionExplainCommand {
		t.Fatalf("expected explain_command, got %s", resolved.Action)
	}
	if !reflect.DeepEqual(resolved.Args, []string{"status"}) {
		t.Fatalf("expected residual [status], got %v", resolved.Args)
	}
}

func TestResolveResidualIsStrictSubsequence(t *testing.T) {
	args := []string{"push", "--ai", "origin", "main", "--force-with-lease", "--ai"}
	resolved := resolveArgs(args...)

	i := 0
	for _, token := range args {
		if token == ActivationFlag {
			continue
		}
		if i >= len(resolved.Args) || resolved.Args[i] != token {
			t.Fatalf("residual %v is not the original minus activation flags", resolved.Args)
		}
		i++
	}
	if i != len(resolved.Args) {
		t.Fatalf("residual %v has extra tokens", resolved.Args)
	}
}

func TestResolveIsTotal(t *testing.T) {
	vectors := [][]string{
		nil,
		{},
		{"--ai"},
		{"--ai", "--ai"},
		{"--help"},
		{"-h"},
		{"commit"},
		{"commit", "--ai"},
		{"--ai", "--help"},
		{"", "--ai", ""},
		{"--ai", "status", "-h"},
	}
	for _, args := range vectors {
		resolved := Resolve(NewScan(args))
		switch resolved.Action {
		case ActionPassthrough, ActionCommitMessage, ActionExplainHelp, ActionExplainCommand:
		default:
			t.Fatalf("args %v: unexpected action %q", args, resolved.Action)
		}
	}
}
