package llm

import "testing"

func TestCleanOutputPassesPlainTextThrough(t *testing.T) {
	in := "Fix login redirect\n\nThe callback URL was double-encoded."
	if got := CleanOutput(in); got != in {
		t.Fatalf("plain text should be untouched, got %q", got)
	}
}

func TestCleanOutputStripsThinkBlocks(t *testing.T) {
	in := "<think>\nThe diff touches auth code...\n</think>\nFix token refresh race"
	if got := CleanOutput(in); got != "Fix token refresh race" {
		t.Fatalf("expected think block removed, got %q", got)
	}
}

func TestCleanOutputStripsEnclosingFence(t *testing.T) {
	in := "```\nAdd retry to uploader\n```"
	if got := CleanOutput(in); got != "Add retry to uploader" {
		t.Fatalf("expected fence removed, got %q", got)
	}
}

func TestCleanOutputStripsFenceLanguageTag(t *testing.T) {
	in := "```text\nUpdate dependency pins\n```"
	if got := CleanOutput(in); got != "Update dependency pins" {
		t.Fatalf("expected tagged fence removed, got %q", got)
	}
}

func TestCleanOutputKeepsCapitalizedFirstLine(t *testing.T) {
	in := "```Remove dead code\n```"
	if got := CleanOutput(in); got != "Remove dead code" {
		t.Fatalf("expected content on the fence line to survive, got %q", got)
	}
}

func TestCleanOutputEmptyAfterCleaning(t *testing.T) {
	if got := CleanOutput("<think>only reasoning</think>"); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}
