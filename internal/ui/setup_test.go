package ui

import "testing"

func TestRunSetupPlainBackendIsNotHandled(t *testing.T) {
	answers, handled, err := RunSetup(BackendPlain, SetupAnswers{APIURL: "http://x"})
	if err != nil {
		t.Fatalf("RunSetup failed: %v", err)
	}
	if handled {
		t.Fatalf("plain backend has no form but reported handled with %+v", answers)
	}
}

func TestRunSetupRequiresTerminal(t *testing.T) {
	// Test binaries run with stdin on a pipe, so every backend must bail out
	// before starting a program.
	for _, backend := range []string{BackendAuto, BackendBubbleTea, BackendHuh, BackendTView} {
		if StdinIsInteractive() {
			t.Skip("stdin is a terminal in this environment")
		}
		_, handled, err := RunSetup(backend, SetupAnswers{})
		if err != nil {
			t.Fatalf("backend %q: RunSetup failed: %v", backend, err)
		}
		if handled {
			t.Fatalf("backend %q ran a form without a terminal", backend)
		}
	}
}

func TestSetupModelCollectsTrimmedAnswers(t *testing.T) {
	model := newSetupModel(SetupAnswers{
		APIURL:    "  http://localhost:11434/v1/chat/completions  ",
		ModelName: " team-model ",
		APIKey:    " secret ",
	})
	model.accepted = true

	answers := model.answers()
	if answers.APIURL != "http://localhost:11434/v1/chat/completions" {
		t.Fatalf("unexpected api url: %q", answers.APIURL)
	}
	if answers.ModelName != "team-model" {
		t.Fatalf("unexpected model name: %q", answers.ModelName)
	}
	if answers.APIKey != "secret" {
		t.Fatalf("unexpected api key: %q", answers.APIKey)
	}
	if !answers.Accepted {
		t.Fatal("expected accepted answers")
	}
}
