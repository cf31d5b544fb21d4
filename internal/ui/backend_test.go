package ui

import (
	"reflect"
	"testing"
)

func TestNormalizeBackendDefaultsToAuto(t *testing.T) {
	cases := map[string]string{
		"":          BackendAuto,
		"  auto  ":  BackendAuto,
		"BubbleTea": BackendBubbleTea,
		"huh":       BackendHuh,
		"tview":     BackendTView,
		"plain":     BackendPlain,
		"ncurses":   BackendAuto,
	}
	for input, want := range cases {
		if got := NormalizeBackend(input); got != want {
			t.Fatalf("NormalizeBackend(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestBackendCandidatesAlwaysEndWithPlain(t *testing.T) {
	for _, backend := range []string{BackendAuto, BackendBubbleTea, BackendHuh, BackendTView, BackendPlain, "garbage"} {
		candidates := backendCandidates(backend)
		if len(candidates) == 0 {
			t.Fatalf("backend %q produced no candidates", backend)
		}
		if candidates[len(candidates)-1] != BackendPlain {
			t.Fatalf("backend %q chain does not end with plain: %v", backend, candidates)
		}
	}
}

func TestBackendCandidatesPreferTheRequestedBackend(t *testing.T) {
	if got := backendCandidates(BackendTView); got[0] != BackendTView {
		t.Fatalf("expected tview first, got %v", got)
	}
	if got := backendCandidates(BackendPlain); !reflect.DeepEqual(got, []string{BackendPlain}) {
		t.Fatalf("expected plain only, got %v", got)
	}
}
