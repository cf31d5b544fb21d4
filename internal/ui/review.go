package ui

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/rivo/tview"
)

// ReviewCommitMessage shows the generated commit message and asks whether to
// commit with it. Backends are tried in preference order; the plain prompt
// is the terminal fallback, so the review always resolves to a decision.
func ReviewCommitMessage(backend string, message string) (bool, error) {
	var firstErr error
	for _, candidate := range backendCandidates(backend) {
		var (
			approved bool
			err      error
		)
		switch candidate {
		case BackendBubbleTea:
			approved, err = reviewWithBubbleTea(message)
		case BackendHuh:
			approved, err = reviewWithHuh(message)
		case BackendTView:
			approved, err = reviewWithTView(message)
		case BackendPlain:
			approved, err = reviewWithPlainPrompt(message)
		default:
			continue
		}
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		return approved, nil
	}
	return false, firstErr
}

type reviewModel struct {
	message  string
	approved bool
	done     bool
}

func (m reviewModel) Init() tea.Cmd { return nil }

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch k := msg.(type) {
	case tea.KeyMsg:
		// Enter accepts, matching the other backends' default button.
		switch strings.ToLower(k.String()) {
		case "y", "enter":
			m.approved = true
			m.done = true
			return m, tea.Quit
		case "n", "esc", "ctrl+c":
			m.approved = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m reviewModel) View() string {
	return fmt.Sprintf(
		"Commit with this message?\n\n%s\n\n[enter/y] commit  [n] abort",
		strings.TrimSpace(m.message),
	)
}

func reviewWithBubbleTea(message string) (bool, error) {
	model := reviewModel{message: strings.TrimSpace(message)}
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	out, ok := final.(reviewModel)
	if !ok || !out.done {
		return false, nil
	}
	return out.approved, nil
}

func reviewWithHuh(message string) (bool, error) {
	approved := false
	prompt := huh.NewConfirm().
		Title("Commit with this message?").
		Description(strings.TrimSpace(message)).
		Affirmative("Commit").
		Negative("Abort").
		Value(&approved).
		WithTheme(huh.ThemeCharm())
	err := prompt.Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return approved, nil
}

func reviewWithTView(message string) (bool, error) {
	app := tview.NewApplication()
	approved := false
	done := false

	text := fmt.Sprintf("Commit with this message?\n\n%s", strings.TrimSpace(message))
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"Commit", "Abort"}).
		SetDoneFunc(func(_ int, label string) {
			done = true
			approved = strings.EqualFold(strings.TrimSpace(label), "commit")
			app.Stop()
		})

	if err := app.SetRoot(modal, true).Run(); err != nil {
		return false, err
	}
	if !done {
		return false, nil
	}
	return approved, nil
}

func reviewWithPlainPrompt(message string) (bool, error) {
	fmt.Printf("Generated commit message:\n\n%s\n\n", strings.TrimSpace(message))
	fmt.Print("Commit with this message? [Y/n]: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	trimmed := strings.ToLower(strings.TrimSpace(line))
	// Bare enter commits, the same default the richer backends present.
	return trimmed == "" || trimmed == "y" || trimmed == "yes", nil
}

// StdinIsInteractive reports whether stdin is attached to a terminal; the
// review step is skipped entirely when it is not.
func StdinIsInteractive() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
