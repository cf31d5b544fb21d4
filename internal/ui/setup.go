package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/tview"
)

// SetupAnswers is what first-run setup collects. Empty fields mean "keep the
// current value".
type SetupAnswers struct {
	APIURL    string
	ModelName string
	APIKey    string
	Accepted  bool
}

// RunSetup walks the user through the AI endpoint settings. Backends are
// tried in the same preference order as the commit-message review; the plain
// backend has no form, so reaching it reports handled=false and the caller
// points at the config file instead.
func RunSetup(backend string, current SetupAnswers) (SetupAnswers, bool, error) {
	if !StdinIsInteractive() {
		return SetupAnswers{}, false, nil
	}
	var firstErr error
	for _, candidate := range backendCandidates(backend) {
		var (
			answers SetupAnswers
			handled bool
			err     error
		)
		switch candidate {
		case BackendBubbleTea:
			answers, handled, err = setupWithBubbleTea(current)
		case BackendHuh:
			answers, handled, err = setupWithHuh(current)
		case BackendTView:
			answers, handled, err = setupWithTView(current)
		case BackendPlain:
			return SetupAnswers{}, false, nil
		default:
			continue
		}
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if handled {
			answers.APIURL = strings.TrimSpace(answers.APIURL)
			answers.ModelName = strings.TrimSpace(answers.ModelName)
			answers.APIKey = strings.TrimSpace(answers.APIKey)
			return answers, true, nil
		}
	}
	return SetupAnswers{}, false, firstErr
}

func setupWithBubbleTea(current SetupAnswers) (SetupAnswers, bool, error) {
	model := newSetupModel(current)
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return SetupAnswers{}, false, err
	}
	out, ok := final.(setupModel)
	if !ok {
		return SetupAnswers{}, false, nil
	}
	return out.answers(), true, nil
}

func setupWithHuh(current SetupAnswers) (SetupAnswers, bool, error) {
	answers := SetupAnswers{
		APIURL:    strings.TrimSpace(current.APIURL),
		ModelName: strings.TrimSpace(current.ModelName),
		APIKey:    strings.TrimSpace(current.APIKey),
	}
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Chat completions endpoint").
			Placeholder("http://localhost:11434/v1/chat/completions").
			Value(&answers.APIURL),
		huh.NewInput().
			Title("Model").
			Value(&answers.ModelName),
		huh.NewInput().
			Title("API key").
			Description("Leave empty for local endpoints.").
			EchoMode(huh.EchoModePassword).
			Value(&answers.APIKey),
	)).WithTheme(huh.ThemeCharm())
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return SetupAnswers{}, true, nil
		}
		return SetupAnswers{}, false, err
	}
	answers.Accepted = true
	return answers, true, nil
}

func setupWithTView(current SetupAnswers) (SetupAnswers, bool, error) {
	app := tview.NewApplication()
	answers := SetupAnswers{
		APIURL:    strings.TrimSpace(current.APIURL),
		ModelName: strings.TrimSpace(current.ModelName),
		APIKey:    strings.TrimSpace(current.APIKey),
	}

	form := tview.NewForm().
		AddInputField("Endpoint", answers.APIURL, 64, nil, func(text string) {
			answers.APIURL = text
		}).
		AddInputField("Model", answers.ModelName, 64, nil, func(text string) {
			answers.ModelName = text
		}).
		AddPasswordField("API key", answers.APIKey, 64, '*', func(text string) {
			answers.APIKey = text
		}).
		AddButton("Save", func() {
			answers.Accepted = true
			app.Stop()
		}).
		AddButton("Cancel", func() {
			app.Stop()
		})
	form.SetBorder(true).SetTitle(" gitie setup ")

	if err := app.SetRoot(form, true).Run(); err != nil {
		return SetupAnswers{}, false, err
	}
	return answers, true, nil
}

const (
	setupFieldAPIURL = iota
	setupFieldModel
	setupFieldAPIKey
	setupFieldCount
)

type setupModel struct {
	inputs   []textinput.Model
	focused  int
	accepted bool
	done     bool
}

func newSetupModel(current SetupAnswers) setupModel {
	urlInput := textinput.New()
	urlInput.Placeholder = "http://localhost:11434/v1/chat/completions"
	urlInput.CharLimit = 240
	urlInput.Width = 64
	urlInput.SetValue(strings.TrimSpace(current.APIURL))
	urlInput.Focus()

	modelInput := textinput.New()
	modelInput.Placeholder = "model name"
	modelInput.CharLimit = 120
	modelInput.Width = 64
	modelInput.SetValue(strings.TrimSpace(current.ModelName))

	keyInput := textinput.New()
	keyInput.Placeholder = "API key (leave empty for none)"
	keyInput.CharLimit = 240
	keyInput.Width = 64
	keyInput.EchoMode = textinput.EchoPassword
	keyInput.SetValue(strings.TrimSpace(current.APIKey))

	return setupModel{
		inputs: []textinput.Model{urlInput, modelInput, keyInput},
	}
}

func (m setupModel) answers() SetupAnswers {
	return SetupAnswers{
		APIURL:    strings.TrimSpace(m.inputs[setupFieldAPIURL].Value()),
		ModelName: strings.TrimSpace(m.inputs[setupFieldModel].Value()),
		APIKey:    strings.TrimSpace(m.inputs[setupFieldAPIKey].Value()),
		Accepted:  m.accepted,
	}
}

func (m setupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocusedInput(msg)
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.done = true
		m.accepted = false
		return m, tea.Quit
	case "enter":
		if m.focused == setupFieldCount-1 {
			m.done = true
			m.accepted = true
			return m, tea.Quit
		}
		return m.focusField(m.focused + 1)
	case "tab", "down":
		return m.focusField((m.focused + 1) % setupFieldCount)
	case "shift+tab", "up":
		return m.focusField((m.focused + setupFieldCount - 1) % setupFieldCount)
	}
	return m.updateFocusedInput(msg)
}

func (m setupModel) focusField(index int) (tea.Model, tea.Cmd) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focused = index
	m.inputs[index].Focus()
	return m, textinput.Blink
}

func (m setupModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m setupModel) View() string {
	lines := []string{
		setupTitleStyle.Render("gitie setup"),
		"",
		setupLabelStyle.Render("chat completions endpoint"),
		m.inputs[setupFieldAPIURL].View(),
		"",
		setupLabelStyle.Render("model"),
		m.inputs[setupFieldModel].View(),
		"",
		setupLabelStyle.Render("api key"),
		m.inputs[setupFieldAPIKey].View(),
		"",
		setupHintStyle.Render("[tab] next field  [enter] save  [esc] cancel"),
	}
	return setupCardStyle.Render(strings.Join(lines, "\n"))
}

var (
	setupCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 2)

	setupTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("87"))

	setupLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("153"))

	setupHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("109"))
)
