package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PromptModel is the bubbletea model for a single-line text prompt.
type PromptModel struct {
	label     string
	input     textinput.Model
	cancelled bool
}

// NewPromptModel creates a prompt. When masked, typed characters are
// hidden (used for the API token).
func NewPromptModel(label, placeholder string, masked bool) PromptModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 512
	if masked {
		ti.EchoMode = textinput.EchoPassword
	}

	return PromptModel{
		label: label,
		input: ti,
	}
}

func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PromptModel) View() string {
	return titleStyle.Render(m.label) + "\n\n" + m.input.View() + "\n\n(enter=confirm, esc=cancel)\n"
}

// Value returns the entered text, empty when cancelled.
func (m PromptModel) Value() string {
	if m.cancelled {
		return ""
	}
	return m.input.Value()
}

// RunPrompt displays the prompt and returns the entered text.
func RunPrompt(label, placeholder string, masked bool) (string, error) {
	model := NewPromptModel(label, placeholder, masked)
	p := tea.NewProgram(model)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	return finalModel.(PromptModel).Value(), nil
}
