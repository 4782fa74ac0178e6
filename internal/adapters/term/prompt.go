package term

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModel is a single-line text input. Enter submits the current value;
// Esc or Ctrl+C submit an empty value, which every caller treats as abort.
type promptModel struct {
	input textinput.Model
	done  bool
}

func newPromptModel(label string) promptModel {
	input := textinput.New()
	input.Prompt = label
	input.Focus()
	return promptModel{input: input}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.input.SetValue("")
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done {
		// leave the answered prompt on screen
		return m.input.Prompt + m.input.Value() + "\n"
	}
	return m.input.View()
}

// Prompter implements ports.Prompter on the controlling terminal.
type Prompter struct{}

// NewPrompter creates a terminal prompter.
func NewPrompter() *Prompter {
	return &Prompter{}
}

// Ask shows a one-line prompt and returns the entered value.
func (p *Prompter) Ask(label string) (string, error) {
	program := tea.NewProgram(newPromptModel(label))
	out, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	return out.(promptModel).input.Value(), nil
}
