package cli

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// errPromptCancelled is returned when the user aborts an interactive prompt.
var errPromptCancelled = errors.New("prompt cancelled")

// =============================================================================
// promptModel - Single-line interactive input
// =============================================================================

// promptModel is the bubbletea model for a one-line text prompt.
type promptModel struct {
	question  string
	input     []rune
	done      bool
	cancelled bool
}

func newPromptModel(question string) promptModel {
	return promptModel{question: question}
}

func (m promptModel) Init() tea.Cmd {
	return nil
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, keyMsg.Runes...)
	}

	return m, nil
}

func (m promptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.question))
	b.WriteString(" ")
	b.WriteString(StyleValue.Render(string(m.input)))
	b.WriteString(StyleDim.Render("█"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("enter to confirm · esc to cancel"))
	return b.String()
}

// promptLine asks a single question and returns the trimmed answer.
func promptLine(question string) (string, error) {
	program := tea.NewProgram(newPromptModel(question))
	result, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("run prompt: %w", err)
	}

	final, ok := result.(promptModel)
	if !ok || final.cancelled {
		return "", errPromptCancelled
	}
	return strings.TrimSpace(string(final.input)), nil
}
