package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"jsonlscope/internal/adapters/tui/styles"
	"jsonlscope/internal/application"
)

// ErrPromptCancelled is returned when the user leaves the prompt without a path
var ErrPromptCancelled = errors.New("prompt cancelled")

// PromptKeyMap defines key bindings for the file prompt
type PromptKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// DefaultPromptKeys returns the default prompt key bindings
var DefaultPromptKeys = PromptKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "analyze"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}

// PromptModel asks for the path of the JSONL file to analyze
type PromptModel struct {
	input     textinput.Model
	keys      PromptKeyMap
	message   string
	path      string
	cancelled bool
}

// NewPromptModel creates a new prompt with an empty, focused input
func NewPromptModel() *PromptModel {
	input := textinput.New()
	input.Placeholder = "data.jsonl"
	input.CharLimit = 4096
	input.Focus()

	return &PromptModel{
		input: input,
		keys:  DefaultPromptKeys,
	}
}

// Init returns the blink command for the input
func (m *PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt
func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Submit):
			value := strings.TrimSpace(m.input.Value())
			if err := application.ValidateRequired("path", value); err != nil {
				var valErr *application.ValidationError
				if errors.As(err, &valErr) {
					m.message = valErr.Message
				}
				return m, nil
			}
			m.path = value
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt
func (m *PromptModel) View() string {
	if m.path != "" || m.cancelled {
		return ""
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("jsonlscope"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("plain, gzip, zstd or lz4 compressed JSONL"))
	b.WriteString("\n")
	b.WriteString(styles.InputLabel.Render("Enter the name of your .jsonl file (e.g. data.jsonl):"))
	b.WriteString("\n")
	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString(styles.ErrorMsg.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp())
	b.WriteString("\n")

	return styles.App.Render(b.String())
}

func (m *PromptModel) renderHelp() string {
	parts := make([]string, 0, 2)
	for _, binding := range []key.Binding{m.keys.Submit, m.keys.Cancel} {
		help := binding.Help()
		parts = append(parts, styles.HelpKey.Render(help.Key)+" "+styles.HelpDesc.Render(help.Desc))
	}
	return strings.Join(parts, "  ")
}

// Path returns the submitted path, empty until the user submits
func (m *PromptModel) Path() string {
	return m.path
}

// Cancelled reports whether the user left the prompt
func (m *PromptModel) Cancelled() bool {
	return m.cancelled
}

// AskPath runs the prompt on the given terminal streams and returns the path entered
func AskPath(in io.Reader, out io.Writer) (string, error) {
	p := tea.NewProgram(NewPromptModel(), tea.WithInput(in), tea.WithOutput(out))

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	model, ok := final.(*PromptModel)
	if !ok || model.Cancelled() || model.Path() == "" {
		return "", ErrPromptCancelled
	}
	return model.Path(), nil
}
