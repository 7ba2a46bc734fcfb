package installer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ImeiCheckTokenStep collects the API token for the lookup service
type ImeiCheckTokenStep struct {
	input textinput.Model
}

func NewImeiCheckTokenStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "API token from imeicheck.net"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &ImeiCheckTokenStep{
		input: ti,
	}
}

func (s *ImeiCheckTokenStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *ImeiCheckTokenStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			state.EnvVars["IMEICHECK_TOKEN"] = s.input.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *ImeiCheckTokenStep) View(state *InstallState) string {
	return "Enter your imeicheck.net API Token:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}
