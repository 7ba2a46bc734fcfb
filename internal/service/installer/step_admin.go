package installer

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InitAdminStep collects the first administrator as "telegram-id:name"
type InitAdminStep struct {
	input   textinput.Model
	invalid bool
}

func NewInitAdminStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "123456789:alice"

	return &InitAdminStep{
		input: ti,
	}
}

func (s *InitAdminStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *InitAdminStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			value := strings.TrimSpace(s.input.Value())
			if value == "" {
				// Optional: skip the bootstrap admin entirely
				return nil, nil
			}

			id, _, ok := strings.Cut(value, ":")
			if !ok {
				s.invalid = true
				return s, cmd
			}
			if _, err := strconv.ParseInt(id, 10, 64); err != nil {
				s.invalid = true
				return s, cmd
			}

			state.EnvVars["IMEIBOT_INIT_ADMIN"] = value
			return nil, nil
		}
	}
	return s, cmd
}

func (s *InitAdminStep) View(state *InstallState) string {
	view := "Enter the first administrator as [telegram id]:[name]\n" +
		"(leave empty to skip):\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
	if s.invalid {
		view += "\n" + errorStyle.Render("Expected the format 123456789:name") + "\n"
	}
	return view
}
