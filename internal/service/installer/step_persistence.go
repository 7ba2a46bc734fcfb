package installer

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/imeibot/internal/config"
	"github.com/sandevgo/imeibot/pkg/env"
)

// envFile mirrors the variables the wizard collects; the env tags drive
// the .env serialization.
type envFile struct {
	TelegramToken  string `env:"IMEIBOT_TELEGRAM_TOKEN"`
	ImeiCheckToken string `env:"IMEICHECK_TOKEN"`
	InitAdmin      string `env:"IMEIBOT_INIT_ADMIN"`
}

// SaveEnvStep writes the collected configuration to .env file
type SaveEnvStep struct {
	err   error
	saved bool
}

func NewSaveEnvStep() Step {
	return &SaveEnvStep{}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	if s.saved {
		return nil, nil
	}

	path := config.GetRuntimePath()

	if err := os.MkdirAll(path, 0755); err != nil {
		s.err = fmt.Errorf("failed to create runtime directory: %w", err)
		return s, nil
	}

	envPath := filepath.Join(path, ".env")

	// Never clobber an existing configuration
	if _, err := os.Stat(envPath); err == nil {
		s.err = fmt.Errorf(".env file already exists at %s", envPath)
		return s, nil
	}

	content, err := env.MarshalEnv(&envFile{
		TelegramToken:  state.EnvVars["IMEIBOT_TELEGRAM_TOKEN"],
		ImeiCheckToken: state.EnvVars["IMEICHECK_TOKEN"],
		InitAdmin:      state.EnvVars["IMEIBOT_INIT_ADMIN"],
	})
	if err != nil {
		s.err = err
		return s, nil
	}

	if err := os.WriteFile(envPath, []byte(content), 0600); err != nil {
		s.err = err
		return s, nil
	}

	s.saved = true
	return nil, nil // Signal completion
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	if s.saved {
		return "Configuration saved successfully!\n"
	}
	return "Saving configuration...\n"
}
