package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/imeibot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"IMEIBOT_RUNTIME_PATH" envDefault:".imeibot"`

	// Role assigned to identities registered with /add_user
	DefaultRole string `env:"IMEIBOT_DEFAULT_ROLE" envDefault:"user"`

	// "id:name" of the first administrator, created at startup
	InitAdmin string `env:"IMEIBOT_INIT_ADMIN"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "imeibot.db")
}
