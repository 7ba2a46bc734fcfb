package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/imeibot/pkg/log"
)

type ImeiCheckConfig struct {
	Token   string `env:"IMEICHECK_TOKEN,required,notEmpty"`
	BaseURL string `env:"IMEICHECK_BASE_URL" envDefault:"https://api.imeicheck.net/v1"`
}

func NewImeiCheckConfig(ctx context.Context) *ImeiCheckConfig {
	c := &ImeiCheckConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse ImeiCheck config")
	}
	return c
}
