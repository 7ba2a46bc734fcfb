package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sandevgo/imeibot/internal/config"
	"github.com/sandevgo/imeibot/internal/core"
	"github.com/sandevgo/imeibot/internal/providers/imeicheck"
	"github.com/sandevgo/imeibot/internal/service/auth"
	"github.com/sandevgo/imeibot/internal/service/command"
	"github.com/sandevgo/imeibot/internal/storage/sqlite"
	"github.com/sandevgo/imeibot/internal/transport/telegram"
	"github.com/sandevgo/imeibot/pkg/log"
	"github.com/sandevgo/imeibot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	defaultRole, err := core.ParseRole(appCfg.DefaultRole)
	if err != nil {
		logger.Fatal().Err(err).Str("role", appCfg.DefaultRole).Msg("invalid default role configured")
	}

	// 2. Storage
	db, users, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	// 3. Bootstrap administrator
	if err := initAdmin(ctx, users, appCfg); err != nil {
		logger.Error().Err(err).Msg("failed to create initial admin")
	}

	// 4. Lookup client
	checker := imeicheck.NewClient(config.NewImeiCheckConfig(ctx))

	// 5. Commands behind the authorization guard
	guard := auth.NewGuard(users)
	router := command.New(command.NewCommands(guard, users, checker, defaultRole))
	command.RegisterHelp(router, guard)

	// 6. Transport
	bot, err := telegram.NewBot(ctx, config.NewTelegramConfig(ctx), router)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize telegram bot")
	}
	services = append(services, bot)

	return services
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, core.UserDirectory, error) {
	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return db, sqlite.NewUsersRepo(db), nil
}

// initAdmin creates the first administrator from IMEIBOT_INIT_ADMIN
// ("id:name"). Safe to run on every start: creation is idempotent.
func initAdmin(ctx context.Context, users core.UserDirectory, cfg *config.AppConfig) error {
	logger := log.FromCtx(ctx)

	if cfg.InitAdmin == "" {
		logger.Debug().Msg("no init admin configured, skip this step")
		return nil
	}

	idStr, name, ok := strings.Cut(cfg.InitAdmin, ":")
	if !ok {
		return fmt.Errorf("invalid init admin %q, expected id:name", cfg.InitAdmin)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid init admin id %q: %w", idStr, err)
	}

	created, err := users.Create(ctx, id, name, core.RoleAdmin)
	if err != nil {
		return err
	}
	if created {
		logger.Info().Int64("tg_id", id).Msg("init admin created")
	}
	return nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
