package telegram

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sandevgo/imeibot/internal/config"
	"github.com/sandevgo/imeibot/internal/core"
	"github.com/sandevgo/imeibot/internal/service/command"
	"github.com/sandevgo/imeibot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot    *tele.Bot
	cfg    *config.TelegramConfig
	router core.CmdRouter
	sender *sender
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	router core.CmdRouter,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:    b,
		cfg:    cfg,
		router: router,
		sender: newSender(b),
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	if err := b.bot.SetCommands(b.menu()); err != nil {
		logger.Warn().Err(err).Msg("failed to register command menu")
	}

	logger.Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)

	reply, handled := b.router.Execute(ctx, c.Sender().ID, c.Text())
	if !handled {
		reply = command.UnsupportedMessage
	}

	return b.sender.sendMarkdown(ctx, c.Chat(), reply)
}

// menu builds the command list shown in the Telegram client UI.
func (b *Bot) menu() []tele.Command {
	commands := b.router.ListCommands()
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})

	menu := make([]tele.Command, 0, len(commands))
	for _, cmd := range commands {
		menu = append(menu, tele.Command{
			Text:        cmd.Name(),
			Description: cmd.Description(),
		})
	}
	return menu
}
