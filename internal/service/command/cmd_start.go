package command

import (
	"context"

	"github.com/sandevgo/imeibot/internal/core"
)

type StartCommand struct{}

func NewStartCommand() core.Command {
	return &StartCommand{}
}

func (c *StartCommand) Name() string {
	return "start"
}

func (c *StartCommand) Description() string {
	return "Start this bot."
}

func (c *StartCommand) Execute(ctx context.Context, callerID int64, args []string) (string, error) {
	return "You started the bot!\n/help for available commands.", nil
}
