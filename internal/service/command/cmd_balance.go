package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sandevgo/imeibot/internal/core"
	"github.com/sandevgo/imeibot/internal/providers/imeicheck"
)

type BalanceCommand struct {
	checker DeviceChecker
}

func NewBalanceCommand(checker DeviceChecker) core.Command {
	return &BalanceCommand{checker: checker}
}

func (c *BalanceCommand) Name() string {
	return "balance"
}

func (c *BalanceCommand) Description() string {
	return "Command to check account balance in the service."
}

func (c *BalanceCommand) Execute(ctx context.Context, callerID int64, args []string) (string, error) {
	balance, err := c.checker.Balance(ctx)
	if err != nil {
		var remoteErr *imeicheck.RemoteError
		if errors.As(err, &remoteErr) {
			return remoteErr.Message, nil
		}
		return "", err
	}

	return fmt.Sprintf("Service: *%s*\nAccount balance: *%s*",
		c.checker.ServiceName(), strconv.FormatFloat(balance, 'f', -1, 64)), nil
}
