package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sandevgo/imeibot/internal/core"
)

const changeStatusUsage = "Incorrect command format. Use the following example:\n" +
	"/change_status [telegram id] [new user status]"

type ChangeStatusCommand struct {
	users core.UserDirectory
}

func NewChangeStatusCommand(users core.UserDirectory) core.Command {
	return &ChangeStatusCommand{users: users}
}

func (c *ChangeStatusCommand) Name() string {
	return "change_status"
}

func (c *ChangeStatusCommand) Description() string {
	return "Change user status (admin only)."
}

func (c *ChangeStatusCommand) Execute(ctx context.Context, callerID int64, args []string) (string, error) {
	if len(args) != 2 {
		return changeStatusUsage, nil
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return changeStatusUsage, nil
	}

	if id == callerID {
		return "You can't change your status.", nil
	}

	status := core.Status(args[1])
	err = c.users.Update(ctx, id, core.UserUpdate{Status: &status})
	switch {
	case errors.Is(err, core.ErrInvalidStatus):
		return fmt.Sprintf("Invalid status. Valid statuses are: %s, %s.", core.StatusActive, core.StatusDisabled), nil
	case errors.Is(err, core.ErrUserNotFound):
		return fmt.Sprintf("User *%d* was not found.", id), nil
	case err != nil:
		return "", err
	}

	return fmt.Sprintf("User *%d* is *%s* now.", id, status), nil
}
