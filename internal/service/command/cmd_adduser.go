package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sandevgo/imeibot/internal/core"
	"github.com/sandevgo/imeibot/pkg/log"
)

const addUserUsage = "Incorrect command format. Use the following example:\n" +
	"/add_user [telegram id] [user name]"

type AddUserCommand struct {
	users       core.UserDirectory
	defaultRole core.Role
}

func NewAddUserCommand(users core.UserDirectory, defaultRole core.Role) core.Command {
	return &AddUserCommand{users: users, defaultRole: defaultRole}
}

func (c *AddUserCommand) Name() string {
	return "add_user"
}

func (c *AddUserCommand) Description() string {
	return "Add a new user (admin only)."
}

func (c *AddUserCommand) Execute(ctx context.Context, callerID int64, args []string) (string, error) {
	if len(args) != 2 {
		return addUserUsage, nil
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return addUserUsage, nil
	}
	name := args[1]

	// Registration is idempotent: an existing identity is success too
	if _, err := c.users.Create(ctx, id, name, c.defaultRole); err != nil {
		log.FromCtx(ctx).Error().Err(err).Int64("tg_id", id).Msg("failed to register user")
		return "An error occurred during user registration.", nil
	}

	return fmt.Sprintf("User with id *%d* registered.", id), nil
}
