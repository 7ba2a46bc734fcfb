package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sandevgo/imeibot/internal/core"
)

const changeRoleUsage = "Incorrect command format. Use the following example:\n" +
	"/change_role [telegram id] [new user role]"

type ChangeRoleCommand struct {
	users core.UserDirectory
}

func NewChangeRoleCommand(users core.UserDirectory) core.Command {
	return &ChangeRoleCommand{users: users}
}

func (c *ChangeRoleCommand) Name() string {
	return "change_role"
}

func (c *ChangeRoleCommand) Description() string {
	return "Change user role (admin only)."
}

func (c *ChangeRoleCommand) Execute(ctx context.Context, callerID int64, args []string) (string, error) {
	if len(args) != 2 {
		return changeRoleUsage, nil
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return changeRoleUsage, nil
	}

	// Admins never change their own record
	if id == callerID {
		return "You can't change your role.", nil
	}

	role := core.Role(args[1])
	err = c.users.Update(ctx, id, core.UserUpdate{Role: &role})
	switch {
	case errors.Is(err, core.ErrInvalidRole):
		return fmt.Sprintf("Invalid role. Valid roles are: %s, %s.", core.RoleUser, core.RoleAdmin), nil
	case errors.Is(err, core.ErrUserNotFound):
		return fmt.Sprintf("User *%d* was not found.", id), nil
	case err != nil:
		return "", err
	}

	return fmt.Sprintf("User *%d* has new role: *%s*.", id, role), nil
}
