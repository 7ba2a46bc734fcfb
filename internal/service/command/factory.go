package command

import (
	"github.com/sandevgo/imeibot/internal/core"
	"github.com/sandevgo/imeibot/internal/service/auth"
)

// NewCommands builds the command set with each handler already wrapped
// by the guard for its allowed roles.
func NewCommands(
	guard *auth.Guard,
	users core.UserDirectory,
	checker DeviceChecker,
	defaultRole core.Role,
) []core.Command {
	everyone := []core.Role{core.RoleAdmin, core.RoleUser}
	adminOnly := []core.Role{core.RoleAdmin}

	return []core.Command{
		guard.Wrap(NewStartCommand(), everyone...),
		guard.Wrap(NewAddUserCommand(users, defaultRole), adminOnly...),
		guard.Wrap(NewChangeRoleCommand(users), adminOnly...),
		guard.Wrap(NewChangeStatusCommand(users), adminOnly...),
		guard.Wrap(NewCheckImeiCommand(checker), everyone...),
		guard.Wrap(NewBalanceCommand(checker), everyone...),
	}
}

// RegisterHelp wires /help after the router exists, since the command
// lists the router's own routes.
func RegisterHelp(r *Router, guard *auth.Guard) {
	r.Register(guard.Wrap(NewHelpCommand(r.ListCommands), core.RoleAdmin, core.RoleUser))
}
