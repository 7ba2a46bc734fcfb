// Package auth gates command execution on the caller's stored role and
// status. The guard makes a decision from a single directory read; it
// never mutates anything itself.
package auth

import (
	"context"

	"github.com/sandevgo/imeibot/internal/core"
	"github.com/sandevgo/imeibot/pkg/log"
)

const (
	// DeniedMessage is what a denied caller sees, regardless of why.
	DeniedMessage = "You do not have permission for this command."

	failureMessage = "An internal error occurred. Please, try again later."
)

type Guard struct {
	users core.UserDirectory
}

func NewGuard(users core.UserDirectory) *Guard {
	return &Guard{users: users}
}

// Authorize reports whether callerID holds one of roles with an active
// status.
func (g *Guard) Authorize(ctx context.Context, callerID int64, roles ...core.Role) (bool, error) {
	return g.users.HasRoleAndStatus(ctx, callerID, roles, core.StatusActive)
}

// Wrap returns a command that runs cmd only for callers authorized
// against roles. A denied caller gets DeniedMessage and cmd is never
// invoked.
func (g *Guard) Wrap(cmd core.Command, roles ...core.Role) core.Command {
	return &guardedCommand{guard: g, cmd: cmd, roles: roles}
}

type guardedCommand struct {
	guard *Guard
	cmd   core.Command
	roles []core.Role
}

func (c *guardedCommand) Name() string {
	return c.cmd.Name()
}

func (c *guardedCommand) Description() string {
	return c.cmd.Description()
}

func (c *guardedCommand) Execute(ctx context.Context, callerID int64, args []string) (string, error) {
	ok, err := c.guard.Authorize(ctx, callerID, c.roles...)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Int64("tg_id", callerID).Str("command", c.cmd.Name()).
			Msg("authorization check failed")
		return failureMessage, nil
	}
	if !ok {
		log.FromCtx(ctx).Debug().Int64("tg_id", callerID).Str("command", c.cmd.Name()).
			Msg("permission denied")
		return DeniedMessage, nil
	}

	return c.cmd.Execute(ctx, callerID, args)
}
