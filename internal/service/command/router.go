package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/imeibot/internal/core"
	"github.com/sandevgo/imeibot/pkg/log"
)

// UnsupportedMessage is the reply for input that matches no command.
const UnsupportedMessage = "Unsupported command."

// Router maps command keywords to handlers. Routes are registered once
// during startup wiring and never mutated afterwards.
type Router struct {
	commands map[string]core.Command
}

func New(commands []core.Command) *Router {
	r := &Router{
		commands: make(map[string]core.Command),
	}

	for _, cmd := range commands {
		r.commands[cmd.Name()] = cmd
	}
	return r
}

func (r *Router) Register(cmd core.Command) {
	r.commands[cmd.Name()] = cmd
}

// Execute dispatches input for callerID. The second return value is
// false when the input is not a command at all.
func (r *Router) Execute(ctx context.Context, callerID int64, input string) (string, bool) {
	if !strings.HasPrefix(input, "/") {
		return "", false
	}

	parts := strings.Fields(input)
	name := strings.TrimPrefix(parts[0], "/")
	// Group chats address commands as /name@botname
	name, _, _ = strings.Cut(name, "@")

	cmd, ok := r.commands[name]
	if !ok {
		return UnsupportedMessage, true
	}

	result, err := cmd.Execute(ctx, callerID, parts[1:])
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Int64("tg_id", callerID).Str("command", name).
			Msg("command failed")
		return fmt.Sprintf("An error occurred: %v", err), true
	}
	return result, true
}

func (r *Router) ListCommands() []core.Command {
	res := make([]core.Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		res = append(res, cmd)
	}
	return res
}
