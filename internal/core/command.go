package core

import "context"

type CmdRouter interface {
	Execute(ctx context.Context, callerID int64, input string) (string, bool)
	ListCommands() []Command
}

// Command is one chat command. Execute returns the reply text as
// Markdown; errors are converted to caller-facing text by the router.
type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, callerID int64, args []string) (string, error)
}
