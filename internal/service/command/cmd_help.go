package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sandevgo/imeibot/internal/core"
)

type HelpCommand struct {
	list func() []core.Command
}

func NewHelpCommand(list func() []core.Command) core.Command {
	return &HelpCommand{list: list}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "List of available commands."
}

func (c *HelpCommand) Execute(ctx context.Context, callerID int64, args []string) (string, error) {
	commands := c.list()
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})

	var b strings.Builder
	b.WriteString("Here's the list of available commands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(&b, "/%s - %s\n", cmd.Name(), cmd.Description())
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
