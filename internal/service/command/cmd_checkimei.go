package command

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sandevgo/imeibot/internal/core"
	"github.com/sandevgo/imeibot/internal/providers/imeicheck"
	"github.com/sandevgo/imeibot/pkg/log"
)

const checkImeiUsage = "Invalid command format, correct example:\n" +
	"/check_imei [IMEI] [service id]"

type CheckImeiCommand struct {
	checker DeviceChecker
}

func NewCheckImeiCommand(checker DeviceChecker) core.Command {
	return &CheckImeiCommand{checker: checker}
}

func (c *CheckImeiCommand) Name() string {
	return "check_imei"
}

func (c *CheckImeiCommand) Description() string {
	return "Command to check IMEI."
}

func (c *CheckImeiCommand) Execute(ctx context.Context, callerID int64, args []string) (string, error) {
	// Bare /check_imei shows the service catalog instead of a lookup
	if len(args) == 0 {
		return c.listServices(ctx)
	}

	if len(args) != 2 {
		return checkImeiUsage, nil
	}

	serviceID, err := strconv.Atoi(args[1])
	if err != nil {
		return checkImeiUsage, nil
	}
	imei := args[0]

	log.FromCtx(ctx).Info().Int64("tg_id", callerID).Msg("user launched imei check")

	props, err := c.checker.Check(ctx, imei, serviceID)
	if err != nil {
		var remoteErr *imeicheck.RemoteError
		if errors.As(err, &remoteErr) {
			return remoteErr.Message, nil
		}
		return "", err
	}

	return formatProperties(props), nil
}

func (c *CheckImeiCommand) listServices(ctx context.Context) (string, error) {
	services, err := c.checker.Services(ctx)
	if err != nil {
		var remoteErr *imeicheck.RemoteError
		if errors.As(err, &remoteErr) {
			return remoteErr.Message, nil
		}
		return "", err
	}

	sort.Slice(services, func(i, j int) bool {
		return services[i].ID < services[j].ID
	})

	rows := make([]string, 0, len(services))
	for _, s := range services {
		rows = append(rows, fmt.Sprintf("%-2d %s %s", s.ID, s.Price, s.Title))
	}

	return "Use the following example:\n" +
		"/check_imei [IMEI] [service id]\n" +
		"Where instead of service id will be the id of the service you need from the table below:\n" +
		"```\nid|price|title\n" + strings.Join(rows, "\n") + "\n```", nil
}

func formatProperties(props map[string]any) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", k, props[k]))
	}
	return strings.Join(lines, "\n")
}
