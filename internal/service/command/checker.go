package command

import (
	"context"

	"github.com/sandevgo/imeibot/internal/providers/imeicheck"
)

// DeviceChecker is the remote lookup surface the commands depend on.
type DeviceChecker interface {
	ServiceName() string
	Balance(ctx context.Context) (float64, error)
	Services(ctx context.Context) ([]imeicheck.Service, error)
	Check(ctx context.Context, imei string, serviceID int) (map[string]any, error)
}
