// Package imeicheck talks to an imeicheck.net-style device information
// API. Callers see exactly one error type, RemoteError, regardless of
// whether the service reported a failure or the transport broke.
package imeicheck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sandevgo/imeibot/internal/config"
	"github.com/sandevgo/imeibot/pkg/log"
)

// Status vocabulary of the check endpoint.
const (
	statusSuccessful   = "successful"
	statusFailed       = "failed"
	statusUnsuccessful = "unsuccessful"
)

// Reason classifies a RemoteError without adding error kinds.
type Reason string

const (
	ReasonFailed        Reason = "failed"
	ReasonNotFound      Reason = "unsuccessful"
	ReasonUnknownStatus Reason = "unknown_status"
	ReasonTransport     Reason = "transport"
)

const (
	msgFailed       = "Internal error occurred during checking. Please, try again later."
	msgUnsuccessful = "System did not find information for the given identifier using the provided service."
	msgUnknown      = "Unknown status received from the service."
)

// RemoteError is the single error type raised by the client.
type RemoteError struct {
	Reason  Reason
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

func transportError(format string, args ...any) *RemoteError {
	return &RemoteError{Reason: ReasonTransport, Message: fmt.Sprintf(format, args...)}
}

// Service is one entry of the lookup service catalog. Price is kept as
// json.Number because the API is not consistent about string vs number.
type Service struct {
	ID    int         `json:"id"`
	Price json.Number `json:"price"`
	Title string      `json:"title"`
}

type Client struct {
	client      *http.Client
	baseURL     string
	token       string
	serviceName string
}

func NewClient(cfg *config.ImeiCheckConfig) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		token:       cfg.Token,
		serviceName: "imeicheck.net",
	}
}

func (c *Client) ServiceName() string {
	return c.serviceName
}

// Balance returns the account balance, or 0.0 when the response carries
// no balance field.
func (c *Client) Balance(ctx context.Context) (float64, error) {
	var result struct {
		Balance *float64 `json:"balance"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/account", nil, &result); err != nil {
		return 0, err
	}
	if result.Balance == nil {
		return 0.0, nil
	}
	return *result.Balance, nil
}

// Services returns the service catalog as the API sent it. Ordering is
// up to the caller.
func (c *Client) Services(ctx context.Context) ([]Service, error) {
	var result []Service
	if err := c.doRequest(ctx, http.MethodGet, "/services", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Check submits a lookup for imei via the given service and returns the
// device properties on success.
func (c *Client) Check(ctx context.Context, imei string, serviceID int) (map[string]any, error) {
	payload := map[string]any{
		"deviceId":  imei,
		"serviceId": serviceID,
	}

	var result struct {
		Status     string         `json:"status"`
		Properties map[string]any `json:"properties"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "/checks", payload, &result); err != nil {
		return nil, err
	}

	logger := log.FromCtx(ctx)
	switch result.Status {
	case statusSuccessful:
		logger.Info().Msg("imei check successful")
		return result.Properties, nil
	case statusFailed:
		logger.Warn().Str("status", result.Status).Msg("imei check failed")
		return nil, &RemoteError{Reason: ReasonFailed, Message: msgFailed}
	case statusUnsuccessful:
		logger.Warn().Str("status", result.Status).Msg("imei check unsuccessful")
		return nil, &RemoteError{Reason: ReasonNotFound, Message: msgUnsuccessful}
	default:
		logger.Error().Str("status", result.Status).Msg("unknown status received from api")
		return nil, &RemoteError{Reason: ReasonUnknownStatus, Message: msgUnknown}
	}
}

// doRequest performs a single authenticated exchange. One attempt per
// call, no retries.
func (c *Client) doRequest(ctx context.Context, method, path string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return transportError("marshal request: %v", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return transportError("create request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return transportError("request to %s failed: %v", c.baseURL+path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError("read response body: %v", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return transportError("service returned status %d: %s", resp.StatusCode, string(data))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return transportError("decode response: %v", err)
	}
	return nil
}
