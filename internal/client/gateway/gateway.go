// Package gateway implements the thin HTTP boundary to the EventHub cloud
// functions. Every operation is a single POST of a JSON action envelope
// {action, ...payload} to one of a small set of endpoint URLs; the catalog
// listing is a bare GET. Calls are fire-once: no retries, no idempotency
// key. The caller decides whether to re-issue (e.g. "resend code").
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/avryabov/eventhub-cli/internal/common"
	"github.com/avryabov/eventhub-cli/internal/logging"
)

// Client issues action envelopes to fixed endpoint URLs. A session token,
// when set, is attached to every request via the X-Auth-Token header.
type Client struct {
	httpClient *http.Client
	logger     logging.Logger
	token      string
}

// New builds a Client. timeout limits each request end to end; zero means
// no client-side timeout, leaving cancellation entirely to the caller's
// context.
func New(logger logging.Logger, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SetToken attaches a session token to subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

// ClearToken removes the session token (logout).
func (c *Client) ClearToken() { c.token = "" }

// envelope flattens payload into a map and injects the action name, so the
// wire body is {action, ...fields} rather than {action, payload: {...}}.
func envelope(action string, payload any) ([]byte, error) {
	m := map[string]any{}
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, err
		}
	}
	m["action"] = action
	return json.Marshal(m)
}

// Post sends the {action, ...payload} envelope to endpoint and returns the
// raw success body. Error taxonomy:
//
//   - transport failure          -> ErrUnavailable (wrapped)
//   - HTTP non-2xx               -> *ServerError with the server's `error`
//     message when present
//   - unreadable success body    -> ErrMalformedResponse (wrapped)
func (c *Client) Post(ctx context.Context, endpoint, action string, payload any) (json.RawMessage, error) {
	body, err := envelope(action, payload)
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setCommonHeaders(req)

	c.logger.Debug(ctx, "gateway call", "action", action, "endpoint", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "gateway transport failure", "action", action, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	return c.readResponse(resp)
}

// Get issues a bare GET (no action envelope) and returns the raw success
// body. Used by the catalog listing.
func (c *Client) Get(ctx context.Context, endpoint string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building GET request: %w", err)
	}
	c.setCommonHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	return c.readResponse(resp)
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if c.token != "" {
		req.Header.Set(common.AuthTokenHeaderName, c.token)
	}
}

func (c *Client) readResponse(resp *http.Response) (json.RawMessage, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &ServerError{StatusCode: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(data, &payload); err == nil {
			se.Message = payload.Error
		}
		return nil, se
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrMalformedResponse)
	}
	return json.RawMessage(data), nil
}

// Decode unmarshals a raw success body into v, mapping any decoding failure
// to ErrMalformedResponse so callers never see undefined fields.
func Decode(raw json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
