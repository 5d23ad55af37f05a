package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/inkread/inkread/internal/model"
)

// DefaultTimeout is the fixed per-request budget.
const DefaultTimeout = 30 * time.Second

// Response bodies are bounded; the API never streams.
const maxBodyBytes = 8 << 20

// TokenSource supplies the current session token. An empty string means the
// device is unauthenticated and no credential header is attached.
type TokenSource interface {
	Token() string
}

// Client issues requests against the configured base URL and normalizes
// transport failures into the package's error kinds.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        *logrus.Logger
	timeout    time.Duration
}

// ClientConfig configures the client.
type ClientConfig struct {
	BaseURL    string
	Timeout    time.Duration
	Tokens     TokenSource
	Logger     *logrus.Logger
	HTTPClient *http.Client
}

// NewClient creates a client for the given backend.
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.New()
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		tokens:     cfg.Tokens,
		log:        log,
		timeout:    timeout,
	}
}

// Envelope is the backend's uniform success envelope. Data stays raw so each
// service decodes its own shape.
type Envelope struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Data       json.RawMessage   `json:"data,omitempty"`
	Pagination *model.Pagination `json:"pagination,omitempty"`
}

// Decode unmarshals the envelope's data into v. A missing data field leaves
// v untouched.
func (e *Envelope) Decode(v any) error {
	if len(e.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

// Get performs a GET request with the given query parameters.
func (c *Client) Get(ctx context.Context, path string, params Params) (*Envelope, error) {
	return c.do(ctx, http.MethodGet, path, params, nil)
}

// Post performs a POST request with a JSON body. A nil body sends no payload.
func (c *Client) Post(ctx context.Context, path string, body any) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Envelope, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, params Params, body any) (*Envelope, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		if query := params.Encode().Encode(); query != "" {
			reqURL += "?" + query
		}
	}

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		normalized := c.normalizeTransportError(err)
		c.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     method,
			"path":       path,
		}).WithError(normalized).Debug("request failed")
		return nil, normalized
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("read response body: %w", err)}
	}

	var envelope Envelope
	decodeErr := json.Unmarshal(raw, &envelope)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := envelope.Message
		if message == "" {
			message = strings.TrimSpace(string(raw))
			if len(message) > 200 {
				message = message[:200]
			}
		}
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode, Message: message}
	}

	if decodeErr != nil {
		return nil, &NetworkError{Err: fmt.Errorf("decode response envelope: %w", decodeErr)}
	}

	if !envelope.Success {
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	return &envelope, nil
}

// normalizeTransportError maps a raw transport failure onto the error
// taxonomy. Deadline and timeout conditions take priority.
func (c *Client) normalizeTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Budget: c.timeout, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Budget: c.timeout, Err: err}
	}

	return &NetworkError{Err: err}
}
