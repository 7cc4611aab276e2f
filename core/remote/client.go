package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"levelcode/core/extract"

	"github.com/avast/retry-go/v4"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	searchPath      = "/api/search"
	suggestionsPath = "/api/search/suggestions"
)

// Code is a code returned by the backend search.
type Code struct {
	SearchKey string          `json:"search_key"`
	CodeType  string          `json:"code_type"`
	Payload   extract.Payload `json:"encrypted_data"`
}

// Suggestions is the backend fuzzy match list for a keyword.
type Suggestions struct {
	Items []string `json:"items"`
	Total int      `json:"total"`
}

type searchRequest struct {
	Keyword    string `json:"keyword"`
	LicenseKey string `json:"license_key"`
	DeviceID   string `json:"device_id"`
}

type suggestionsRequest struct {
	Keyword string `json:"keyword"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Total   *int            `json:"total"`
	Message string          `json:"message"`
}

// Client talks to the code search backend.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

// NewClient creates a backend client. A nil httpClient uses one bounded by
// cfg's timeout.
func NewClient(cfg Config, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout()}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		cfg:    cfg,
		http:   httpClient,
		logger: logger,
	}
}

// Search looks up the code for keyword, which is an item name or a canonical
// combination key.
func (c *Client) Search(ctx context.Context, keyword string) (*Code, error) {
	if !c.cfg.Activated() {
		return nil, ErrNotActivated
	}

	env, err := c.post(ctx, searchPath, searchRequest{
		Keyword:    keyword,
		LicenseKey: c.cfg.LicenseKey,
		DeviceID:   c.cfg.DeviceID,
	})
	if err != nil {
		return nil, err
	}
	if !env.Success || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, &RemoteError{Status: http.StatusOK, Message: messageOr(env.Message, DefaultNotFoundMessage)}
	}

	var code Code
	if err := json.Unmarshal(env.Data, &code); err != nil {
		return nil, fmt.Errorf("failed to decode search result: %w", err)
	}
	if code.Payload == nil {
		return nil, &RemoteError{Status: http.StatusOK, Message: DefaultNotFoundMessage}
	}
	return &code, nil
}

// Suggestions returns fuzzy matches for keyword. A blank keyword yields no
// suggestions without contacting the backend.
func (c *Client) Suggestions(ctx context.Context, keyword string) (*Suggestions, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return &Suggestions{Items: []string{}}, nil
	}

	env, err := c.post(ctx, suggestionsPath, suggestionsRequest{Keyword: keyword})
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &RemoteError{Status: http.StatusOK, Message: messageOr(env.Message, "suggestions unavailable")}
	}

	out := &Suggestions{Items: []string{}}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &out.Items); err != nil {
			return nil, fmt.Errorf("failed to decode suggestions: %w", err)
		}
	}
	out.Total = len(out.Items)
	if env.Total != nil {
		out.Total = *env.Total
	}
	return out, nil
}

// post sends body to path and decodes the envelope. Transport failures and
// 5xx/429 answers are retried; any other answer is final.
func (c *Client) post(ctx context.Context, path string, body any) (*envelope, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	attempts := c.cfg.Attempts
	if attempts < 1 {
		attempts = 1
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + path
	var env *envelope

	err = retry.Do(
		func() error {
			var err error
			env, err = c.do(ctx, url, payload)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(uint(attempts)),
		retry.Delay(c.cfg.RetryDelay()),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("Backend request failed, retrying",
				zap.String("path", path),
				zap.Uint("attempt", n+1),
				zap.Error(err),
			)
		}),
	)
	if err != nil {
		return nil, classify(err)
	}
	return env, nil
}

func (c *Client) do(ctx context.Context, url string, payload []byte) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &transportError{err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &transportError{err: err}
	}

	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		return nil, &RemoteError{Status: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	var env envelope
	decodeErr := json.Unmarshal(respBody, &env)

	if resp.StatusCode != http.StatusOK {
		msg := env.Message
		if decodeErr != nil || msg == "" {
			msg = strings.TrimSpace(string(respBody))
		}
		return nil, retry.Unrecoverable(&RemoteError{Status: resp.StatusCode, Message: msg})
	}
	if decodeErr != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("failed to decode response: %w", decodeErr))
	}
	return &env, nil
}

// transportError marks a failure before a complete answer was received.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return "request failed: " + e.err.Error() }

func (e *transportError) Unwrap() error { return e.err }

// classify maps transport failures onto ErrTimeout and ErrUnreachable.
// Backend answers keep their *RemoteError.
func classify(err error) error {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr
	}

	var netErr net.Error
	var transportErr *transportError
	switch {
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case errors.As(err, &transportErr):
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	default:
		return err
	}
}

func messageOr(msg, fallback string) string {
	if strings.TrimSpace(msg) == "" {
		return fallback
	}
	return msg
}
