// Package apiclient is the Go client of the back office API used by the
// reservation wizard and by tooling.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/muhu-travel/backoffice-api/internal/access"
	"github.com/muhu-travel/backoffice-api/internal/api/handler/v1/response"
)

var (
	ErrNoSession    = errors.New("no active session, login first")
	ErrNotPermitted = errors.New("the session role may not perform this action")
)

// APIError is a non 2xx answer of the API.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: %d %s", e.StatusCode, e.Status)
	}

	return fmt.Sprintf("api: %d %s: %s", e.StatusCode, e.Status, e.Message)
}

// StatusCode returns the HTTP status of err when it is an APIError, 0 otherwise.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

type Client struct {
	baseURL string
	http    *http.Client

	mu      sync.RWMutex
	session *Session
}

// New returns a client for the API mounted at baseURL, e.g. http://localhost:8080/api/v1.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Session returns the current session, nil before the first Login or Register.
func (c *Client) Session() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.session
}

func (c *Client) setSession(s *Session) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session = s
}

func (c *Client) Logout() {
	c.Session().Invalidate()
}

// require fails fast when the session cannot perform action on resource.
func (c *Client) require(action access.Action, resource access.Resource) error {
	s := c.Session()
	if !s.Valid() {
		return ErrNoSession
	}
	if !s.Can(action, resource) {
		return fmt.Errorf("%w: %s %s", ErrNotPermitted, action, resource)
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, authenticated bool) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("json.Marshal -> %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	session := c.Session()
	if authenticated {
		token, ok := session.Token()
		if !ok {
			return ErrNoSession
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("c.http.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody response.Err
		if json.NewDecoder(resp.Body).Decode(&errBody) == nil {
			apiErr.Status = errBody.StatusText
			apiErr.Message = errBody.ErrorText
		}

		if authenticated && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			zap.L().Info("session invalidated by the server",
				zap.Int("status", resp.StatusCode),
				zap.String("method", method),
				zap.String("path", path))
			session.Invalidate()
		}

		return apiErr
	}

	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("json.Decode -> %w", err)
	}

	return nil
}
