// Package catalogapi is the HTTP client for the remote catalog API that owns
// products and orders.
package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// TokenHeader carries the admin token on every call.
const TokenHeader = "token"

type tokenKey struct{}

// WithToken overrides the client's default token for calls made with ctx.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

type Client struct {
	HTTP    *http.Client
	BaseURL string
	Token   string
	Log     *logrus.Logger
}

func New(baseURL, token string, timeout time.Duration, log *logrus.Logger) *Client {
	if log == nil {
		log = logrus.New()
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		Log:     log,
	}
}

func (c *Client) token(ctx context.Context) string {
	if t, ok := ctx.Value(tokenKey{}).(string); ok && t != "" {
		return t
	}
	return c.Token
}

// Envelope is the common part of every catalog API answer.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (e Envelope) result() (bool, string) { return e.Success, e.Message }

type enveloped interface {
	result() (bool, string)
}

func (c *Client) postJSON(ctx context.Context, op, path string, in any, out enveloped) error {
	body, err := json.Marshal(in)
	if err != nil {
		return &RequestError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
	}
	return c.do(ctx, op, http.MethodPost, path, bytes.NewReader(body), "application/json", out)
}

func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader, contentType string, out enveloped) error {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return &RequestError{Op: op, Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if tok := c.token(ctx); tok != "" {
		req.Header.Set(TokenHeader, tok)
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return &RequestError{Op: op, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &RequestError{Op: op, StatusCode: res.StatusCode, Err: fmt.Errorf("unexpected status %s", res.Status)}
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &RequestError{Op: op, StatusCode: res.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	ok, msg := out.result()
	c.Log.WithFields(logrus.Fields{
		"op":      op,
		"status":  res.StatusCode,
		"success": ok,
		"dur":     time.Since(start).String(),
	}).Debug("catalog api call")
	if !ok {
		return &ApplicationError{Op: op, Message: msg}
	}
	return nil
}
