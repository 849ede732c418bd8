// Package kasapi is the client of the remote uang kas REST API.
package kasapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"kas-dashboard-svc/pkg/logger"
)

// TokenSource provides the bearer token attached to authenticated calls
type TokenSource interface {
	Token() string
}

// APIError is returned for every non-2xx response
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
}

// StatusCode returns the HTTP status of err when it is an *APIError, 0 otherwise
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Client talks to the kas API
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *logger.Logger
}

// NewClient creates a client for baseURL (e.g. http://host:8081/api).
// A nil httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client, tokens TokenSource, logger *logger.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
		logger:     logger,
	}
}

type request struct {
	op          string
	method      string
	path        string
	body        io.Reader
	contentType string
	auth        bool
}

func jsonBody(v interface{}) (io.Reader, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return bytes.NewReader(b), nil
}

// send executes r and returns the raw body of a 2xx response
func (c *Client) send(ctx context.Context, r request) ([]byte, error) {
	url := c.baseURL + r.path
	req, err := http.NewRequestWithContext(ctx, r.method, url, r.body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", r.op, err)
	}

	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	} else {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if r.auth && c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).WithFields(map[string]interface{}{
			"op":  r.op,
			"url": url,
		}).Error("Kas API request failed")
		return nil, fmt.Errorf("%s: failed to send request: %w", r.op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read response: %w", r.op, err)
	}

	c.logger.WithFields(map[string]interface{}{
		"op":          r.op,
		"method":      r.method,
		"url":         url,
		"status_code": resp.StatusCode,
	}).Debug("Kas API response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Op:         r.op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	return body, nil
}

// do executes r and decodes a JSON response into out when out is not nil
func (c *Client) do(ctx context.Context, r request, out interface{}) error {
	body, err := c.send(ctx, r)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: failed to parse response: %w", r.op, err)
	}
	return nil
}
