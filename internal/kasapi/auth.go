package kasapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the answer of POST /auth/login. ExpiresIn is in seconds.
type LoginResponse struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	ExpiresIn int64  `json:"expires_in"`
}

// LogoutResponse is the answer of POST /auth/logout
type LogoutResponse struct {
	Message string `json:"message"`
}

// Login exchanges credentials for a bearer token. No token is sent.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	body, err := jsonBody(LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	err = c.do(ctx, request{op: "login", method: http.MethodPost, path: "/auth/login", body: body}, &out)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Body == "" {
			apiErr.Body = fmt.Sprintf("Login failed with status %d", apiErr.StatusCode)
		}
		return nil, err
	}
	return &out, nil
}

// Logout ends the remote session. A body that is not JSON becomes the message.
func (c *Client) Logout(ctx context.Context) (*LogoutResponse, error) {
	raw, err := c.send(ctx, request{op: "logout", method: http.MethodPost, path: "/auth/logout", auth: true})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Body == "" {
			apiErr.Body = fmt.Sprintf("Logout failed with status %d", apiErr.StatusCode)
		}
		return nil, err
	}

	var out LogoutResponse
	if jsonErr := json.Unmarshal(raw, &out); jsonErr != nil {
		text := strings.TrimSpace(string(raw))
		if text == "" {
			text = "Logged out"
		}
		return &LogoutResponse{Message: text}, nil
	}
	return &out, nil
}
