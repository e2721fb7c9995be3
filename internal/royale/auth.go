package royale

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates an account. It does not log the user in.
func (c *Client) Register(ctx context.Context, username, email, password string) (*AuthResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	req := registerRequest{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Password: password,
	}
	switch {
	case req.Username == "":
		return nil, newValidationError("username", "username is required")
	case req.Email == "":
		return nil, newValidationError("email", "email is required")
	case password == "":
		return nil, newValidationError("password", "password is required")
	}
	var resp AuthResponse
	if err := c.Do(ctx, "/auth/register", RequestConfig{Method: http.MethodPost, Body: req}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates and stores the returned credentials.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	req := loginRequest{Username: strings.TrimSpace(username), Password: password}
	if req.Username == "" {
		return nil, newValidationError("username", "username is required")
	}
	if password == "" {
		return nil, newValidationError("password", "password is required")
	}
	var resp AuthResponse
	if err := c.Do(ctx, "/auth/login", RequestConfig{Method: http.MethodPost, Body: req}, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken != "" && c.creds != nil {
		if err := c.creds.SetTokens(resp.AccessToken, resp.RefreshToken); err != nil {
			return &resp, fmt.Errorf("store credentials: %w", err)
		}
	}
	c.logger.Info().Str("username", req.Username).Msg("logged in")
	return &resp, nil
}

// Logout forgets both credentials. No request is made.
func (c *Client) Logout() error {
	if c == nil || c.creds == nil {
		return nil
	}
	if err := c.creds.Clear(); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	c.logger.Info().Msg("logged out")
	return nil
}

// CurrentUser returns the account behind the stored access credential.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var resp struct {
		User *User `json:"user"`
	}
	if err := c.Do(ctx, "/auth/me", RequestConfig{}, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return &User{}, nil
	}
	return resp.User, nil
}

// RefreshToken exchanges the refresh credential for a new access credential.
// The refresh credential itself is left unchanged.
func (c *Client) RefreshToken(ctx context.Context) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	const endpoint = "/auth/refresh"
	refresh := ""
	if c.creds != nil {
		refresh = c.creds.RefreshToken()
	}
	if refresh == "" {
		return "", &RequestError{
			Method:  http.MethodPost,
			Path:    endpoint,
			Message: ErrNoRefreshToken.Error(),
			Err:     ErrNoRefreshToken,
		}
	}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	cfg := RequestConfig{
		Method:  http.MethodPost,
		Headers: map[string]string{"Authorization": "Bearer " + refresh},
	}
	if err := c.Do(ctx, endpoint, cfg, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", &RequestError{Method: http.MethodPost, Path: endpoint, Status: http.StatusOK, Message: "no access credential returned"}
	}
	if err := c.creds.SetAccessToken(resp.AccessToken); err != nil {
		return resp.AccessToken, fmt.Errorf("store credentials: %w", err)
	}
	return resp.AccessToken, nil
}

// IsAuthenticated reports whether an access credential is held.
func (c *Client) IsAuthenticated() bool {
	return c != nil && c.accessToken() != ""
}
