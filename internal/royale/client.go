package royale

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// API is the typed surface of the deck-analyzer backend.
// This interface is implemented by *Client and can be used for testing.
type API interface {
	GetPlayer(ctx context.Context, tag string, forceRefresh bool) (*Player, error)
	AnalyzeDeck(ctx context.Context, tag string) (*AnalysisResult, error)
	ListPlayers(ctx context.Context, limit, offset int) (*PlayerPage, error)
	SearchPlayers(ctx context.Context, query string) (*PlayerPage, error)
	ListCards(ctx context.Context, filter CardFilter) (*CardList, error)
	GetCard(ctx context.Context, id int) (*Card, error)
	CardStatistics(ctx context.Context) (*CardStatistics, error)
	SyncCards(ctx context.Context) (*SyncResult, error)
	GenerateRoast(ctx context.Context, tag string, intensity Intensity) (*Roast, error)
	Register(ctx context.Context, username, email, password string) (*AuthResponse, error)
	Login(ctx context.Context, username, password string) (*AuthResponse, error)
	Logout() error
	CurrentUser(ctx context.Context) (*User, error)
	RefreshToken(ctx context.Context) (string, error)
	IsAuthenticated() bool
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Credentials is the session state the client reads on every request and
// writes on login, refresh and logout.
type Credentials interface {
	AccessToken() string
	RefreshToken() string
	SetTokens(access, refresh string) error
	SetAccessToken(access string) error
	Clear() error
}

// Client talks to the deck-analyzer HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	creds     Credentials
	logger    zerolog.Logger
	userAgent string
}

const (
	// DefaultBaseURL is the local development backend.
	DefaultBaseURL   = "http://localhost:5000/api"
	defaultUserAgent = "decklens/0.1"
)

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger failures are reported to.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient builds a Client for baseURL. creds may be nil, in which case
// every request is unauthenticated and login cannot persist credentials.
func NewClient(baseURL string, creds Credentials, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{},
		creds:     creds,
		logger:    zerolog.Nop(),
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL reports the resolved API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// RequestConfig describes one request. The zero value is a GET without body.
type RequestConfig struct {
	Method  string
	Body    any
	Headers map[string]string
}

// Do issues one request against endpoint, which is relative to the base URL
// and may carry a query string. On a 2xx response the JSON body is decoded
// into dest when dest is non-nil.
func (c *Client) Do(ctx context.Context, endpoint string, cfg RequestConfig, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	method := cfg.Method
	if method == "" {
		method = http.MethodGet
	}
	requestID := uuid.NewString()

	err := c.do(ctx, requestID, method, endpoint, cfg, dest)
	if err != nil {
		status := 0
		var reqErr *RequestError
		if errors.As(err, &reqErr) {
			status = reqErr.Status
		}
		c.logger.Error().
			Err(err).
			Str("request_id", requestID).
			Str("method", method).
			Str("path", endpoint).
			Int("status", status).
			Msg("api request failed")
	}
	return err
}

func (c *Client) do(ctx context.Context, requestID, method, endpoint string, cfg RequestConfig, dest any) error {
	fail := func(status int, msg string, err error) *RequestError {
		return &RequestError{Method: method, Path: endpoint, Status: status, Message: msg, Err: err}
	}

	reqURL, err := c.resolve(endpoint)
	if err != nil {
		return fail(0, "", fmt.Errorf("resolve endpoint: %w", err))
	}

	var body io.Reader
	if cfg.Body != nil {
		encoded, err := json.Marshal(cfg.Body)
		if err != nil {
			return fail(0, "", fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fail(0, "", fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if token := c.accessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range cfg.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fail(0, "", fmt.Errorf("execute request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(resp.StatusCode, "", fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(raw, &payload)
		msg := strings.TrimSpace(payload.Error)
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return fail(resp.StatusCode, msg, nil)
	}

	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fail(resp.StatusCode, "", fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) accessToken() string {
	if c.creds == nil {
		return ""
	}
	return c.creds.AccessToken()
}

// getData issues a request whose response is wrapped in the standard
// {success, data, error} envelope and returns the unwrapped data.
func getData[T any](ctx context.Context, c *Client, endpoint string, cfg RequestConfig) (*T, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload envelope[T]
	if err := c.Do(ctx, endpoint, cfg, &payload); err != nil {
		return nil, err
	}
	if payload.Data == nil {
		var zero T
		return &zero, nil
	}
	return payload.Data, nil
}

func (c *Client) resolve(endpoint string) (string, error) {
	rel, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	u := *c.baseURL
	u.Path = strings.TrimRight(c.baseURL.Path, "/") + "/" + strings.TrimLeft(rel.Path, "/")
	u.RawPath = ""
	u.RawQuery = rel.RawQuery
	return u.String(), nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base url %q: missing host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
