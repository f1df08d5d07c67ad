package gw2

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the fixed origin of the Guild Wars 2 API.
const DefaultBaseURL = "https://api.guildwars2.com"

const defaultTimeout = 30 * time.Second

// Client performs requests against the Guild Wars 2 API. It holds the
// session state for every call: the locale sent on each request and the
// optional API token used by account-bound endpoints. A Client is immutable
// after construction and safe for concurrent use.
type Client struct {
	baseURL    string
	lang       string
	token      string
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a client requesting localized content in lang
// (for example "en", "de", "es"). Account-bound endpoints additionally
// require a token, configured with WithToken.
func NewClient(lang string, opts ...Option) *Client {
	if lang == "" {
		lang = "en"
	}

	client := &Client{
		baseURL:    DefaultBaseURL,
		lang:       lang,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	client.baseURL = strings.TrimRight(client.baseURL, "/")

	// Applied after the options so WithTimeout holds regardless of its
	// position relative to WithHTTPClient
	if client.timeout > 0 {
		client.httpClient.Timeout = client.timeout
	}

	return client
}

// HasToken reports whether the client can call account-bound endpoints.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// response is the transport output handed to the dispatcher: the status
// code and the raw body of one completed GET.
type response struct {
	status int
	body   []byte
}

// get performs a single GET against the API origin. When authed is true the
// configured token is attached as a bearer credential; the locale header is
// attached on every request. Transport failures are returned wrapped and
// are never interpreted as API outcomes.
func (c *Client) get(ctx context.Context, path string, authed bool) (*response, error) {
	if authed && c.token == "" {
		return nil, ErrNoToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept-Language", c.lang)
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug().Str("path", path).Bool("authed", authed).Msg("Making GW2 API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &response{status: resp.StatusCode, body: body}, nil
}
