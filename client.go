package twift

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dghubble/oauth1"
)

const (
	// DefaultBaseURL is the Twitter API v2 endpoint root.
	DefaultBaseURL = "https://api.twitter.com"

	// DefaultTimeout is the default HTTP timeout used by the client.
	DefaultTimeout = 10 * time.Second

	maxResponseSize = 10 * 1024 * 1024
)

// Client is a Twitter API v2 HTTP client.
//
// It is safe for concurrent use: each call is independent and the client
// holds no per-call state. Cancellation and deadlines are the caller's
// responsibility via context.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	bearerToken string // empty when using OAuth 1.0a user context
}

// New creates an unauthenticated client. Most endpoints require
// authentication; this constructor exists for tests and for callers that
// supply their own transport.
func New(baseURL string) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, err
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}, nil
}

// NewWithBearerToken creates a client authenticated with an app-only
// bearer token. Read endpoints accept this; write endpoints (block, mute,
// follow) require user context and will be rejected by the server.
func NewWithBearerToken(baseURL, bearerToken string) (*Client, error) {
	if bearerToken == "" {
		return nil, fmt.Errorf("bearerToken must not be empty")
	}
	c, err := New(baseURL)
	if err != nil {
		return nil, err
	}
	c.bearerToken = bearerToken
	return c, nil
}

// NewWithOAuth1 creates a client with OAuth 1.0a user context. The
// returned client signs every request with the user's access token, which
// is what the v2 write endpoints expect.
func NewWithOAuth1(baseURL, consumerKey, consumerSecret, accessToken, accessSecret string) (*Client, error) {
	if consumerKey == "" || consumerSecret == "" {
		return nil, fmt.Errorf("consumer key and secret must not be empty")
	}
	if accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("access token and secret must not be empty")
	}
	c, err := New(baseURL)
	if err != nil {
		return nil, err
	}
	config := oauth1.NewConfig(consumerKey, consumerSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	c.httpClient = config.Client(oauth1.NoContext, token)
	c.httpClient.Timeout = DefaultTimeout
	return c, nil
}

// SetHTTPClient replaces the underlying HTTP client. Useful for injecting
// custom transports (tracing, recorded fixtures in tests).
func (c *Client) SetHTTPClient(hc *http.Client) { c.httpClient = hc }

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, in, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in any, out any) error {
	resp, err := c.doRaw(ctx, method, path, query, in)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	limited := io.LimitReader(resp.Body, maxResponseSize)
	data, err := io.ReadAll(limited)
	if err != nil {
		return err
	}
	return decodeResponse(resp.StatusCode, data, out)
}

func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values, in any) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}

	return c.httpClient.Do(req)
}
