package upbit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samvad-hq/upbit-quotation/pkg/httpclient"
)

// AcceptJSON is sent as the Accept header on every request.
const AcceptJSON = "application/json"

// Config holds the client settings. Headers are added to every request after
// the default Accept header.
type Config struct {
	BaseURL string
	Headers map[string]string
}

// Client talks to the public quotation API. It keeps no per-call state and is
// safe for concurrent use.
type Client struct {
	baseURL string
	headers map[string]string
	http    httpclient.Client
}

// NewClient builds a client on top of the given transport. A nil transport
// gets a resty client with the transport's default timeouts.
func NewClient(cfg Config, client httpclient.Client) *Client {
	if client == nil {
		client = httpclient.NewRestyClient(httpclient.Options{})
	}

	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		headers[k] = v
	}

	return &Client{
		baseURL: base,
		headers: headers,
		http:    client,
	}
}

// BaseURL returns the API root every endpoint URL is built on.
func (c *Client) BaseURL() string { return c.baseURL }

// requestHeaders returns a fresh map per call so no request can leak header
// changes into another.
func (c *Client) requestHeaders() map[string]string {
	h := make(map[string]string, len(c.headers)+1)
	h["Accept"] = AcceptJSON
	for k, v := range c.headers {
		h[k] = v
	}
	return h
}

// Get issues a GET for a fully formed URL and decodes the JSON body into out.
// Statuses of 400 and above return *APIError. Pass a *any to receive the body
// as generic maps and slices; numbers then decode as json.Number.
func (c *Client) Get(ctx context.Context, url string, out any) error {
	resp, err := c.http.Get(ctx, url, c.requestHeaders())
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}

	if resp.StatusCode() >= 400 {
		return newAPIError(resp.StatusCode(), resp.Body())
	}

	if out == nil {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(resp.Body()))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", url, err)
	}
	return nil
}
