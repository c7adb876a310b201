// Package peer implements the HTTP transport that pairs scaffold service
// instances: a Client for delegating requests outward and a Handler for
// serving them.
//
// Pairing topology is a deployment concern. A delegated request that misses
// on a peer runs that peer's full resolution, so operators must keep
// pairings acyclic.
package peer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/klauspost/compress/gzhttp"

	"github.com/meigma/scaffold"
)

// DefaultTimeout bounds one delegated request when no custom HTTP client is
// configured.
const DefaultTimeout = 30 * time.Second

// Client invokes a paired scaffold instance over HTTP. It implements
// scaffold.Peer.
type Client struct {
	name    string
	baseURL string
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithName sets the peer name recorded in logs and outcomes.
// It defaults to the base URL.
func WithName(name string) Option {
	return func(c *Client) {
		if name != "" {
			c.name = name
		}
	}
}

// WithClient sets the HTTP client used for peer calls. Callers wanting
// compressed transfers should wrap the transport with gzhttp themselves.
func WithClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// NewClient creates a Client for the peer instance at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		name:    baseURL,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{
			Transport: gzhttp.Transport(http.DefaultTransport),
			Timeout:   DefaultTimeout,
		}
	}
	return c
}

// Name identifies the peer in logs and recorded outcomes.
func (c *Client) Name() string {
	return c.name
}

// Run forwards the request to the peer verbatim and returns the outcome set
// the peer produced. A peer that cannot serve the index reports
// scaffold.ErrNoIndexAvailable.
func (c *Client) Run(ctx context.Context, req scaffold.Request) ([]scaffold.Outcome, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("peer %s: encode request: %w", c.name, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/scaffold", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("peer %s: %w", c.name, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("peer %s: %w", c.name, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("peer %s: %w", c.name, scaffold.ErrNoIndexAvailable)
	default:
		return nil, fmt.Errorf("peer %s: %w: %s", c.name, ErrPeerStatus, resp.Status)
	}

	var rr runResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return nil, fmt.Errorf("peer %s: decode response: %w", c.name, err)
	}
	return rr.Outcomes, nil
}

// Indexes fetches the index options the peer advertises.
func (c *Client) Indexes(ctx context.Context) ([]scaffold.IndexOption, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/indexes", nil)
	if err != nil {
		return nil, fmt.Errorf("peer %s: %w", c.name, err)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("peer %s: %w", c.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("peer %s: %w: %s", c.name, ErrPeerStatus, resp.Status)
	}

	var ir indexesResponse
	if err := json.NewDecoder(resp.Body).Decode(&ir); err != nil {
		return nil, fmt.Errorf("peer %s: decode response: %w", c.name, err)
	}
	return ir.Indexes, nil
}
