// Package providers implements the dependency resolver over the content
// provider HTTP APIs, with retry, circuit breaking, and DNS caching.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/cenk/backoff"
	"github.com/rs/dnscache"
	circuit "github.com/rubyist/circuitbreaker"
	"go.trai.ch/zerr"
)

var (
	// ErrNotFound indicates the provider does not know the addon or version.
	ErrNotFound = zerr.New("addon not found")
	// ErrUpstreamDown indicates the provider's circuit breaker is open.
	ErrUpstreamDown = zerr.New("provider unavailable")
)

// Client performs provider API requests. One Client is shared by all
// provider backends; breakers are tracked per provider host.
type Client struct {
	http       *http.Client
	userAgent  string
	maxRetries uint64

	done      chan struct{}
	closeOnce sync.Once

	mu       sync.Mutex
	breakers map[string]*circuit.Breaker
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		cl.http = c
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(cl *Client) {
		cl.userAgent = ua
	}
}

// WithMaxRetries sets the maximum retry attempts per request.
func WithMaxRetries(n uint64) ClientOption {
	return func(cl *Client) {
		cl.maxRetries = n
	}
}

// NewClient creates a Client with a DNS-caching transport. Close stops the
// background cache refresh.
func NewClient(opts ...ClientOption) *Client {
	resolver := &dnscache.Resolver{}
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				resolver.Refresh(true)
			case <-done:
				return
			}
		}
	}()

	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	c := &Client{
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
					host, port, err := net.SplitHostPort(addr)
					if err != nil {
						return nil, err
					}
					ips, err := resolver.LookupHost(ctx, host)
					if err != nil {
						return nil, err
					}
					for _, ip := range ips {
						conn, err := dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
						if err == nil {
							return conn, nil
						}
					}
					return nil, fmt.Errorf("failed to dial any resolved IP")
				},
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		userAgent:  "loadout/1.0",
		maxRetries: 3,
		done:       done,
		breakers:   make(map[string]*circuit.Breaker),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close stops the DNS refresh goroutine. It is safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// breaker returns or creates the circuit breaker for a provider id.
func (c *Client) breaker(provider string) *circuit.Breaker {
	c.mu.Lock()
	defer c.mu.Unlock()

	if b, ok := c.breakers[provider]; ok {
		return b
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 30 * time.Second
	expBackoff.MaxInterval = 5 * time.Minute
	expBackoff.Reset()

	b := circuit.NewBreakerWithOptions(&circuit.Options{
		BackOff:    expBackoff,
		ShouldTrip: circuit.ThresholdTripFunc(5),
	})
	c.breakers[provider] = b
	return b
}

// GetJSON fetches url and decodes the response body into out, retrying
// transient failures with exponential backoff and honoring the provider's
// circuit breaker.
func (c *Client) GetJSON(ctx context.Context, provider, url string, out any) error {
	br := c.breaker(provider)
	if br.Tripped() {
		return zerr.With(ErrUpstreamDown, "provider", provider)
	}

	operation := func() error {
		return c.getOnce(ctx, br, url, out)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		return err
	}
	return nil
}

func (c *Client) getOnce(ctx context.Context, br *circuit.Breaker, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return backoff.Permanent(zerr.Wrap(err, "failed to build request"))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		br.Fail()
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		return err
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	switch {
	case resp.StatusCode == http.StatusOK:
		br.Success()
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(zerr.Wrap(err, "failed to decode response"))
		}
		return nil

	case resp.StatusCode == http.StatusNotFound:
		br.Success()
		return backoff.Permanent(zerr.With(ErrNotFound, "url", url))

	case resp.StatusCode >= 500:
		br.Fail()
		_, _ = io.Copy(io.Discard, resp.Body)
		return zerr.With(zerr.New("provider returned server error"), "status", resp.StatusCode)

	default:
		br.Success()
		_, _ = io.Copy(io.Discard, resp.Body)
		return backoff.Permanent(zerr.With(zerr.New("unexpected provider response"), "status", resp.StatusCode))
	}
}
