package registry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/packforge-labs/packforge/internal/branding"
)

// DefaultTimeout bounds every registry call. A timed-out call degrades to
// "no compatible release" at the resolution layer; it never aborts a run.
const DefaultTimeout = 15 * time.Second

type clientConfig struct {
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
}

// Option configures a registry client.
type Option func(*clientConfig)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *clientConfig) {
		cfg.httpClient = c
	}
}

// WithTimeout sets a custom request timeout. Zero or negative values fall
// back to DefaultTimeout. Combines with WithHTTPClient in either order.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *clientConfig) {
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		cfg.timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header sent to the registry.
func WithUserAgent(ua string) Option {
	return func(cfg *clientConfig) {
		cfg.userAgent = ua
	}
}

func newClientConfig(opts ...Option) clientConfig {
	cfg := clientConfig{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		userAgent:  branding.UserAgent(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	// Apply the timeout after all options so it sticks regardless of option
	// order, and on a copy so a caller-supplied client is never mutated.
	if cfg.timeout > 0 {
		c := *cfg.httpClient
		c.Timeout = cfg.timeout
		cfg.httpClient = &c
	}
	return cfg
}

// get issues a GET and returns the body bytes. Any transport failure or
// non-200 status comes back as a registry *Error of kind ErrUnavailable;
// header is an optional extra header pair (name, value).
func (cfg *clientConfig) get(ctx context.Context, p Platform, id, url string, header ...string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{Kind: ErrUnavailable, Platform: p, ID: id, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", cfg.userAgent)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	resp, err := cfg.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: ErrUnavailable, Platform: p, ID: id, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Kind: ErrUnavailable, Platform: p, ID: id,
			Err: fmt.Errorf("registry returned status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: ErrUnavailable, Platform: p, ID: id, Err: err}
	}
	return body, nil
}
