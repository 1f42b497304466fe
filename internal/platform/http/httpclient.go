package http

import (
	"net"
	"net/http"
	"time"
)

// Option customises the client returned by NewHTTPClient.
type Option func(*http.Client, *http.Transport)

// WithUserAgent sets the User-Agent header on every outgoing request that does not carry one.
func WithUserAgent(ua string) Option {
	return func(c *http.Client, _ *http.Transport) {
		c.Transport = &userAgentTransport{ua: ua, next: c.Transport}
	}
}

// WithResponseHeaderTimeout bounds how long to wait for response headers once the request is sent.
// Generation-backed endpoints can take tens of seconds, so callers pick this per use.
func WithResponseHeaderTimeout(d time.Duration) Option {
	return func(_ *http.Client, t *http.Transport) {
		t.ResponseHeaderTimeout = d
	}
}

// NewHTTPClient returns a client with explicit dial, TLS and idle-connection limits.
// timeout bounds the whole request; zero means no overall limit.
// http.DefaultClient has no timeouts at all and must not be used for outbound calls.
func NewHTTPClient(timeout time.Duration, opts ...Option) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	c := &http.Client{Timeout: timeout, Transport: t}
	for _, opt := range opts {
		opt(c, t)
	}
	return c
}

type userAgentTransport struct {
	ua   string
	next http.RoundTripper
}

func (u *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", u.ua)
	}
	return u.next.RoundTrip(req)
}
