package httpx

import (
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client is a small wrapper around http.Client with sane defaults.
// Upstream clients are built on top of it with Resty so every source
// shares the same transport and timeout policy.
type Client struct {
	HTTP      *http.Client
	UserAgent string
	Headers   map[string]string
}

func New(timeout time.Duration) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   4,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &Client{HTTP: &http.Client{Timeout: timeout, Transport: transport}, UserAgent: "pcremote/1.0"}
}

// Resty returns a resty client bound to baseURL that reuses the wrapped
// http.Client. No retries are configured: a failed call fails once.
func (c *Client) Resty(baseURL string) *resty.Client {
	r := resty.NewWithClient(c.HTTP)
	r.SetBaseURL(baseURL)
	r.SetRetryCount(0)
	if c.UserAgent != "" {
		r.SetHeader("User-Agent", c.UserAgent)
	}
	for k, v := range c.Headers {
		r.SetHeader(k, v)
	}
	return r
}
