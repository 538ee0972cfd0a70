// Package network provides the shared HTTP client used for feed and daemon traffic.
package network

import (
	"net/http"
	"time"

	"github.com/episan-cli/episan/constant"
)

// Client is the HTTP client shared across the application. Feed polling,
// release fetching and daemon RPC all go through it, so the pool is sized
// for a handful of hosts polled concurrently rather than for crawling.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: &identifyingTransport{inner: newTransport()},
}

// identifyingTransport stamps the application User-Agent on requests that
// do not carry their own.
type identifyingTransport struct {
	inner http.RoundTripper
}

func (t *identifyingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", constant.UserAgent)
	}

	return t.inner.RoundTrip(req)
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 64
	t.MaxIdleConnsPerHost = 8
	t.MaxConnsPerHost = 16
	t.IdleConnTimeout = 90 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}
