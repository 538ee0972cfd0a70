// The http_tls module registered here performs requests with a Chrome TLS
// fingerprint (refraction-networking/utls, HelloChrome_120). Several catalog
// mirrors sit behind anti-bot layers that reject the stock Go handshake, so
// scripts scraping them call http_tls instead of the plain http library.
// HTTP/2 is tried first with a transparent fallback to HTTP/1.1.
//
// Functions exposed to scripts:
//
//	http_tls.get(url)              returns the body as a string
//	http_tls.get(url, headers)     same, with custom request headers
//	http_tls.request(options)      returns a {status, body} table

package custom

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/episan-cli/episan/constant"
	"github.com/episan-cli/episan/internal/cache"
	utls "github.com/refraction-networking/utls"
	lua "github.com/yuin/gopher-lua"
	"golang.org/x/net/http2"
)

const tlsTimeout = 30 * time.Second

// registerTLSClient exposes the http_tls table to a freshly created Lua
// state. The loader runs it once per script, before any globals execute.
func registerTLSClient(L *lua.LState) {
	mod := L.NewTable()
	L.SetField(mod, "get", L.NewFunction(luaGet))
	L.SetField(mod, "request", L.NewFunction(luaRequest))
	L.SetGlobal("http_tls", mod)
}

// luaGet implements http_tls.get(url [, headers]).
func luaGet(L *lua.LState) int {
	url := L.CheckString(1)

	headers := make(map[string]string)
	if tbl := L.OptTable(2, nil); tbl != nil {
		tbl.ForEach(func(k, v lua.LValue) {
			headers[k.String()] = v.String()
		})
	}

	body, _, err := fetch("GET", url, headers, "")
	if err != nil {
		L.RaiseError("http_tls.get failed: %s", err.Error())
		return 0
	}

	L.Push(lua.LString(body))
	return 1
}

// cachedResponse is the shape http_tls.request persists for cache=true calls.
type cachedResponse struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

// luaRequest implements http_tls.request({method, url, headers, body, cache}).
func luaRequest(L *lua.LState) int {
	opts := L.CheckTable(1)

	method := stringField(opts, "method", "GET")
	url := stringField(opts, "url", "")
	reqBody := stringField(opts, "body", "")

	if url == "" {
		L.RaiseError("http_tls.request: url is required")
		return 0
	}

	headers := make(map[string]string)
	if tbl, ok := opts.RawGetString("headers").(*lua.LTable); ok {
		tbl.ForEach(func(k, v lua.LValue) {
			headers[k.String()] = v.String()
		})
	}

	push := func(status int, body string) int {
		result := L.NewTable()
		L.SetField(result, "status", lua.LNumber(status))
		L.SetField(result, "body", lua.LString(body))
		L.Push(result)
		return 1
	}

	useCache := lua.LVAsBool(opts.RawGetString("cache"))

	var cacheKey string
	if useCache {
		cacheKey = cache.GenerateKey(url+reqBody, method)

		var hit cachedResponse
		if cache.Read(cacheKey, &hit) {
			return push(hit.Status, hit.Body)
		}
	}

	body, status, err := fetch(method, url, headers, reqBody)
	if err != nil {
		L.RaiseError("http_tls.request failed: %s", err.Error())
		return 0
	}

	if useCache && status == http.StatusOK {
		_ = cache.Write(cacheKey, cachedResponse{Status: status, Body: body})
	}

	return push(status, body)
}

var (
	spoofedH2     *http2.Transport
	spoofedH2Once sync.Once
)

// h2Transport lazily builds the shared HTTP/2 transport dialing through utls.
func h2Transport() *http2.Transport {
	spoofedH2Once.Do(func() {
		spoofedH2 = &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return spoofedDial(ctx, network, addr, nil)
			},
		}
	})
	return spoofedH2
}

// h1Transport serves the fallback path, advertising http/1.1 only.
var h1Transport = &http.Transport{
	DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
		return spoofedDial(ctx, network, addr, []string{"http/1.1"})
	},
}

// fetch performs one request with the spoofed fingerprint. The h2 transport
// goes first; when the handshake or protocol negotiation fails the request
// is replayed over http/1.1.
func fetch(method, rawURL string, headers map[string]string, body string) (string, int, error) {
	build := func() (*http.Request, error) {
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}

		req, err := http.NewRequest(method, rawURL, reader)
		if err != nil {
			return nil, err
		}

		req.Header.Set("User-Agent", constant.UserAgent)
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		req.Header.Set("Accept-Language", "en-US,en;q=0.5")
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		return req, nil
	}

	req, err := build()
	if err != nil {
		return "", 0, fmt.Errorf("create request: %w", err)
	}

	resp, err := (&http.Client{Timeout: tlsTimeout, Transport: h2Transport()}).Do(req)
	if err != nil {
		req, buildErr := build()
		if buildErr != nil {
			return "", 0, fmt.Errorf("create request: %w", buildErr)
		}

		resp, err = (&http.Client{Timeout: tlsTimeout, Transport: h1Transport}).Do(req)
		if err != nil {
			return "", 0, fmt.Errorf("request failed: %w", err)
		}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("read body: %w", err)
	}

	return string(respBody), resp.StatusCode, nil
}

// spoofedDial opens a TCP connection and completes a Chrome-fingerprinted
// TLS handshake over it. Leaving protos nil lets the hello advertise its
// natural h2+http/1.1 pair.
func spoofedDial(ctx context.Context, network, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: tlsTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.Handshake(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
