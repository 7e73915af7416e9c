package network

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

// ErrStatus marks a page that answered with a 4xx or 5xx status.
var ErrStatus = errors.New("unexpected http status")

const (
	DefaultTimeout = 30 * time.Second

	maxPageBytes = 8 << 20
	userAgent    = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Fetcher downloads single job pages with a Chrome TLS fingerprint, so sites
// that gate on it serve the same markup a browser sees.
type Fetcher struct {
	client tls_client.HttpClient
}

// NewFetcher builds a fetcher. proxy is optional; when set it must be an
// http, https or socks5 URL.
func NewFetcher(timeout time.Duration, proxy string) (*Fetcher, error) {
	seconds := int(timeout / time.Second)
	if timeout <= 0 {
		seconds = int(DefaultTimeout / time.Second)
	} else if seconds < 1 {
		seconds = 1
	}

	options := []tls_client.HttpClientOption{
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithTimeoutSeconds(seconds),
	}
	if proxy = strings.TrimSpace(proxy); proxy != "" {
		if err := checkProxy(proxy); err != nil {
			return nil, err
		}
		options = append(options, tls_client.WithProxyUrl(proxy))
	}

	client, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
	if err != nil {
		return nil, err
	}
	return &Fetcher{client: client}, nil
}

func checkProxy(proxy string) error {
	u, err := url.Parse(proxy)
	if err != nil {
		return fmt.Errorf("proxy %q: %w", proxy, err)
	}
	switch u.Scheme {
	case "http", "https", "socks5":
	default:
		return fmt.Errorf("proxy %q: unsupported scheme %q", proxy, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("proxy %q: missing host", proxy)
	}
	return nil
}

// Fetch GETs target and returns up to 8 MiB of its body.
func (f *Fetcher) Fetch(ctx context.Context, target string) ([]byte, error) {
	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	req.Header.Set("accept-language", "en-US,en;q=0.9")
	req.Header.Set("user-agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: %s returned %d", ErrStatus, target, resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
}
