package relay

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/housestock/backend/internal/domain"
	"github.com/housestock/backend/internal/logger"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

// maxPageSize caps how much of a product page is read
const maxPageSize = 5 << 20

// Config holds relay client settings
type Config struct {
	// RelayURL is prefixed to the escaped target URL. Empty fetches the target directly.
	RelayURL          string
	Timeout           time.Duration
	RetryMax          int
	RequestsPerSecond float64
	Burst             int
	UserAgent         string
}

// Client fetches product pages through a URL relay
type Client struct {
	httpClient  *retryablehttp.Client
	relayURL    string
	userAgent   string
	rateLimiter *rate.Limiter
	log         *zap.SugaredLogger
}

// NewClient creates a new relay client
func NewClient(cfg Config, log *zap.SugaredLogger) *Client {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = cfg.RetryMax
	httpClient.RetryWaitMin = 500 * time.Millisecond
	httpClient.RetryWaitMax = 2 * time.Second
	httpClient.HTTPClient.Timeout = cfg.Timeout
	httpClient.Logger = logger.Leveled{SugaredLogger: log}
	// Hand back the final response so non-2xx statuses can be reported with their code
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		httpClient:  httpClient,
		relayURL:    cfg.RelayURL,
		userAgent:   cfg.UserAgent,
		rateLimiter: rate.NewLimiter(limit, burst),
		log:         log,
	}
}

// requestURL builds the relay URL for a target page
func (c *Client) requestURL(pageURL string) string {
	if c.relayURL == "" {
		return pageURL
	}
	return c.relayURL + url.QueryEscape(pageURL)
}

// Fetch retrieves the HTML of pageURL, decoded to UTF-8
func (c *Client) Fetch(ctx context.Context, pageURL string) (string, error) {
	c.log.Debugw("Fetching product page", "url", pageURL)

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", &domain.FetchError{URL: pageURL, Err: fmt.Errorf("rate limiter error: %w", err)}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(pageURL), nil)
	if err != nil {
		return "", &domain.FetchError{URL: pageURL, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warnw("Relay request failed", "url", pageURL, "error", err)
		return "", &domain.FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warnw("Relay returned non-success status", "url", pageURL, "status", resp.StatusCode)
		return "", &domain.FetchError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	body := io.LimitReader(resp.Body, maxPageSize)
	decoded, err := charset.NewReader(body, resp.Header.Get("Content-Type"))
	if err != nil {
		// Unknown charset label; read the bytes as they are
		decoded = body
	}

	page, err := io.ReadAll(decoded)
	if err != nil {
		return "", &domain.FetchError{URL: pageURL, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	c.log.Debugw("Fetched product page", "url", pageURL, "bytes", len(page))
	return string(page), nil
}
