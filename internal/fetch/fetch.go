package fetch

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/parkscout/parkscout/internal/cache"
	"github.com/parkscout/parkscout/internal/logger"
)

const (
	UserAgent = "parkscout-cli/1.0 (github.com/parkscout/parkscout)"
	Timeout   = 30 * time.Second
)

// ErrFetchFailed wraps any network or HTTP-status failure during a cache
// miss. Callers can match it with errors.Is; a fetch that fails this way left
// nothing in the cache and is safe to retry.
var ErrFetchFailed = errors.New("fetch failed")

// Client performs cached HTTP GETs. All outbound traffic from the scrapers
// and the places client goes through one of these.
type Client struct {
	http  *resty.Client
	cache *cache.Cache
}

// New creates a Client that reads through and writes through the given cache.
func New(store *cache.Cache) *Client {
	return &Client{
		http: resty.New().
			SetTimeout(Timeout).
			SetHeader("User-Agent", UserAgent),
		cache: store,
	}
}

// Page fetches a page body as text. The request identity is the URL itself.
func (c *Client) Page(url string) (string, error) {
	if raw, ok := c.cache.Get(url); ok {
		var body string
		if err := json.Unmarshal(raw, &body); err == nil {
			logger.Debug("using cache", logger.Fields{"url": url})
			return body, nil
		}
		// Entry is not a JSON string; treat as a miss and refetch.
	}

	logger.Debug("fetching", logger.Fields{"url": url})
	resp, err := c.http.R().Get(url)
	if err != nil {
		return "", fmt.Errorf("%w: GET %s: %v", ErrFetchFailed, url, err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("%w: GET %s: status %d", ErrFetchFailed, url, resp.StatusCode())
	}

	body := resp.String()
	raw, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encoding cache entry: %w", err)
	}
	if err := c.cache.Put(url, raw); err != nil {
		return "", fmt.Errorf("caching %s: %w", url, err)
	}
	return body, nil
}

// JSON fetches a JSON document with query parameters. The request identity is
// derived from the base URL and the full parameter set, independent of
// parameter order.
func (c *Client) JSON(baseURL string, params map[string]string) (json.RawMessage, error) {
	key := cache.Key(baseURL, params)
	if raw, ok := c.cache.Get(key); ok {
		logger.Debug("using cache", logger.Fields{"url": baseURL})
		return raw, nil
	}

	logger.Debug("fetching", logger.Fields{"url": baseURL})
	resp, err := c.http.R().SetQueryParams(params).Get(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrFetchFailed, baseURL, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrFetchFailed, baseURL, resp.StatusCode())
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: GET %s: response is not valid JSON", ErrFetchFailed, baseURL)
	}
	raw := json.RawMessage(body)
	if err := c.cache.Put(key, raw); err != nil {
		return nil, fmt.Errorf("caching %s: %w", baseURL, err)
	}
	return raw, nil
}
