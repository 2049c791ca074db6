package dictionary

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hypermodeinc/ship-hypercategories/internal/cache"
)

// Client checks words against the Free Dictionary API. Lookups are stable, so
// results are memoized in redis when a cache is configured.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      *cache.Client
	cacheTTL   time.Duration
}

func NewClient(baseURL string, c *cache.Client, cacheTTL time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		cache:      c,
		cacheTTL:   cacheTTL,
	}
}

// IsWord reports whether the input is a recognized English word. Only the
// first whitespace-separated token is looked up. A 404 means "not a word";
// any other non-200 status or transport failure is an error, never a verdict.
func (c *Client) IsWord(ctx context.Context, input string) (bool, error) {
	word := strings.TrimSpace(strings.SplitN(strings.TrimSpace(input), " ", 2)[0])
	if word == "" {
		return false, nil
	}

	if c.cache != nil {
		if val, err := c.cache.Get(ctx, cacheKey(word)); err == nil {
			return val == "1", nil
		}
	}

	reqURL := c.baseURL + "/" + url.PathEscape(word)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("dictionary request failed: %w", err)
	}
	defer resp.Body.Close()

	var isWord bool
	switch resp.StatusCode {
	case http.StatusOK:
		isWord = true
	case http.StatusNotFound:
		isWord = false
	default:
		return false, fmt.Errorf("dictionary returned status %d for %q", resp.StatusCode, word)
	}

	if c.cache != nil {
		val := "0"
		if isWord {
			val = "1"
		}
		// Cache write failures are not worth failing the lookup over.
		_ = c.cache.Set(ctx, cacheKey(word), val, c.cacheTTL)
	}

	return isWord, nil
}

func cacheKey(word string) string {
	return "dict:" + word
}
