package woolworths

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/trolley/backend/internal/domain"
	"golang.org/x/time/rate"
)

const (
	// StoreURL is the public Woolworths site.
	StoreURL = "https://www.woolworths.com.au"

	// DefaultBaseURL is the unofficial search endpoint used by the site's own UI.
	DefaultBaseURL = StoreURL + "/apis/ui/Search/products"

	// userAgent mimics a browser; the endpoint rejects obvious bot agents.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	defaultTimeout = 15 * time.Second
)

// Client fetches product search results from the Woolworths UI API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a Woolworths search client. An empty baseURL selects the
// public endpoint; a zero timeout selects a conservative default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	// Polite ceiling for an unofficial endpoint: one request per second
	// sustained, short bursts allowed.
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// Info returns metadata about the Woolworths backend.
func (c *Client) Info() domain.StoreInfo {
	return domain.StoreInfo{
		Name:   domain.StoreWoolworths,
		URL:    StoreURL,
		APIURL: DefaultBaseURL,
	}
}

// searchURL builds the request URL for a query. The endpoint expects the
// search term with spaces joined by plus signs rather than percent-encoded.
func (c *Client) searchURL(query string) string {
	term := strings.ReplaceAll(query, " ", "+")
	return fmt.Sprintf("%s?searchTerm=%s", c.baseURL, term)
}

// Search fetches and normalizes products matching the query.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Product, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := c.searchURL(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[woolworths] API error - status: %d, query: %q", resp.StatusCode, query)
		return nil, &domain.UpstreamError{
			Store:      domain.StoreWoolworths,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	products, err := extractProducts(body)
	if err != nil {
		return nil, err
	}

	log.Printf("[woolworths] Found %d products for query: %q", len(products), query)
	return products, nil
}
