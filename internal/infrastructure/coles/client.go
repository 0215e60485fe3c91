package coles

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/trolley/backend/internal/domain"
	"golang.org/x/time/rate"
)

const (
	// StoreURL is the public Coles site.
	StoreURL = "https://www.coles.com.au"

	// DefaultBaseURL is the unofficial product search endpoint.
	DefaultBaseURL = StoreURL + "/api/products/search"

	// DefaultStoreID selects the store whose pricing the API reports when
	// the caller does not name one.
	DefaultStoreID = "0584"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	defaultTimeout = 15 * time.Second
)

// Client fetches product search results from the Coles API.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	defaultStoreID string
	rateLimiter    *rate.Limiter
}

// NewClient creates a Coles search client. Empty baseURL and storeID select
// the public endpoint and the default store; a zero timeout selects a
// conservative default.
func NewClient(baseURL, storeID string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if storeID == "" {
		storeID = DefaultStoreID
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:        baseURL,
		defaultStoreID: storeID,
		rateLimiter:    rate.NewLimiter(rate.Limit(1), 5),
	}
}

// Info returns metadata about the Coles backend.
func (c *Client) Info() domain.StoreInfo {
	return domain.StoreInfo{
		Name:   domain.StoreColes,
		URL:    StoreURL,
		APIURL: DefaultBaseURL,
	}
}

// searchURL builds the request URL. Unlike Woolworths, this endpoint takes a
// standard percent-encoded query parameter plus the store identifier.
func (c *Client) searchURL(query, storeID string) string {
	params := url.Values{}
	params.Add("q", query)
	params.Add("storeId", storeID)
	return fmt.Sprintf("%s?%s", c.baseURL, params.Encode())
}

// Search fetches products for the query in the default store.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Product, error) {
	return c.SearchInStore(ctx, query, c.defaultStoreID)
}

// SearchInStore fetches products for the query in a specific store.
func (c *Client) SearchInStore(ctx context.Context, query, storeID string) ([]domain.Product, error) {
	if storeID == "" {
		storeID = c.defaultStoreID
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(query, storeID), nil)
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
		log.Printf("[coles] API error - status: %d, query: %q, store: %s", resp.StatusCode, query, storeID)
		return nil, &domain.UpstreamError{
			Store:      domain.StoreColes,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	products, err := extractProducts(body)
	if err != nil {
		return nil, err
	}

	log.Printf("[coles] Found %d products for query: %q (store %s)", len(products), query, storeID)
	return products, nil
}
