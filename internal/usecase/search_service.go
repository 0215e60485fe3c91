package usecase

import (
	"context"
	"fmt"

	"github.com/trolley/backend/internal/domain"
)

// DefaultLimit is the result cap applied when a caller does not supply one.
const DefaultLimit = 10

// SearchService orchestrates product searches across both supermarket
// backends: dispatch to the client, truncate, and hand back a per-call
// result. The service holds no state beyond its clients, so concurrent
// searches never contend with each other.
type SearchService struct {
	woolworths domain.StoreClient
	coles      domain.ColesClient
}

// NewSearchService creates a search service with its backend clients.
func NewSearchService(woolworths domain.StoreClient, coles domain.ColesClient) *SearchService {
	return &SearchService{
		woolworths: woolworths,
		coles:      coles,
	}
}

// SearchWoolworths searches Woolworths and returns at most limit records.
func (s *SearchService) SearchWoolworths(ctx context.Context, query string, limit int) (*domain.SearchResult, error) {
	if query == "" {
		return nil, domain.ErrInvalidRequest
	}

	products, err := s.woolworths.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("woolworths search: %w", err)
	}

	return newResult(query, Limit(products, limit)), nil
}

// SearchColes searches Coles and returns at most limit records. An empty
// storeID selects the client's default store.
func (s *SearchService) SearchColes(ctx context.Context, query, storeID string, limit int) (*domain.SearchResult, error) {
	if query == "" {
		return nil, domain.ErrInvalidRequest
	}

	products, err := s.coles.SearchInStore(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("coles search: %w", err)
	}

	return newResult(query, Limit(products, limit)), nil
}

// Stores describes both backends.
func (s *SearchService) Stores() []domain.StoreInfo {
	return []domain.StoreInfo{
		s.woolworths.Info(),
		s.coles.Info(),
	}
}

func newResult(query string, products []domain.Product) *domain.SearchResult {
	return &domain.SearchResult{
		Query:    query,
		Products: products,
		Count:    len(products),
	}
}

// Limit returns the first min(limit, len) products in source order. A
// non-positive limit yields an empty list.
func Limit(products []domain.Product, limit int) []domain.Product {
	if limit <= 0 {
		return []domain.Product{}
	}
	if limit > len(products) {
		limit = len(products)
	}
	return products[:limit]
}
