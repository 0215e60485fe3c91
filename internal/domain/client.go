package domain

import "context"

// StoreClient is the uniform search surface over one supermarket backend.
// Implementations fetch the backend's search endpoint and normalize the
// payload into canonical product records. Every call is independent; there
// is no shared mutable state between concurrent searches.
type StoreClient interface {
	Search(ctx context.Context, query string) ([]Product, error)
	Info() StoreInfo
}

// ColesClient extends StoreClient with per-call store selection. The plain
// Search method uses the configured default store.
type ColesClient interface {
	StoreClient
	SearchInStore(ctx context.Context, query, storeID string) ([]Product, error)
}
