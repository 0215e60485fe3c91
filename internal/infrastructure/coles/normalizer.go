package coles

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/trolley/backend/internal/domain"
)

// The Coles payload already carries records in the canonical shape under a
// flat products key, so normalization here is a pass-through with light
// validation. There is deliberately no unit inference and no multi-field
// price fallback: the two chains' raw payloads genuinely differ, and this
// asymmetry with the Woolworths normalizer is preserved rather than papered
// over with guessed fallbacks.

type searchResponse struct {
	Products []rawProduct `json:"products"`
}

type rawProduct struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
	Unit  string   `json:"unit"`
}

// extractProducts validates the flat product list into canonical records.
func extractProducts(body []byte) ([]domain.Product, error) {
	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	products := make([]domain.Product, 0, len(resp.Products))
	for _, p := range resp.Products {
		products = append(products, domain.Product{
			Name:  p.Name,
			Price: validPrice(p.Price),
			Unit:  validUnit(p.Unit),
			Store: domain.StoreColes,
		})
	}
	return products, nil
}

// validPrice drops amounts that break the record invariant, which requires
// a non-negative finite number when a price is present.
func validPrice(price *float64) *float64 {
	if price == nil {
		return nil
	}
	if *price < 0 || math.IsNaN(*price) || math.IsInf(*price, 0) {
		return nil
	}
	return price
}

// validUnit keeps only labels from the unit vocabulary; anything else is
// reported as unknown rather than leaking source text into records.
func validUnit(unit string) string {
	if domain.KnownUnit(unit) {
		return unit
	}
	return domain.UnitUnknown
}
