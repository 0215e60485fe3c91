package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/trolley/backend/internal/domain"
)

// recordDelimiter separates rendered product blocks.
const recordDelimiter = "\n---\n"

// RenderProducts formats records for human display: four labeled lines per
// product, blocks separated by a delimiter line. Absent prices and unknown
// units render as N/A.
func RenderProducts(products []domain.Product) string {
	blocks := make([]string, 0, len(products))
	for _, p := range products {
		price := "N/A"
		if p.Price != nil {
			price = fmt.Sprintf("$%.2f", *p.Price)
		}
		unit := p.Unit
		if unit == domain.UnitUnknown {
			unit = "N/A"
		}
		blocks = append(blocks, fmt.Sprintf("Name: %s\nPrice: %s\nUnit: %s\nStore: %s", p.Name, price, unit, p.Store))
	}
	return strings.Join(blocks, recordDelimiter)
}

// RenderNoProducts formats the empty-result outcome, which is distinct from
// an error.
func RenderNoProducts(storeName, query string) string {
	return fmt.Sprintf("No products found at %s for '%s'.", storeName, query)
}

// RenderError formats a failed search. Upstream HTTP failures additionally
// carry the raw response body verbatim for diagnostics.
func RenderError(storeName string, err error) string {
	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		return fmt.Sprintf("Error fetching %s products: %s\nResponse: %s", storeName, upstream.Error(), upstream.Body)
	}
	return fmt.Sprintf("Error fetching %s products: %s", storeName, err)
}
