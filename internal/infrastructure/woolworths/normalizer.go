package woolworths

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/trolley/backend/internal/domain"
)

// searchResponse is the top-level search payload. The outer Products key
// holds category groups, not products; each group is classified before
// iteration because the API mixes two shapes at that level.
type searchResponse struct {
	Products []json.RawMessage `json:"Products"`
}

// rawProduct carries the subset of product fields the normalizer reads.
// Price fields stay raw because the API serves them as numbers or, on some
// promotion tiles, as price strings.
type rawProduct struct {
	DisplayName  string          `json:"DisplayName"`
	Name         string          `json:"Name"`
	Price        json.RawMessage `json:"Price"`
	InstorePrice json.RawMessage `json:"InstorePrice"`
	WasPrice     json.RawMessage `json:"WasPrice"`
	PackageSize  string          `json:"PackageSize"`
	CupString    string          `json:"CupString"`
	CupMeasure   string          `json:"CupMeasure"`
	Unit         string          `json:"Unit"`
}

// categoryKind tags the shape of one entry under the outer Products key.
type categoryKind int

const (
	// categorySkip marks entries matching neither known shape.
	categorySkip categoryKind = iota
	// categoryProductList marks a group carrying a nested Products list.
	categoryProductList
	// categorySingleProduct marks a group that is itself a product, e.g. a
	// direct search hit or promotion tile with a Stockcode at group level.
	categorySingleProduct
)

// category is the classified form of one group entry.
type category struct {
	kind     categoryKind
	products []rawProduct
}

// categoryProbe checks which keys a group entry carries without committing
// to a shape. RawMessage stays nil when the key is absent.
type categoryProbe struct {
	Products  json.RawMessage `json:"Products"`
	Stockcode json.RawMessage `json:"Stockcode"`
}

// classifyCategory resolves a raw group entry into a tagged category.
// A group with a nested Products list yields categoryProductList; a group
// without that key but with a Stockcode is treated as a single-element
// product list; anything else is skipped, which is not an error.
func classifyCategory(raw json.RawMessage) (category, error) {
	var probe categoryProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return category{}, fmt.Errorf("unexpected category shape: %w", err)
	}

	if isJSONArray(probe.Products) {
		var list []rawProduct
		if err := json.Unmarshal(probe.Products, &list); err != nil {
			return category{}, fmt.Errorf("unexpected product list shape: %w", err)
		}
		return category{kind: categoryProductList, products: list}, nil
	}

	if probe.Products == nil && probe.Stockcode != nil {
		var single rawProduct
		if err := json.Unmarshal(raw, &single); err != nil {
			return category{}, fmt.Errorf("unexpected product shape: %w", err)
		}
		return category{kind: categorySingleProduct, products: []rawProduct{single}}, nil
	}

	return category{kind: categorySkip}, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "[")
}

// extractProducts flattens a search response body into canonical records.
func extractProducts(body []byte) ([]domain.Product, error) {
	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	products := []domain.Product{}
	for _, raw := range resp.Products {
		cat, err := classifyCategory(raw)
		if err != nil {
			return nil, err
		}
		if cat.kind == categorySkip {
			continue
		}
		for _, p := range cat.products {
			products = append(products, normalizeProduct(p))
		}
	}
	return products, nil
}

// normalizeProduct maps one raw product into the canonical record, applying
// the per-field fallback rules.
func normalizeProduct(p rawProduct) domain.Product {
	name := p.DisplayName
	if name == "" {
		name = p.Name
	}

	return domain.Product{
		Name:  name,
		Price: resolvePrice(p),
		Unit:  inferUnit(p),
		Store: domain.StoreWoolworths,
	}
}

// resolvePrice returns the first usable amount of Price, InstorePrice and
// WasPrice, in that order. Missing and null fields are passed over.
func resolvePrice(p rawProduct) *float64 {
	for _, raw := range []json.RawMessage{p.Price, p.InstorePrice, p.WasPrice} {
		if amount := priceValue(raw); amount != nil {
			return amount
		}
	}
	return nil
}

// priceTextPattern pulls a decimal amount out of price strings like "$2.50".
var priceTextPattern = regexp.MustCompile(`(\d+\.\d+)`)

// priceValue coerces one raw price field into an amount. Numbers are taken
// as-is; strings are scanned for a decimal amount; null, absent and
// unparseable values yield nil so the fallback chain continues.
func priceValue(raw json.RawMessage) *float64 {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil
		}
		match := priceTextPattern.FindString(text)
		if match == "" {
			return nil
		}
		amount, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return nil
		}
		return &amount
	}

	var amount float64
	if err := json.Unmarshal(raw, &amount); err != nil {
		return nil
	}
	return &amount
}
