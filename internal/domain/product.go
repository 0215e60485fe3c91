package domain

// Store identifiers, used as the "store" field on every product record
const (
	StoreWoolworths = "woolworths"
	StoreColes      = "coles"
)

// Unit-of-sale vocabulary. Every product carries exactly one of these;
// UnitUnknown means no unit could be inferred from the source payload.
const (
	UnitKilogram   = "kg"
	UnitGram       = "g"
	UnitLitre      = "L"
	UnitMillilitre = "ml"
	UnitEach       = "each"
	UnitPack       = "pack"
	UnitUnknown    = ""
)

// KnownUnit reports whether u is part of the unit vocabulary.
func KnownUnit(u string) bool {
	switch u {
	case UnitKilogram, UnitGram, UnitLitre, UnitMillilitre, UnitEach, UnitPack, UnitUnknown:
		return true
	}
	return false
}

// Product is the canonical record both supermarket backends normalize into.
// Price is nil when the source payload carried no usable price field.
type Product struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
	Unit  string   `json:"unit"`
	Store string   `json:"store"`
}

// SearchResult is the outcome of one successful search call. It is built
// fresh per invocation and never persisted.
type SearchResult struct {
	Query    string    `json:"query"`
	Products []Product `json:"products"`
	Count    int       `json:"count"`
}

// StoreInfo describes one supermarket backend for discovery endpoints.
type StoreInfo struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	APIURL string `json:"api_url"`
}
