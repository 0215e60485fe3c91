package woolworths

import (
	"strings"

	"github.com/trolley/backend/internal/domain"
)

// The API has no single reliable unit field, so the unit of sale is inferred
// from overlapping text fields. Each tier is a pure resolver; tiers run in
// declaration order and the first non-empty label wins. Reordering changes
// output for real inputs: "kg" must be tested before "g" because it contains
// it, and "l" must exclude "ml" for the same reason.
type unitTier func(rawProduct) string

var unitTiers = []unitTier{
	func(p rawProduct) string { return unitFromSizeText(p.PackageSize) },
	func(p rawProduct) string { return unitFromCupString(p.CupString) },
	func(p rawProduct) string { return unitFromSizeText(p.CupMeasure) },
	func(p rawProduct) string { return unitFromUnitCode(p.Unit) },
}

// inferUnit resolves a unit label for one product, or UnitUnknown when no
// tier matches.
func inferUnit(p rawProduct) string {
	for _, tier := range unitTiers {
		if unit := tier(p); unit != domain.UnitUnknown {
			return unit
		}
	}
	return domain.UnitUnknown
}

// unitFromSizeText matches package-size style text such as "1kg", "250ml"
// or "Pack of 6" against the unit vocabulary.
func unitFromSizeText(text string) string {
	return matchUnitLadder(strings.ToLower(text), false)
}

// unitFromCupString matches per-unit price text such as "$4.00/1kg" or
// "$2/ea". Only the segment after the last slash names the unit; the leading
// segments carry the amount.
func unitFromCupString(text string) string {
	target := strings.ToLower(text)
	if parts := strings.Split(target, "/"); len(parts) > 1 {
		target = strings.TrimSpace(parts[len(parts)-1])
	}
	return matchUnitLadder(target, true)
}

// unitFromUnitCode resolves the API's own Unit field, which is only trusted
// when it is exactly "each" (any case). Substring matching here would
// misread codes like "EachKilogram" style variants.
func unitFromUnitCode(code string) string {
	if strings.EqualFold(code, domain.UnitEach) {
		return domain.UnitEach
	}
	return domain.UnitUnknown
}

// matchUnitLadder runs the shared substring-priority ladder over lower-cased
// text. allowEaAbbrev additionally recognizes "ea" for "each", which only
// per-unit price strings use.
func matchUnitLadder(text string, allowEaAbbrev bool) string {
	switch {
	case text == "":
		return domain.UnitUnknown
	case strings.Contains(text, "kg"):
		return domain.UnitKilogram
	case strings.Contains(text, "g"):
		return domain.UnitGram
	case strings.Contains(text, "l") && !strings.Contains(text, "ml"):
		return domain.UnitLitre
	case strings.Contains(text, "ml"):
		return domain.UnitMillilitre
	case strings.Contains(text, "each"):
		return domain.UnitEach
	case allowEaAbbrev && strings.Contains(text, "ea"):
		return domain.UnitEach
	case strings.Contains(text, "pack"), strings.Contains(text, "pk"):
		return domain.UnitPack
	}
	return domain.UnitUnknown
}
