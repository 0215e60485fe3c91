package woolworths

import (
	"testing"

	"github.com/trolley/backend/internal/domain"
)

func TestInferUnit(t *testing.T) {
	tests := []struct {
		name    string
		product rawProduct
		want    string
	}{
		{
			name:    "package size kilograms",
			product: rawProduct{PackageSize: "1kg"},
			want:    domain.UnitKilogram,
		},
		{
			name:    "package size grams",
			product: rawProduct{PackageSize: "500g"},
			want:    domain.UnitGram,
		},
		{
			name:    "package size litres",
			product: rawProduct{PackageSize: "2L"},
			want:    domain.UnitLitre,
		},
		{
			name:    "package size millilitres",
			product: rawProduct{PackageSize: "250ml"},
			want:    domain.UnitMillilitre,
		},
		{
			name:    "package size each",
			product: rawProduct{PackageSize: "Each"},
			want:    domain.UnitEach,
		},
		{
			name:    "package size pack",
			product: rawProduct{PackageSize: "Pack of 6"},
			want:    domain.UnitPack,
		},
		{
			name:    "package size pk abbreviation",
			product: rawProduct{PackageSize: "6pk"},
			want:    domain.UnitPack,
		},
		{
			name: "package size wins over cup string",
			product: rawProduct{
				PackageSize: "1kg",
				CupString:   "$2.00/100g",
			},
			want: domain.UnitKilogram,
		},
		{
			name:    "cup string compound takes trailing segment",
			product: rawProduct{CupString: "$4.00/1kg"},
			want:    domain.UnitKilogram,
		},
		{
			name:    "cup string ea abbreviation",
			product: rawProduct{CupString: "$2/ea"},
			want:    domain.UnitEach,
		},
		{
			name:    "cup string without delimiter",
			product: rawProduct{CupString: "250ml"},
			want:    domain.UnitMillilitre,
		},
		{
			name:    "cup measure fallback",
			product: rawProduct{CupMeasure: "100g"},
			want:    domain.UnitGram,
		},
		{
			name:    "unit code exact match",
			product: rawProduct{Unit: "Each"},
			want:    domain.UnitEach,
		},
		{
			name:    "unit code substring does not match",
			product: rawProduct{Unit: "EachPack"},
			want:    domain.UnitUnknown,
		},
		{
			name:    "unit code other values ignored",
			product: rawProduct{Unit: "Kg"},
			want:    domain.UnitUnknown,
		},
		{
			name:    "all fields empty",
			product: rawProduct{},
			want:    domain.UnitUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inferUnit(tt.product)
			if got != tt.want {
				t.Errorf("inferUnit() = %q, want %q", got, tt.want)
			}
		})
	}
}

// The substring ladder has deliberate exclusions: "kg" contains "g" and
// "ml" contains "l", so priority order is load-bearing.
func TestMatchUnitLadderExclusions(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"1kg", domain.UnitKilogram},
		{"900g", domain.UnitGram},
		{"1.5l", domain.UnitLitre},
		{"600ml", domain.UnitMillilitre},
		{"", domain.UnitUnknown},
		{"bunch", domain.UnitUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := matchUnitLadder(tt.text, false)
			if got != tt.want {
				t.Errorf("matchUnitLadder(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestUnitFromCupString(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"price per kilogram", "$4.00/1kg", domain.UnitKilogram},
		{"price per each abbreviated", "$2/ea", domain.UnitEach},
		{"price per each full", "$3.50/each", domain.UnitEach},
		{"multiple slashes use last segment", "2 for $5/$2.50/100g", domain.UnitGram},
		{"empty", "", domain.UnitUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := unitFromCupString(tt.text)
			if got != tt.want {
				t.Errorf("unitFromCupString(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
