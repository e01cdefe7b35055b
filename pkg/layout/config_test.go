package layout

import (
	"testing"

	"github.com/matzehuels/quotefit/pkg/quote"
)

func TestDeriveDefaults(t *testing.T) {
	cfg := Derive(NewBudget(quote.Content{ItemCount: 10}))

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"HeaderFontSize", cfg.HeaderFontSize, 9},
		{"TitleFontSize", cfg.TitleFontSize, 14},
		{"IntroFontSize", cfg.IntroFontSize, 10},
		{"IntroLineHeight", cfg.IntroLineHeight, 1.5},
		{"ServicesTitleFontSize", cfg.ServicesTitleFontSize, 11},
		{"ServiceFontSize", cfg.ServiceFontSize, 10},
		{"ServiceItemPadding", cfg.ServiceItemPadding, 0.8},
		{"TotalsFontSize", cfg.TotalsFontSize, 11},
		{"TotalRowPadding", cfg.TotalRowPadding, 0.75},
		{"TermsTitleFontSize", cfg.TermsTitleFontSize, 10},
		{"TermsContentFontSize", cfg.TermsContentFontSize, 9},
		{"TermsLineHeight", cfg.TermsLineHeight, 1.4},
		{"TermsMarginBottom", cfg.TermsMarginBottom, 2.5},
		{"TermsTitleMargin", cfg.TermsTitleMargin, 1},
		{"FooterFontSize", cfg.FooterFontSize, 8},
		{"FooterPaddingTop", cfg.FooterPaddingTop, 3},
		{"MarginSide", cfg.MarginSide, 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !approx(tt.got, tt.want) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestDerivePaddingFloors(t *testing.T) {
	b := NewBudget(quote.Content{ItemCount: 10})
	b.snapToMin()
	b.Elements[ServiceItemHeight].Current = ItemHardFloor
	cfg := Derive(b)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"ServiceItemPadding", cfg.ServiceItemPadding, 0.2},
		{"TotalRowPadding", cfg.TotalRowPadding, 0.2},
		{"TermsMarginBottom", cfg.TermsMarginBottom, 1.3},
		{"TermsTitleMargin", cfg.TermsTitleMargin, 0.6},
		{"FooterPaddingTop", cfg.FooterPaddingTop, 2},
		{"ServiceFontSize", cfg.ServiceFontSize, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !approx(tt.got, tt.want) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestDeriveTotalsRows(t *testing.T) {
	plain := Derive(NewBudget(quote.Content{}))
	discounted := Derive(NewBudget(quote.Content{HasDiscount: true}))

	// 10 mm over 2 rows and 16 mm over 3 rows are both at least 5 mm per row.
	if plain.TotalsFontSize != 11 || discounted.TotalsFontSize != 11 {
		t.Errorf("TotalsFontSize = %v / %v, want 11 / 11", plain.TotalsFontSize, discounted.TotalsFontSize)
	}
	if !approx(discounted.TotalRowPadding, (16.0/3-3.5)/2) {
		t.Errorf("TotalRowPadding = %v, want %v", discounted.TotalRowPadding, (16.0/3-3.5)/2)
	}
}

func TestConfigFields(t *testing.T) {
	fields := Compute(quote.Content{ItemCount: 3}).Fields()
	if len(fields) < 30 {
		t.Errorf("len(Fields()) = %d, want >= 30", len(fields))
	}

	seen := make(map[string]bool)
	for _, f := range fields {
		if seen[f.Name] {
			t.Errorf("duplicate field %q", f.Name)
		}
		seen[f.Name] = true
		if f.Unit == "" {
			t.Errorf("field %q has no unit", f.Name)
		}
	}
}

func TestTotalsRows(t *testing.T) {
	if got := TotalsRows(true); got != 3 {
		t.Errorf("TotalsRows(true) = %d, want 3", got)
	}
	if got := TotalsRows(false); got != 2 {
		t.Errorf("TotalsRows(false) = %d, want 2", got)
	}
}
