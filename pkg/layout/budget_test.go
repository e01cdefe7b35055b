package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/quotefit/pkg/quote"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func TestNewBudgetDefaults(t *testing.T) {
	b := NewBudget(quote.Content{ItemCount: 5})

	for _, id := range Elements() {
		e := b.Get(id)
		if e.Current != e.Default {
			t.Errorf("%s: Current = %v, want Default %v", id, e.Current, e.Default)
		}
		if e.Min >= e.Default {
			t.Errorf("%s: Min %v >= Default %v", id, e.Min, e.Default)
		}
		if e.Min <= 0 {
			t.Errorf("%s: Min = %v, want > 0", id, e.Min)
		}
	}

	if b.ItemCount != 5 {
		t.Errorf("ItemCount = %d, want 5", b.ItemCount)
	}
	if b.TermsCount != 0 {
		t.Errorf("TermsCount = %d, want 0", b.TermsCount)
	}
}

func TestNewBudgetTotals(t *testing.T) {
	tests := []struct {
		name     string
		discount bool
		def, min float64
	}{
		{"without discount", false, 10, 7},
		{"with discount", true, 16, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewBudget(quote.Content{HasDiscount: tt.discount}).Get(TotalsHeight)
			if e.Default != tt.def || e.Min != tt.min {
				t.Errorf("TotalsHeight = {%v, %v}, want {%v, %v}", e.Default, e.Min, tt.def, tt.min)
			}
		})
	}
}

func TestNewBudgetNegativeItems(t *testing.T) {
	b := NewBudget(quote.Content{ItemCount: -7})
	if b.ItemCount != 0 {
		t.Errorf("ItemCount = %d, want 0", b.ItemCount)
	}
}

func TestBudgetTotalHeight(t *testing.T) {
	tests := []struct {
		name    string
		content quote.Content
		want    float64
	}{
		{"empty", quote.Content{}, 118},
		{"discount", quote.Content{HasDiscount: true}, 124},
		{"ten items", quote.Content{ItemCount: 10}, 173},
		{"two terms", quote.Content{HasGuarantee: true, HasDeliveryTerm: true}, 158},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewBudget(tt.content).TotalHeight(); !approx(got, tt.want) {
				t.Errorf("TotalHeight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBudgetTotalHeightIgnoresHorizontal(t *testing.T) {
	b := NewBudget(quote.Content{})
	before := b.TotalHeight()
	b.Elements[MarginSide].Current = 1
	if got := b.TotalHeight(); got != before {
		t.Errorf("TotalHeight() changed with MarginSide: %v -> %v", before, got)
	}
}

func TestBudgetCompressibility(t *testing.T) {
	tests := []struct {
		name    string
		content quote.Content
		want    float64
	}{
		{"empty", quote.Content{}, 53},
		{"discount", quote.Content{HasDiscount: true}, 56},
		{"forty items", quote.Content{ItemCount: 40}, 153},
		{"all terms", quote.Content{
			HasDeliveryTerm: true, HasPaymentConditions: true,
			HasGuarantee: true, HasInvoiceToCustomers: true,
		}, 85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewBudget(tt.content).Compressibility(); !approx(got, tt.want) {
				t.Errorf("Compressibility() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBudgetWeight(t *testing.T) {
	b := NewBudget(quote.Content{ItemCount: 12, HasGuarantee: true})
	tests := []struct {
		id   ElementID
		want float64
	}{
		{ServiceItemHeight, 12},
		{TermsSectionHeight, 1},
		{FooterHeight, 1},
		{MarginSide, 1},
	}
	for _, tt := range tests {
		if got := b.Weight(tt.id); got != tt.want {
			t.Errorf("Weight(%s) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestElementIDString(t *testing.T) {
	if got := ServiceItemHeight.String(); got != "serviceItemHeight" {
		t.Errorf("String() = %q, want %q", got, "serviceItemHeight")
	}
	if got := ElementID(99).String(); got != "unknown" {
		t.Errorf("String() = %q, want %q", got, "unknown")
	}
	for _, id := range Elements() {
		if id.String() == "" {
			t.Errorf("element %d has no name", id)
		}
	}
}

func TestElementAxis(t *testing.T) {
	for _, id := range Elements() {
		want := Vertical
		if id == MarginSide {
			want = Horizontal
		}
		if got := id.Axis(); got != want {
			t.Errorf("%s.Axis() = %v, want %v", id, got, want)
		}
	}
}
