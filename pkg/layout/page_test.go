package layout

import (
	"testing"

	"github.com/matzehuels/quotefit/pkg/quote"
)

func TestBlockGeometry(t *testing.T) {
	b := Block{Left: 22, Right: 188, Top: 10, Bottom: 24}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"Width", b.Width(), 166},
		{"Height", b.Height(), 14},
		{"CenterX", b.CenterX(), 105},
		{"CenterY", b.CenterY(), 17},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestResultPage(t *testing.T) {
	tests := []struct {
		name    string
		content quote.Content
	}{
		{"empty", quote.Content{}},
		{"few items", quote.Content{ItemCount: 3, HasGuarantee: true}},
		{"compressed", quote.Content{ItemCount: 40, HasDiscount: true, HasDeliveryTerm: true, HasInvoiceToCustomers: true}},
		{"emergency", quote.Content{ItemCount: 120}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Solve(tt.content)
			p := res.Page()

			if p.Width != PageWidth || p.Height != PageHeight {
				t.Errorf("page = %vx%v, want %vx%v", p.Width, p.Height, PageWidth, PageHeight)
			}

			counts := make(map[BlockKind]int)
			prevBottom := 0.0
			for _, b := range p.Blocks {
				counts[b.Kind]++
				if b.Top < prevBottom-eps {
					t.Errorf("block %s overlaps previous (top %v < %v)", b.ID, b.Top, prevBottom)
				}
				if b.Height() <= 0 {
					t.Errorf("block %s height = %v, want > 0", b.ID, b.Height())
				}
				prevBottom = b.Bottom
			}

			if counts[KindItem] != tt.content.ItemCount {
				t.Errorf("item blocks = %d, want %d", counts[KindItem], tt.content.ItemCount)
			}
			if counts[KindTerms] != tt.content.TermsCount() {
				t.Errorf("terms blocks = %d, want %d", counts[KindTerms], tt.content.TermsCount())
			}

			got := p.ContentBottom + res.Budget.Current(MarginBottom)
			if !approx(got, res.TotalHeight) {
				t.Errorf("ContentBottom + MarginBottom = %v, want TotalHeight %v", got, res.TotalHeight)
			}
			if fits := p.ContentBottom <= p.Limit+eps; fits != res.Fits {
				t.Errorf("page fits = %v, Result.Fits = %v", fits, res.Fits)
			}
		})
	}
}

func TestResultPageTermLabels(t *testing.T) {
	res := Solve(quote.Content{HasGuarantee: true, HasInvoiceToCustomers: true})

	var labels []string
	for _, b := range res.Page().Blocks {
		if b.Kind == KindTerms {
			labels = append(labels, b.Label)
		}
	}
	if len(labels) != 2 || labels[0] != "Invoice to" || labels[1] != "Guarantee" {
		t.Errorf("terms labels = %v, want [Invoice to Guarantee]", labels)
	}
}
