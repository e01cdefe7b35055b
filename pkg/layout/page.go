package layout

import "fmt"

// BlockKind classifies a drawn region of the page.
type BlockKind string

const (
	KindLogo          BlockKind = "logo"
	KindSeparator     BlockKind = "separator"
	KindTitle         BlockKind = "title"
	KindCustomer      BlockKind = "customer"
	KindServicesTitle BlockKind = "services-title"
	KindItem          BlockKind = "item"
	KindTotals        BlockKind = "totals"
	KindTerms         BlockKind = "terms"
	KindFooter        BlockKind = "footer"
)

// Block is a positioned region of the page in millimeters. The origin is the
// top-left corner of the sheet and y grows downward.
type Block struct {
	ID          string
	Kind        BlockKind
	Label       string
	Left, Right float64
	Top, Bottom float64
}

// Width returns the horizontal span of the block.
func (b Block) Width() float64 { return b.Right - b.Left }

// Height returns the vertical span of the block.
func (b Block) Height() float64 { return b.Bottom - b.Top }

// CenterX returns the horizontal center point of the block.
func (b Block) CenterX() float64 { return (b.Left + b.Right) / 2 }

// CenterY returns the vertical center point of the block.
func (b Block) CenterY() float64 { return (b.Top + b.Bottom) / 2 }

// Page is the solved layout placed on an A4 sheet.
type Page struct {
	Width  float64
	Height float64
	// ContentBottom is where the last block ends, bottom margin excluded.
	ContentBottom float64
	// Limit is the y coordinate content must stay above to fit.
	Limit  float64
	Blocks []Block
}

// termLabels names the terms sections in the order they are printed.
var termLabels = []struct {
	label   string
	present func(r Result) bool
}{
	{"Invoice to", func(r Result) bool { return r.Content.HasInvoiceToCustomers }},
	{"Delivery term", func(r Result) bool { return r.Content.HasDeliveryTerm }},
	{"Payment conditions", func(r Result) bool { return r.Content.HasPaymentConditions }},
	{"Guarantee", func(r Result) bool { return r.Content.HasGuarantee }},
}

// Page stacks the solved element heights from the top margin down.
func (r Result) Page() Page {
	b := r.Budget
	cur := b.Current
	left := cur(MarginSide)
	right := PageWidth - left

	p := Page{Width: PageWidth, Height: PageHeight}
	y := cur(MarginTop)

	place := func(id string, kind BlockKind, label string, h float64) {
		p.Blocks = append(p.Blocks, Block{
			ID: id, Kind: kind, Label: label,
			Left: left, Right: right, Top: y, Bottom: y + h,
		})
		y += h
	}
	gap := func(id ElementID) { y += cur(id) }

	place("logo", KindLogo, "Logo", cur(LogoHeight))
	gap(HeaderMarginBottom)
	place("separator", KindSeparator, "", SeparatorHeight)
	gap(HeaderLineMargin)
	place("title", KindTitle, "Quote", cur(TitleHeight))
	gap(TitleMarginBottom)
	place("customer", KindCustomer, "Customer", cur(CustomerHeight))
	gap(CustomerMarginBottom)
	place("services-title", KindServicesTitle, "Services", cur(ServicesTitle))
	gap(ServicesTitleMargin)
	for i := 0; i < b.ItemCount; i++ {
		place(fmt.Sprintf("item-%d", i+1), KindItem, fmt.Sprintf("Service %d", i+1), cur(ServiceItemHeight))
	}
	gap(TotalsMarginTop)
	place("totals", KindTotals, "Totals", cur(TotalsHeight))

	n := 0
	for _, t := range termLabels {
		if n >= b.TermsCount {
			break
		}
		if t.present(r) {
			n++
			place(fmt.Sprintf("terms-%d", n), KindTerms, t.label, cur(TermsSectionHeight))
		}
	}
	place("footer", KindFooter, "Footer", cur(FooterHeight))

	p.ContentBottom = y
	p.Limit = AvailableHeight - cur(MarginBottom)
	return p
}
