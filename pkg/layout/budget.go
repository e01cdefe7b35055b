package layout

import (
	"github.com/matzehuels/quotefit/pkg/quote"
)

// Page geometry in millimeters.
const (
	PageHeight      = 297.0
	PageWidth       = 210.0
	SafetyBuffer    = 12.0
	AvailableHeight = PageHeight - SafetyBuffer

	// SeparatorHeight is the fixed header rule under the logo.
	SeparatorHeight = 1.0
)

// Budget is the working set of page elements for one quote, plus the two
// counts that scale the per-unit elements.
type Budget struct {
	Elements    [NumElements]Element `json:"elements"`
	ItemCount   int                  `json:"item_count"`
	TermsCount  int                  `json:"terms_count"`
	HasDiscount bool                 `json:"has_discount"`
}

// NewBudget declares every element for the given content with Current set to
// Default. A negative item count is treated as zero.
func NewBudget(c quote.Content) Budget {
	b := Budget{
		ItemCount:   max(c.ItemCount, 0),
		TermsCount:  c.TermsCount(),
		HasDiscount: c.HasDiscount,
	}

	set := func(id ElementID, def, floor float64) {
		b.Elements[id] = Element{Default: def, Min: floor, Current: def}
	}
	set(MarginTop, 10, 4)
	set(MarginBottom, 10, 4)
	set(MarginSide, 22, 15)
	set(LogoHeight, 14, 10)
	set(HeaderMarginBottom, 2, 1)
	set(HeaderLineMargin, 4, 2)
	set(TitleHeight, 6, 5)
	set(TitleMarginBottom, 3, 1)
	set(CustomerHeight, 28, 18)
	set(CustomerMarginBottom, 4, 1)
	set(ServicesTitle, 5, 4)
	set(ServicesTitleMargin, 2, 1)
	set(ServiceItemHeight, 5.5, 3.0)
	set(TotalsMarginTop, 3, 1)
	if c.HasDiscount {
		set(TotalsHeight, 16, 10)
	} else {
		set(TotalsHeight, 10, 7)
	}
	set(TermsSectionHeight, 20, 12)
	set(FooterHeight, 16, 12)
	return b
}

// Get returns the element with the given ID.
func (b Budget) Get(id ElementID) Element { return b.Elements[id] }

// Current returns the working value of the element with the given ID.
func (b Budget) Current(id ElementID) float64 { return b.Elements[id].Current }

// Weight returns how many times an element appears on the page: the item
// count for service rows, the terms count for terms sections, 1 otherwise.
func (b Budget) Weight(id ElementID) float64 {
	switch id {
	case ServiceItemHeight:
		return float64(b.ItemCount)
	case TermsSectionHeight:
		return float64(b.TermsCount)
	}
	return 1
}

// TotalHeight returns the page height required at the current values.
func (b Budget) TotalHeight() float64 {
	total := SeparatorHeight
	for id := range b.Elements {
		eid := ElementID(id)
		if eid.Axis() != Vertical {
			continue
		}
		total += b.Elements[id].Current * b.Weight(eid)
	}
	return total
}

// Compressibility returns the total amount every element can shrink by,
// with per-unit elements counted once per occurrence.
func (b Budget) Compressibility() float64 {
	var sum float64
	for id := range b.Elements {
		sum += b.Elements[id].Compressibility() * b.Weight(ElementID(id))
	}
	return sum
}

// OutOfBounds returns the elements whose Current lies outside [Min, Default].
func (b Budget) OutOfBounds() []ElementID {
	var out []ElementID
	for id := range b.Elements {
		if !b.Elements[id].InBounds() {
			out = append(out, ElementID(id))
		}
	}
	return out
}

func (b *Budget) compressAll(ratio float64) {
	for id := range b.Elements {
		b.Elements[id].compress(ratio)
	}
}

func (b *Budget) snapToMin() {
	for id := range b.Elements {
		b.Elements[id].Current = b.Elements[id].Min
	}
}
