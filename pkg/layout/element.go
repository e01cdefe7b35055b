package layout

// ElementID names one compressible dimension of the page.
type ElementID int

const (
	MarginTop ElementID = iota
	MarginBottom
	MarginSide
	LogoHeight
	HeaderMarginBottom
	HeaderLineMargin
	TitleHeight
	TitleMarginBottom
	CustomerHeight
	CustomerMarginBottom
	ServicesTitle
	ServicesTitleMargin
	ServiceItemHeight
	TotalsMarginTop
	TotalsHeight
	TermsSectionHeight
	FooterHeight

	NumElements int = iota
)

var elementNames = [NumElements]string{
	MarginTop:            "marginTop",
	MarginBottom:         "marginBottom",
	MarginSide:           "marginSide",
	LogoHeight:           "logoHeight",
	HeaderMarginBottom:   "headerMarginBottom",
	HeaderLineMargin:     "headerLineMargin",
	TitleHeight:          "titleHeight",
	TitleMarginBottom:    "titleMarginBottom",
	CustomerHeight:       "customerHeight",
	CustomerMarginBottom: "customerMarginBottom",
	ServicesTitle:        "servicesTitle",
	ServicesTitleMargin:  "servicesTitleMargin",
	ServiceItemHeight:    "serviceItemHeight",
	TotalsMarginTop:      "totalsMarginTop",
	TotalsHeight:         "totalsHeight",
	TermsSectionHeight:   "termsSectionHeight",
	FooterHeight:         "footerHeight",
}

// String returns the element's camelCase name.
func (id ElementID) String() string {
	if id < 0 || int(id) >= NumElements {
		return "unknown"
	}
	return elementNames[id]
}

// Elements returns every element ID in page order.
func Elements() []ElementID {
	ids := make([]ElementID, NumElements)
	for i := range ids {
		ids[i] = ElementID(i)
	}
	return ids
}

// Axis is the direction an element occupies on the page.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Axis reports the direction of the element. Only vertical elements count
// toward the page height; every element is compressible.
func (id ElementID) Axis() Axis {
	if id == MarginSide {
		return Horizontal
	}
	return Vertical
}

// Element is a single compressible dimension in millimeters.
type Element struct {
	Default float64 `json:"default"`
	Min     float64 `json:"min"`
	Current float64 `json:"current"`
}

// Compressibility returns how far the element can shrink from its default.
func (e Element) Compressibility() float64 { return e.Default - e.Min }

// InBounds reports whether Min <= Current <= Default.
func (e Element) InBounds() bool { return e.Min <= e.Current && e.Current <= e.Default }

// compress moves Current from Default toward Min by ratio (0 to 1).
func (e *Element) compress(ratio float64) {
	e.Current = e.Default - e.Compressibility()*ratio
}
