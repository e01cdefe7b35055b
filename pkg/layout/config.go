package layout

// Config is the layout handed to the document renderer. Lengths are in
// millimeters, font sizes in points, line heights are multipliers.
type Config struct {
	MarginTop    float64 `json:"margin_top"`
	MarginBottom float64 `json:"margin_bottom"`
	MarginSide   float64 `json:"margin_side"`

	LogoHeight         float64 `json:"logo_height"`
	HeaderMarginBottom float64 `json:"header_margin_bottom"`
	HeaderLineMargin   float64 `json:"header_line_margin"`
	HeaderFontSize     float64 `json:"header_font_size"`

	TitleHeight       float64 `json:"title_height"`
	TitleFontSize     float64 `json:"title_font_size"`
	TitleMarginBottom float64 `json:"title_margin_bottom"`

	CustomerHeight       float64 `json:"customer_height"`
	IntroFontSize        float64 `json:"intro_font_size"`
	IntroLineHeight      float64 `json:"intro_line_height"`
	CustomerMarginBottom float64 `json:"customer_margin_bottom"`

	ServicesTitleHeight   float64 `json:"services_title_height"`
	ServicesTitleFontSize float64 `json:"services_title_font_size"`
	ServicesTitleMargin   float64 `json:"services_title_margin"`
	ServiceItemHeight     float64 `json:"service_item_height"`
	ServiceFontSize       float64 `json:"service_font_size"`
	ServiceItemPadding    float64 `json:"service_item_padding"`

	TotalsMarginTop float64 `json:"totals_margin_top"`
	TotalsHeight    float64 `json:"totals_height"`
	TotalsFontSize  float64 `json:"totals_font_size"`
	TotalRowPadding float64 `json:"total_row_padding"`

	TermsSectionHeight   float64 `json:"terms_section_height"`
	TermsTitleFontSize   float64 `json:"terms_title_font_size"`
	TermsContentFontSize float64 `json:"terms_content_font_size"`
	TermsLineHeight      float64 `json:"terms_line_height"`
	TermsMarginBottom    float64 `json:"terms_margin_bottom"`
	TermsTitleMargin     float64 `json:"terms_title_margin"`

	FooterHeight     float64 `json:"footer_height"`
	FooterFontSize   float64 `json:"footer_font_size"`
	FooterPaddingTop float64 `json:"footer_padding_top"`
}

// TotalsRows returns the number of rows in the totals block: subtotal,
// discount and total with a discount, subtotal and total without.
func TotalsRows(hasDiscount bool) int {
	if hasDiscount {
		return 3
	}
	return 2
}

// Derive maps solved element values to the renderer configuration. It reads
// only Current values and has no side effects.
func Derive(b Budget) Config {
	cur := b.Current
	rowHeight := cur(TotalsHeight) / float64(TotalsRows(b.HasDiscount))
	terms := cur(TermsSectionHeight)

	return Config{
		MarginTop:    cur(MarginTop),
		MarginBottom: cur(MarginBottom),
		MarginSide:   cur(MarginSide),

		LogoHeight:         cur(LogoHeight),
		HeaderMarginBottom: cur(HeaderMarginBottom),
		HeaderLineMargin:   cur(HeaderLineMargin),
		HeaderFontSize:     HeaderFontSizes.Lookup(cur(LogoHeight)),

		TitleHeight:       cur(TitleHeight),
		TitleFontSize:     TitleFontSizes.Lookup(cur(TitleHeight)),
		TitleMarginBottom: cur(TitleMarginBottom),

		CustomerHeight:       cur(CustomerHeight),
		IntroFontSize:        IntroFontSizes.Lookup(cur(CustomerHeight)),
		IntroLineHeight:      IntroLineHeights.Lookup(cur(CustomerHeight)),
		CustomerMarginBottom: cur(CustomerMarginBottom),

		ServicesTitleHeight:   cur(ServicesTitle),
		ServicesTitleFontSize: ServicesTitleFontSizes.Lookup(cur(ServicesTitle)),
		ServicesTitleMargin:   cur(ServicesTitleMargin),
		ServiceItemHeight:     cur(ServiceItemHeight),
		ServiceFontSize:       ServiceFontSizes.Lookup(cur(ServiceItemHeight)),
		ServiceItemPadding:    max(0.2, cur(ServiceItemHeight)*0.2-0.3),

		TotalsMarginTop: cur(TotalsMarginTop),
		TotalsHeight:    cur(TotalsHeight),
		TotalsFontSize:  TotalsFontSizes.Lookup(rowHeight),
		TotalRowPadding: max(0.2, (rowHeight-3.5)/2),

		TermsSectionHeight:   terms,
		TermsTitleFontSize:   TermsTitleFontSizes.Lookup(terms),
		TermsContentFontSize: TermsContentFontSizes.Lookup(terms),
		TermsLineHeight:      TermsLineHeights.Lookup(terms),
		TermsMarginBottom:    max(0.5, terms*0.15-0.5),
		TermsTitleMargin:     max(0.2, terms*0.05),

		FooterHeight:     cur(FooterHeight),
		FooterFontSize:   FooterFontSizes.Lookup(cur(FooterHeight)),
		FooterPaddingTop: max(0.5, cur(FooterHeight)*0.25-1),
	}
}

// Fields returns the configuration as ordered name/value pairs, for
// tabular output.
func (c Config) Fields() []Field {
	return []Field{
		{"margin_top", c.MarginTop, UnitMM},
		{"margin_bottom", c.MarginBottom, UnitMM},
		{"margin_side", c.MarginSide, UnitMM},
		{"logo_height", c.LogoHeight, UnitMM},
		{"header_margin_bottom", c.HeaderMarginBottom, UnitMM},
		{"header_line_margin", c.HeaderLineMargin, UnitMM},
		{"header_font_size", c.HeaderFontSize, UnitPoint},
		{"title_height", c.TitleHeight, UnitMM},
		{"title_font_size", c.TitleFontSize, UnitPoint},
		{"title_margin_bottom", c.TitleMarginBottom, UnitMM},
		{"customer_height", c.CustomerHeight, UnitMM},
		{"intro_font_size", c.IntroFontSize, UnitPoint},
		{"intro_line_height", c.IntroLineHeight, UnitRatio},
		{"customer_margin_bottom", c.CustomerMarginBottom, UnitMM},
		{"services_title_height", c.ServicesTitleHeight, UnitMM},
		{"services_title_font_size", c.ServicesTitleFontSize, UnitPoint},
		{"services_title_margin", c.ServicesTitleMargin, UnitMM},
		{"service_item_height", c.ServiceItemHeight, UnitMM},
		{"service_font_size", c.ServiceFontSize, UnitPoint},
		{"service_item_padding", c.ServiceItemPadding, UnitMM},
		{"totals_margin_top", c.TotalsMarginTop, UnitMM},
		{"totals_height", c.TotalsHeight, UnitMM},
		{"totals_font_size", c.TotalsFontSize, UnitPoint},
		{"total_row_padding", c.TotalRowPadding, UnitMM},
		{"terms_section_height", c.TermsSectionHeight, UnitMM},
		{"terms_title_font_size", c.TermsTitleFontSize, UnitPoint},
		{"terms_content_font_size", c.TermsContentFontSize, UnitPoint},
		{"terms_line_height", c.TermsLineHeight, UnitRatio},
		{"terms_margin_bottom", c.TermsMarginBottom, UnitMM},
		{"terms_title_margin", c.TermsTitleMargin, UnitMM},
		{"footer_height", c.FooterHeight, UnitMM},
		{"footer_font_size", c.FooterFontSize, UnitPoint},
		{"footer_padding_top", c.FooterPaddingTop, UnitMM},
	}
}

// Unit labels a configuration value.
type Unit string

const (
	UnitMM    Unit = "mm"
	UnitPoint Unit = "pt"
	UnitRatio Unit = "x"
)

// Field is one named configuration value.
type Field struct {
	Name  string
	Value float64
	Unit  Unit
}
