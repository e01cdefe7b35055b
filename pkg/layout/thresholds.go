package layout

// Tier maps every input at or above AtLeast to Value.
type Tier struct {
	AtLeast float64
	Value   float64
}

// Thresholds is an ordered step function. Tiers are checked from the
// highest AtLeast down; inputs below every tier map to Fallback.
type Thresholds struct {
	Tiers    []Tier
	Fallback float64
}

// Lookup returns the value of the first tier whose AtLeast is <= v.
func (t Thresholds) Lookup(v float64) float64 {
	for _, tier := range t.Tiers {
		if v >= tier.AtLeast {
			return tier.Value
		}
	}
	return t.Fallback
}

// Font sizes in points and line heights as multipliers, keyed by the solved
// height in millimeters of the block they style.
var (
	HeaderFontSizes = Thresholds{
		Tiers:    []Tier{{13, 9}, {11, 8}},
		Fallback: 7,
	}
	TitleFontSizes = Thresholds{
		Tiers:    []Tier{{6, 14}, {5.5, 13}},
		Fallback: 12,
	}
	IntroFontSizes = Thresholds{
		Tiers:    []Tier{{25, 10}, {21, 9}},
		Fallback: 8,
	}
	IntroLineHeights = Thresholds{
		Tiers:    []Tier{{25, 1.5}, {21, 1.4}},
		Fallback: 1.3,
	}
	ServicesTitleFontSizes = Thresholds{
		Tiers:    []Tier{{5, 11}, {4.5, 10}},
		Fallback: 9,
	}
	ServiceFontSizes = Thresholds{
		Tiers:    []Tier{{5, 10}, {4, 9}, {3.5, 8}},
		Fallback: 7,
	}
	// TotalsFontSizes is keyed by the height of a single totals row.
	TotalsFontSizes = Thresholds{
		Tiers:    []Tier{{5, 11}, {4, 10}},
		Fallback: 9,
	}
	TermsTitleFontSizes = Thresholds{
		Tiers:    []Tier{{18, 10}, {15, 9}},
		Fallback: 8,
	}
	TermsContentFontSizes = Thresholds{
		Tiers:    []Tier{{18, 9}, {15, 8}},
		Fallback: 7,
	}
	TermsLineHeights = Thresholds{
		Tiers:    []Tier{{18, 1.4}, {15, 1.3}},
		Fallback: 1.2,
	}
	FooterFontSizes = Thresholds{
		Tiers:    []Tier{{15, 8}, {13, 7.5}},
		Fallback: 7,
	}
)
