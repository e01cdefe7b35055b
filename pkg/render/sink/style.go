package sink

import (
	"fmt"

	"github.com/matzehuels/quotefit/pkg/layout"
)

const (
	paperColor    = "#ffffff"
	outlineColor  = "#9a9a9a"
	guideColor    = "#7f8c8d"
	limitColor    = "#c0392b"
	overflowColor = "#e74c3c"
	textColor     = "#2c3e50"
)

// kindColors fills blocks by kind.
var kindColors = map[layout.BlockKind]string{
	layout.KindLogo:          "#d6eaf8",
	layout.KindSeparator:     "#34495e",
	layout.KindTitle:         "#aed6f1",
	layout.KindCustomer:      "#d5f5e3",
	layout.KindServicesTitle: "#fcf3cf",
	layout.KindItem:          "#fef9e7",
	layout.KindTotals:        "#fadbd8",
	layout.KindTerms:         "#e8daef",
	layout.KindFooter:        "#eaeded",
}

func fillFor(k layout.BlockKind) string {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return paperColor
}

// mmPerPoint converts typographic points to millimeters.
const mmPerPoint = 25.4 / 72

// labelSize returns the font size in millimeters used to label a block,
// taken from the derived configuration for that element.
func labelSize(cfg layout.Config, k layout.BlockKind) float64 {
	var pt float64
	switch k {
	case layout.KindLogo:
		pt = cfg.HeaderFontSize
	case layout.KindTitle:
		pt = cfg.TitleFontSize
	case layout.KindCustomer:
		pt = cfg.IntroFontSize
	case layout.KindServicesTitle:
		pt = cfg.ServicesTitleFontSize
	case layout.KindItem:
		pt = cfg.ServiceFontSize
	case layout.KindTotals:
		pt = cfg.TotalsFontSize
	case layout.KindTerms:
		pt = cfg.TermsTitleFontSize
	case layout.KindFooter:
		pt = cfg.FooterFontSize
	default:
		return 0
	}
	return pt * mmPerPoint
}

// caption summarizes a solve in one line.
func caption(res layout.Result) string {
	phase := res.Phase.String()
	if res.Phase == layout.PhaseProportional {
		phase = fmt.Sprintf("%s %.3f", phase, res.CompressionRatio)
	}
	status := "fits"
	if !res.Fits {
		status = fmt.Sprintf("overflows by %.1f mm", res.Overflow)
	}
	return fmt.Sprintf("%d items, %d terms | %s | %.1f of %.0f mm, %s",
		res.Budget.ItemCount, res.Budget.TermsCount, phase, res.TotalHeight, layout.AvailableHeight, status)
}
