package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/quotefit/pkg/errors"
	"github.com/matzehuels/quotefit/pkg/layout"
	"github.com/matzehuels/quotefit/pkg/quote"
)

// barWidth is the width of the page usage bar in cells.
const barWidth = 48

var (
	barFillStyle     = lipgloss.NewStyle().Foreground(colorCyan)
	barOverflowStyle = lipgloss.NewStyle().Foreground(colorRed)
	toggleOnStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	toggleOffStyle   = lipgloss.NewStyle().Foreground(colorDim)
	hintStyle        = lipgloss.NewStyle().Foreground(colorDim)
)

// exploreCommand creates the interactive explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	var flags contentFlags

	cmd := &cobra.Command{
		Use:               "explore [quote-file]",
		Short:             "Adjust quote content interactively and watch the layout change",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeQuoteFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, _, err := flags.resolveContent(cmd, args)
			if err != nil {
				return err
			}
			p := tea.NewProgram(NewExploreModel(content), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	flags.register(cmd)
	return cmd
}

// =============================================================================
// ExploreModel - Interactive layout explorer
// =============================================================================

// ExploreModel is the bubbletea model for the layout explorer. Every change
// to the content re-solves the layout.
type ExploreModel struct {
	Content quote.Content
	Result  layout.Result
}

// NewExploreModel creates an explorer for the given starting content.
func NewExploreModel(c quote.Content) ExploreModel {
	return ExploreModel{Content: c, Result: layout.Solve(c)}
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	c := m.Content
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k", "+":
		c.ItemCount++
	case "down", "j", "-":
		c.ItemCount--
	case "pgup", "K":
		c.ItemCount += 10
	case "pgdown", "J":
		c.ItemCount -= 10
	case "i":
		c.HasInvoiceToCustomers = !c.HasInvoiceToCustomers
	case "d":
		c.HasDeliveryTerm = !c.HasDeliveryTerm
	case "p":
		c.HasPaymentConditions = !c.HasPaymentConditions
	case "g":
		c.HasGuarantee = !c.HasGuarantee
	case "x":
		c.HasDiscount = !c.HasDiscount
	default:
		return m, nil
	}

	c.ItemCount = min(max(c.ItemCount, 0), errors.MaxItemCount)
	if c != m.Content {
		m.Content = c
		m.Result = layout.Solve(c)
	}
	return m, nil
}

func (m ExploreModel) View() string {
	var b strings.Builder
	res := m.Result

	b.WriteString(StyleTitle.Render("Layout Explorer"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("↑/↓ items  PgUp/PgDn ±10  i d p g x toggle  q quit"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s   %s %s %s %s %s\n\n",
		StyleDim.Render("items"), StyleNumber.Render(fmt.Sprintf("%d", m.Content.ItemCount)),
		toggle("i", "invoice-to", m.Content.HasInvoiceToCustomers),
		toggle("d", "delivery", m.Content.HasDeliveryTerm),
		toggle("p", "payment", m.Content.HasPaymentConditions),
		toggle("g", "guarantee", m.Content.HasGuarantee),
		toggle("x", "discount", m.Content.HasDiscount),
	))

	phase := phaseStyle(res.Phase).Render(res.Phase.String())
	if res.Expanded {
		phase += StyleDim.Render(" (expanded)")
	}
	if res.Phase == layout.PhaseProportional {
		phase += StyleDim.Render(fmt.Sprintf(" ratio %.4f", res.CompressionRatio))
	}
	b.WriteString(fmt.Sprintf("%s %s\n", StyleDim.Render("phase "), phase))
	b.WriteString(fmt.Sprintf("%s %s\n", StyleDim.Render("height"), usageBar(res.TotalHeight, layout.AvailableHeight, barWidth)))
	b.WriteString(fmt.Sprintf("%s %s\n\n", StyleDim.Render("      "), heightLine(res)))

	t := newTable("section", "count", "height mm", "font pt")
	for _, r := range sectionRows(res) {
		t.Row(r...)
	}
	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}

// toggle renders a key hint with an on/off state.
func toggle(key, name string, on bool) string {
	style := toggleOffStyle
	if on {
		style = toggleOnStyle
	}
	return hintStyle.Render("["+key+"]") + style.Render(name)
}

// heightLine describes the solved height against the available height.
func heightLine(res layout.Result) string {
	line := fmt.Sprintf("%.1f of %.0f mm", res.TotalHeight, layout.AvailableHeight)
	if !res.Fits {
		return barOverflowStyle.Render(fmt.Sprintf("%s, overflows by %.1f mm", line, res.Overflow))
	}
	return StyleDim.Render(line)
}

// usageBar draws used/available as a bar of width cells. Usage beyond the
// available height is drawn in the overflow color past the end of the bar.
func usageBar(used, available float64, width int) string {
	if available <= 0 || width <= 0 {
		return ""
	}
	filled := int(used / available * float64(width))
	over := 0
	if filled > width {
		over = min(filled-width, width/2)
		filled = width
	}
	filled = max(filled, 0)
	return barFillStyle.Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", width-filled)) +
		barOverflowStyle.Render(strings.Repeat("█", over))
}

// sectionRows summarizes the page blocks by kind, in page order.
func sectionRows(res layout.Result) [][]string {
	type section struct {
		kind   layout.BlockKind
		count  int
		height float64
	}
	var sections []*section
	byKind := map[layout.BlockKind]*section{}
	for _, blk := range res.Page().Blocks {
		if blk.Kind == layout.KindSeparator {
			continue
		}
		s, ok := byKind[blk.Kind]
		if !ok {
			s = &section{kind: blk.Kind}
			byKind[blk.Kind] = s
			sections = append(sections, s)
		}
		s.count++
		s.height += blk.Height()
	}

	fonts := map[layout.BlockKind]float64{
		layout.KindLogo:          res.Config.HeaderFontSize,
		layout.KindTitle:         res.Config.TitleFontSize,
		layout.KindCustomer:      res.Config.IntroFontSize,
		layout.KindServicesTitle: res.Config.ServicesTitleFontSize,
		layout.KindItem:          res.Config.ServiceFontSize,
		layout.KindTotals:        res.Config.TotalsFontSize,
		layout.KindTerms:         res.Config.TermsContentFontSize,
		layout.KindFooter:        res.Config.FooterFontSize,
	}

	rows := make([][]string, 0, len(sections))
	for _, s := range sections {
		rows = append(rows, []string{
			string(s.kind),
			fmt.Sprintf("%d", s.count),
			fmt.Sprintf("%.1f", s.height),
			fmt.Sprintf("%.1f", fonts[s.kind]),
		})
	}
	return rows
}
