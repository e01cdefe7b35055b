package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/quotefit/pkg/layout"
	"github.com/matzehuels/quotefit/pkg/pipeline"
	"github.com/matzehuels/quotefit/pkg/render/sink"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	content  contentFlags
	output   string // write the JSON document here instead of stdout
	json     bool   // print the JSON document instead of the summary
	elements bool   // print the element table
	fields   bool   // print every derived configuration value
	noCache  bool
	refresh  bool
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [quote-file]",
		Short: "Compute the page layout for a quote",
		Long: `Compute the page layout for a quote and print the derived metrics.

The content comes from a quote file (.toml or .json) or from flags:

  quotefit solve quote.toml
  quotefit solve -n 40 --delivery --payment --discount`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeQuoteFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, source, err := opts.content.resolveContent(cmd, args)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context(), opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			logger := loggerFromContext(cmd.Context())
			logger.Debug("solving", "source", source, "items", content.ItemCount, "terms", content.TermsCount())

			prog := newProgress(logger)
			res, hit, err := runner.SolveWithCacheInfo(cmd.Context(), pipeline.Options{
				Content: content,
				Refresh: opts.refresh,
				Logger:  logger,
			})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Solved %s layout", res.Phase))

			if opts.json || opts.output != "" {
				return writeLayoutJSON(res, opts.output)
			}

			printSolveSummary(res, hit)
			if opts.elements {
				printNewline()
				fmt.Println(elementTable(res.Budget))
			}
			if opts.fields {
				printNewline()
				fmt.Println(fieldTable(res.Config))
			}
			if !opts.elements && !opts.fields {
				printNewline()
				printNextStep("Preview the page", renderHint(source, args, opts.content))
			}
			return nil
		},
	}

	opts.content.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the layout as JSON to this file")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the layout as JSON")
	cmd.Flags().BoolVarP(&opts.elements, "elements", "e", false, "show the element table")
	cmd.Flags().BoolVar(&opts.fields, "fields", false, "show every derived configuration value")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when a cached layout exists")

	return cmd
}

// renderHint suggests the render command for the same input.
func renderHint(source string, args []string, f contentFlags) string {
	if len(args) > 0 {
		return "quotefit render " + source
	}
	return strings.Join(append([]string{"quotefit render"}, f.args()...), " ")
}

// writeLayoutJSON writes the layout document with page blocks to path.
func writeLayoutJSON(res layout.Result, path string) error {
	data, err := sink.RenderJSON(res, sink.WithJSONBlocks())
	if err != nil {
		return err
	}
	w, err := openOutput(path)
	if err != nil {
		return err
	}
	defer w.Close()
	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}
	if path != "" && path != "-" {
		printFile(path)
	}
	return nil
}

// printSolveSummary prints the headline metrics of a solve.
func printSolveSummary(res layout.Result, cached bool) {
	phase := phaseStyle(res.Phase).Render(res.Phase.String())
	if res.Expanded {
		phase += StyleDim.Render(" (expanded)")
	}

	printKeyValue("Phase", phase)
	if res.Phase == layout.PhaseProportional {
		printKeyValue("Ratio", fmt.Sprintf("%.4f", res.CompressionRatio))
	}
	printKeyValue("Height", fmt.Sprintf("%.1f mm of %.0f mm (default %.1f mm)",
		res.TotalHeight, layout.AvailableHeight, res.DefaultHeight))
	printKeyValue("Item row", fmt.Sprintf("%.2f mm, %.1f pt", res.Config.ServiceItemHeight, res.Config.ServiceFontSize))
	if res.Fits {
		printKeyValue("Fits", StyleSuccess.Render("yes"))
	} else {
		printKeyValue("Fits", StyleWarning.Render(fmt.Sprintf("no, overflows by %.1f mm", res.Overflow)))
	}
	printKeyValue("Steps", formatSteps(res.Steps))
	printStats(res, cached)
}

// formatSteps renders the phase trace as "phase 123.4 → phase 98.7".
func formatSteps(steps []layout.Step) string {
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = fmt.Sprintf("%s %.1f", s.Phase, s.TotalHeight)
	}
	return strings.Join(parts, " "+iconArrow+" ")
}

// elementTable lists every element with its bounds and solved value.
func elementTable(b layout.Budget) *table.Table {
	t := newTable("element", "axis", "default", "min", "current", "weight")
	for _, id := range layout.Elements() {
		e := b.Get(id)
		t.Row(
			id.String(),
			id.Axis().String(),
			fmt.Sprintf("%.2f", e.Default),
			fmt.Sprintf("%.2f", e.Min),
			fmt.Sprintf("%.2f", e.Current),
			fmt.Sprintf("%g", b.Weight(id)),
		)
	}
	return t
}

// fieldTable lists every derived configuration value.
func fieldTable(cfg layout.Config) *table.Table {
	t := newTable("field", "value", "unit")
	for _, f := range cfg.Fields() {
		t.Row(f.Name, fmt.Sprintf("%.2f", f.Value), string(f.Unit))
	}
	return t
}

