package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/quotefit/pkg/errors"
	"github.com/matzehuels/quotefit/pkg/layout"
	"github.com/matzehuels/quotefit/pkg/quote"
)

// sweepOpts holds the command-line flags for the sweep command.
type sweepOpts struct {
	content contentFlags
	from    int
	to      int
	step    int
	json    bool
}

// sweepRow is one solved item count.
type sweepRow struct {
	Items            int          `json:"items"`
	Phase            layout.Phase `json:"phase"`
	Expanded         bool         `json:"expanded"`
	CompressionRatio float64      `json:"compression_ratio"`
	ItemHeight       float64      `json:"item_height"`
	ServiceFontSize  float64      `json:"service_font_size"`
	TotalHeight      float64      `json:"total_height"`
	Overflow         float64      `json:"overflow"`
	Fits             bool         `json:"fits"`
}

// sweepCommand creates the sweep command.
func (c *CLI) sweepCommand() *cobra.Command {
	opts := sweepOpts{from: 0, to: 100, step: 5}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Solve a range of item counts and tabulate the phases",
		Long: `Solve the layout for a range of item counts with the other content fixed,
showing where each compression phase takes over:

  quotefit sweep --from 0 --to 120 --step 10 --delivery --payment`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base := opts.content.content()
			rows, err := sweep(cmd.Context(), base, opts.from, opts.to, opts.step)
			if err != nil {
				return err
			}

			if opts.json {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			t := newTable("items", "phase", "ratio", "item mm", "font pt", "height mm", "fits")
			for _, r := range rows {
				phase := r.Phase.String()
				if r.Expanded {
					phase += "+"
				}
				ratio := "-"
				if r.Phase == layout.PhaseProportional {
					ratio = fmt.Sprintf("%.4f", r.CompressionRatio)
				}
				fits := "yes"
				if !r.Fits {
					fits = fmt.Sprintf("+%.1f", r.Overflow)
				}
				t.Row(
					fmt.Sprintf("%d", r.Items),
					phase,
					ratio,
					fmt.Sprintf("%.2f", r.ItemHeight),
					fmt.Sprintf("%.1f", r.ServiceFontSize),
					fmt.Sprintf("%.1f", r.TotalHeight),
					fits,
				)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}

	opts.content.register(cmd)
	cmd.Flags().IntVar(&opts.from, "from", opts.from, "first item count")
	cmd.Flags().IntVar(&opts.to, "to", opts.to, "last item count (inclusive)")
	cmd.Flags().IntVar(&opts.step, "step", opts.step, "item count increment")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the rows as JSON")

	return cmd
}

// sweep solves base with every item count in [from, to] spaced by step.
// Rows come back in item count order.
func sweep(ctx context.Context, base quote.Content, from, to, step int) ([]sweepRow, error) {
	if step <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "step must be > 0, got %d", step)
	}
	if from > to {
		return nil, errors.New(errors.ErrCodeInvalidInput, "from (%d) must not exceed to (%d)", from, to)
	}
	for _, n := range []int{from, to} {
		if err := errors.ValidateItemCount(n); err != nil {
			return nil, err
		}
	}

	rows := make([]sweepRow, (to-from)/step+1)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range rows {
		content := base
		content.ItemCount = from + i*step
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[i] = newSweepRow(layout.Solve(content))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func newSweepRow(res layout.Result) sweepRow {
	return sweepRow{
		Items:            res.Budget.ItemCount,
		Phase:            res.Phase,
		Expanded:         res.Expanded,
		CompressionRatio: res.CompressionRatio,
		ItemHeight:       res.Config.ServiceItemHeight,
		ServiceFontSize:  res.Config.ServiceFontSize,
		TotalHeight:      res.TotalHeight,
		Overflow:         res.Overflow,
		Fits:             res.Fits,
	}
}
