package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/quotefit/pkg/pipeline"
	"github.com/matzehuels/quotefit/pkg/quote"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	content contentFlags
	output  string   // output file (single format) or base path (multiple)
	formats []string // svg, png, pdf, json
	scale   float64  // PNG pixels per millimeter
	labels  bool     // draw block labels
	guides  bool     // draw margin guides and the height limit
	caption bool     // draw the summary caption
	noCache bool
	refresh bool
}

// renderCommand creates the render command for generating page previews.
// Defaults come from the [render] section of the config file; flags given
// on the command line win.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [quote-file]",
		Short: "Render a wireframe preview of the solved page",
		Long: `Render a wireframe preview of the solved page.

Each section of the quote becomes a block sized by the solved layout. The
preview shows whether the content fits and how the space was divided:

  quotefit render quote.toml -f svg,png
  quotefit render -n 60 --discount -o preview.pdf`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeQuoteFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, source, err := opts.content.resolveContent(cmd, args)
			if err != nil {
				return err
			}
			if err := c.applyRenderDefaults(cmd, &opts, formatsStr); err != nil {
				return err
			}

			input := source
			if len(args) == 0 {
				input = "quote"
			}
			return c.runRender(cmd, content, input, &opts)
		},
	}

	opts.content.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg, png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG pixels per millimeter")
	cmd.Flags().BoolVar(&opts.labels, "labels", true, "draw block labels")
	cmd.Flags().BoolVar(&opts.guides, "guides", true, "draw margin guides and the height limit")
	cmd.Flags().BoolVar(&opts.caption, "caption", false, "draw a summary caption under the page")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when a cached layout exists")

	return cmd
}

// applyRenderDefaults fills options the user did not set from the config file.
func (c *CLI) applyRenderDefaults(cmd *cobra.Command, opts *renderOpts, formatsStr string) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}
	flags := cmd.Flags()

	opts.formats = parseFormats(formatsStr)
	if !flags.Changed("format") && len(cfg.Render.Formats) > 0 {
		opts.formats = cfg.Render.Formats
	}
	if !flags.Changed("scale") && cfg.Render.Scale > 0 {
		opts.scale = cfg.Render.Scale
	}
	if !flags.Changed("labels") {
		opts.labels = cfg.Render.Labels
	}
	if !flags.Changed("guides") {
		opts.guides = cfg.Render.Guides
	}
	if !flags.Changed("caption") {
		opts.caption = cfg.Render.Caption
	}
	return pipeline.ValidateFormats(opts.formats)
}

// runRender solves and renders the content and writes the artifacts.
func (c *CLI) runRender(cmd *cobra.Command, content quote.Content, input string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d item quote...", content.ItemCount))
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Content: content,
		Refresh: opts.refresh,
		Formats: opts.formats,
		Scale:   opts.scale,
		Labels:  opts.labels,
		Guides:  opts.guides,
		Caption: opts.caption,
		Logger:  logger,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if !result.Layout.Fits {
		printWarning("Content overflows the page by %.1f mm", result.Layout.Overflow)
	}
	printSuccess("Rendered %s", strings.Join(opts.formats, ", "))
	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.formats,
		input:     input,
		output:    opts.output,
	}); err != nil {
		return err
	}
	printStats(result.Layout, result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	logger.Debug("render finished", "run", result.RunID, "solve", result.Stats.SolveTime, "render", result.Stats.RenderTime)
	return nil
}

