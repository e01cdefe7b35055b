package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/quotefit/pkg/api"
)

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout API over HTTP",
		Long: `Serve the layout API over HTTP.

Routes:
  GET  /healthz
  GET  /version
  POST /v1/compute          derived layout configuration
  POST /v1/layout           full layout document with page blocks
  POST /v1/render/{format}  preview as svg, png, pdf or json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				cfg, err := c.config()
				if err != nil {
					return err
				}
				if cfg.Serve.Addr != "" {
					addr = cfg.Serve.Addr
				}
			}

			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			return api.NewServer(runner, c.Logger).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
