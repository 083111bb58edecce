package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/algotrace/internal/config"
	"github.com/matzehuels/algotrace/internal/server"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve traces over HTTP",
		Long: `Serve the algorithm catalog and traces over HTTP.

Endpoints:
  GET  /healthz
  GET  /api/algorithms
  GET  /api/algorithms/{name}
  POST /api/algorithms/{name}/trace
  GET  /api/algorithms/{name}/steps/{index}/svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config
			if addr != "" {
				cfg.Server.Addr = addr
			}
			srv := server.New(server.Options{
				Addr:        cfg.Server.Addr,
				ReadTimeout: cfg.Server.ReadTimeout.Duration,
				MaxSteps:    cfg.Trace.MaxSteps,
				Logger:      c.Logger,
			})
			printInfo(cmd.OutOrStdout(), "Listening on %s", StyleValue.Render("http://"+cfg.Server.Addr))
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else "+config.DefaultAddr+")")
	return cmd
}
