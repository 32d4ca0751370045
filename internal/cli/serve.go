package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstviz/export"
	"github.com/katalvlaran/mstviz/server"
)

// serveCommand creates the serve command, which runs the HTTP API until the
// process is interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serves trace computation over HTTP:

  GET  /healthz
  GET  /v1/methods
  POST /v1/traces/{method}?format=json|yaml&strict=true
  POST /v1/dot/{method}?step=N

Request bodies are graphs in the text format, or JSON with
Content-Type: application/json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.cfg.Server.Addr
			}
			format, err := export.ParseFormat(c.cfg.Format)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			srv := server.New(logger,
				server.WithMaxBodyBytes(c.cfg.Server.MaxBodyBytes),
				server.WithDefaultFormat(format),
			)
			return srv.Run(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")

	return cmd
}
