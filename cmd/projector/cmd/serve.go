package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rpgo/projector/internal/api"
	"github.com/rpgo/projector/internal/calculation"
	"github.com/rpgo/projector/internal/config"
	"github.com/rpgo/projector/internal/logging"
	"github.com/spf13/cobra"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	var port string
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators over HTTP",
		Long: `Serve starts the JSON API.

Configuration comes from the environment:
  PORT                  listen port (default 8000)
  LOG_LEVEL             log level (default info)
  LOG_JSON              JSON logs (default true)
  CORS_ALLOWED_ORIGINS  comma-separated origins, "*" for any (default *)
  MAX_PATH_CELLS        largest n_sims x periods accepted (default 20000000)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewServerConfig()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			level := cfg.LogLevel
			if cmd.Flags().Changed("log-level") {
				level = root.logLevel
			}
			logger := logging.New(logging.Options{
				Level:  level,
				JSON:   cfg.LogJSON || root.logJSON,
				Output: cmd.ErrOrStderr(),
			})

			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := api.NewServer(cfg, calculation.NewProjectionEngine(), logger)
			return srv.ListenAndServe(ctx)
		},
	}
	c.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return c
}
