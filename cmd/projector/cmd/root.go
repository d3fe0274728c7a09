package cmd

import (
	"io"

	"github.com/rpgo/projector/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel string
	logJSON  bool
}

// NewRootCommand builds the full command tree. Each call returns fresh
// flag state, so tests can run commands side by side.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "projector",
		Short: "Monte Carlo wealth projections and mortgage amortization",
		Long: `Projector runs stochastic and deterministic personal-finance projections.

It provides:
  - compound: contributions plus market returns over a horizon, as percentile bands
  - drawdown: peak-to-trough declines and recovery time of a unit investment
  - fire: accumulate then draw down, with the probability the money lasts
  - mortgage: amortization with overpayments against a no-overpayment baseline
  - suggest: the first-year contribution needed to reach a target

Each calculator reads a request file (see "projector example <kind>") or runs
on defaults. "projector serve" exposes the same calculators over HTTP.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "emit logs as JSON")

	for _, k := range kindCommands {
		root.AddCommand(newKindCommand(opts, k))
	}
	root.AddCommand(
		newRunCommand(opts),
		newServeCommand(opts),
		newExampleCommand(),
		newFormatsCommand(),
		newVersionCommand(),
	)
	return root
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return NewRootCommand().Execute()
}

func (o *rootOptions) logger(w io.Writer) *logrus.Logger {
	return logging.New(logging.Options{Level: o.logLevel, JSON: o.logJSON, Output: w})
}
