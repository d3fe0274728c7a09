package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rpgo/projector/internal/calculation"
	"github.com/rpgo/projector/internal/config"
	"github.com/rpgo/projector/internal/output"
	"github.com/spf13/cobra"
)

type kindCommand struct {
	kind  config.Kind
	short string
}

var kindCommands = []kindCommand{
	{config.KindCompound, "Project contributions and returns as percentile bands"},
	{config.KindDrawdown, "Analyze drawdowns and recovery of a unit investment"},
	{config.KindFire, "Accumulate, then draw down, and report how long the money lasts"},
	{config.KindMortgage, "Amortize a mortgage with overpayments against a baseline"},
	{config.KindSuggest, "Solve for the first-year contribution that reaches a target"},
}

type projectOptions struct {
	file        string
	format      string
	out         string
	saveRequest string
	seed        int64
}

func (po *projectOptions) register(c *cobra.Command) {
	c.Flags().StringVarP(&po.file, "file", "f", "", "request file (YAML or JSON)")
	c.Flags().StringVar(&po.format, "format", "console", "output format ("+joinNames()+")")
	c.Flags().StringVarP(&po.out, "out", "o", "", "write to this file, or into this directory under a timestamped name")
	c.Flags().StringVar(&po.saveRequest, "save-request", "", "also write the effective request as YAML")
	c.Flags().Int64Var(&po.seed, "seed", 0, "override the random seed of stochastic calculators")
}

func newKindCommand(root *rootOptions, k kindCommand) *cobra.Command {
	po := &projectOptions{}
	c := &cobra.Command{
		Use:   string(k.kind),
		Short: k.short,
		Long: fmt.Sprintf(`%s.

Without -f the calculator runs on its defaults.

Example:
  projector example %[2]s > %[2]s.yaml
  projector %[2]s -f %[2]s.yaml --format csv -o out/`, k.short, k.kind),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := loadRequest(po.file, k.kind)
			if err != nil {
				return err
			}
			return project(cmd, root, po, req)
		},
	}
	po.register(c)
	return c
}

func newRunCommand(root *rootOptions) *cobra.Command {
	po := &projectOptions{}
	c := &cobra.Command{
		Use:   "run",
		Short: "Run whichever calculator a request file names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := config.NewInputParser().LoadFromFile(po.file)
			if err != nil {
				return err
			}
			return project(cmd, root, po, req)
		},
	}
	po.register(c)
	_ = c.MarkFlagRequired("file")
	return c
}

// loadRequest reads file when given, insisting its kind matches, or falls
// back to the calculator defaults.
func loadRequest(file string, kind config.Kind) (*config.Request, error) {
	if file == "" {
		return config.NewRequest(kind)
	}
	req, err := config.NewInputParser().LoadFromFile(file)
	if err != nil {
		return nil, err
	}
	if req.Kind != kind {
		return nil, fmt.Errorf("%s holds a %s request, not %s", file, req.Kind, kind)
	}
	return req, nil
}

func project(cmd *cobra.Command, root *rootOptions, po *projectOptions, req *config.Request) error {
	formatter, err := output.GetFormatterByName(po.format)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		applySeed(req, po.seed)
	}

	logger := root.logger(cmd.ErrOrStderr())
	engine := calculation.NewProjectionEngine().WithLogger(logger.WithField("kind", string(req.Kind)))

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := engine.Project(ctx, req.Params())
	if err != nil {
		return fmt.Errorf("%s projection failed: %w", req.Kind, err)
	}
	report := output.NewReport(result, req.Params())

	if po.saveRequest != "" {
		if err := output.SaveRequest(string(req.Kind), req.Params(), po.saveRequest); err != nil {
			return fmt.Errorf("failed to save request: %w", err)
		}
	}
	return writeReport(cmd, formatter, report, po.out)
}

func writeReport(cmd *cobra.Command, f output.Formatter, report *output.Report, out string) error {
	if out == "" {
		data, err := f.Format(report)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if info, err := os.Stat(out); err == nil && info.IsDir() {
		path, err := output.WriteFormatted(f, report, out)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	}

	data, err := f.Format(report)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
	return nil
}

func applySeed(req *config.Request, seed int64) {
	switch req.Kind {
	case config.KindCompound:
		req.Compound.Seed = &seed
	case config.KindDrawdown:
		req.Drawdown.Seed = &seed
	case config.KindFire:
		req.Fire.Seed = &seed
	}
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
