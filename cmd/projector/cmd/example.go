package cmd

import (
	"fmt"
	"strings"

	"github.com/rpgo/projector/internal/config"
	"github.com/rpgo/projector/internal/output"
	"github.com/spf13/cobra"
)

func newExampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "example <kind>",
		Short:     "Print an example request file",
		ValidArgs: kindNames(),
		Args:      cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := config.ParseKind(args[0])
			if err != nil {
				return err
			}
			return config.WriteExample(cmd.OutOrStdout(), k)
		},
	}
}

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and their aliases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "formats:", joinNames())
			fmt.Fprintln(w, "aliases:", strings.Join(output.AvailableFormatAliases(), ", "))
		},
	}
}

func kindNames() []string {
	names := make([]string, 0, len(config.Kinds))
	for _, k := range config.Kinds {
		names = append(names, string(k))
	}
	return names
}

func joinNames() string {
	return strings.Join(output.AvailableFormatterNames(), ", ")
}
