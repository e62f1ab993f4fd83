package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamroute/internal/report"
	"github.com/katalvlaran/hamroute/route"
	"github.com/katalvlaran/hamroute/search"
)

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the shortest and longest route through every location",
		Long:  "Reads connections from file, or from stdin when file is omitted or '-'.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			return a.solve(cmd, in)
		},
	}

	fs := cmd.Flags()
	fs.Int("parallel", 0, "number of start-node workers (0 = sequential)")
	fs.Bool("no-validate", false, "skip the up-front completeness check")
	fs.String("format", report.FormatText, "output format (text|json|yaml)")

	return cmd
}

func (a *app) solve(cmd *cobra.Command, in io.Reader) error {
	conns, err := route.Parse(in)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	net, err := route.Build(conns)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	a.logger.Debug().
		Int("connections", len(conns)).
		Int("locations", net.Len()).
		Msg("network built")

	s, err := search.Solve(net,
		search.WithContext(cmd.Context()),
		search.WithParallel(a.cfg.Search.Parallel),
		search.WithValidation(a.cfg.Search.Validate),
		search.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}

	return report.Render(cmd.OutOrStdout(), s, a.cfg.Output.Format)
}
