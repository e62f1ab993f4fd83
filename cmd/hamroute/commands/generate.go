package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamroute/builder"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		nodes            int
		seed             int64
		minCost, maxCost uint64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random complete network in the solve input format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if minCost == 0 || maxCost < minCost {
				return fmt.Errorf("generate: need 0 < min <= max, got min=%d max=%d", minCost, maxCost)
			}
			conns, err := builder.Complete(nodes,
				builder.WithSeed(seed),
				builder.WithIDScheme(builder.ExcelColumnIDFn),
				builder.WithUniformWeight(minCost, maxCost),
			)
			if err != nil {
				return err
			}
			a.logger.Debug().Int("nodes", nodes).Int64("seed", seed).Int("connections", len(conns)).Msg("generated")

			out := cmd.OutOrStdout()
			for _, c := range conns {
				if _, err = fmt.Fprintln(out, c.Format()); err != nil {
					return err
				}
			}

			return nil
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&nodes, "nodes", 8, "number of locations (>= 2)")
	fs.Int64Var(&seed, "seed", 1, "random seed")
	fs.Uint64Var(&minCost, "min", 1, "minimum connection cost")
	fs.Uint64Var(&maxCost, "max", 255, "maximum connection cost")

	return cmd
}
