package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/hamroute/internal/config"
)

// app carries the state resolved in PersistentPreRunE to the subcommands.
type app struct {
	cfgFile string
	cfg     config.Config
	logger  zerolog.Logger
}

// flagBindings maps config keys to the flags that can override them.
// Keys whose flag is not defined on the running command are skipped.
var flagBindings = map[string]string{
	config.KeyLogLevel:       "log-level",
	config.KeyLogFormat:      "log-format",
	config.KeySearchParallel: "parallel",
	config.KeyOutputFormat:   "format",
}

// NewRootCmd assembles the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "hamroute",
		Short: "Shortest and longest routes visiting every location once",
		Long: `hamroute reads undirected connections such as

    London to Dublin = 464

and reports the cheapest and the most expensive route that visits every
location exactly once.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.Flags())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml)")
	pf.String("log-level", "info", "log level (trace|debug|info|warn|error)")
	pf.String("log-format", "console", "log format (console|json)")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newGenerateCmd(a))

	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (a *app) load(flags *pflag.FlagSet) error {
	bindings := make(map[string]string, len(flagBindings))
	var key, name string
	for key, name = range flagBindings {
		if flags.Lookup(name) != nil {
			bindings[key] = name
		}
	}

	cfg, err := config.Load(a.cfgFile, flags, bindings)
	if err != nil {
		return err
	}
	if f := flags.Lookup("no-validate"); f != nil && f.Changed {
		off, err := flags.GetBool("no-validate")
		if err != nil {
			return err
		}
		cfg.Search.Validate = !off
	}
	a.cfg = cfg
	a.logger = cfg.Logger(nil)

	return nil
}
