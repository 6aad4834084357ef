package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlkata/catalog"
)

// app carries state shared by every subcommand.
type app struct {
	verbose  bool
	log      *slog.Logger
	registry *catalog.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{registry: catalog.Default()}

	root := &cobra.Command{
		Use:   "lvlkata",
		Short: "Run classic algorithm exercises and verify YAML case files",
		Long: `lvlkata exposes the exercise catalog: binary search, sorting, trees,
linked lists, hashmap lookups, stack expressions, monotonic stacks,
string matching and grids.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			a.log.Debug("starting", "command", cmd.Name(), "args", args)
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug details to stderr")

	root.AddCommand(
		a.listCmd(),
		a.runCmd(),
		a.verifyCmd(),
		a.calcCmd(),
		a.sortCmd(),
	)

	return root
}
