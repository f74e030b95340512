package main

import (
	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/homier/arraytable/internal/cli"
	"github.com/homier/arraytable/internal/drill"
)

func newRunCommand(root *cli.RootCommand) *cobra.Command {
	var (
		capacity   int
		keys       int
		printTable bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the drill workload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := drill.LoadConfig(root.Options.ConfigPath)
			if err != nil {
				return errors.Wrap(err, "load config")
			}

			// Flags win over the environment.
			flags := cmd.Flags()
			if flags.Changed("capacity") {
				cfg.Capacity = capacity
			}
			if flags.Changed("keys") {
				cfg.Keys = keys
			}
			if flags.Changed("print") {
				cfg.Print = printTable
			}

			log, err := newLogger(cfg.Environment)
			if err != nil {
				return errors.Wrap(err, "create logger")
			}
			defer func() { _ = log.Sync() }()

			_, err = drill.Run(cfg, log, cmd.OutOrStdout())

			return err
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", 0, "Table capacity (TABLECHECK_CAPACITY)")
	cmd.Flags().IntVar(&keys, "keys", 0, "Number of workload keys (TABLECHECK_KEYS)")
	cmd.Flags().BoolVar(&printTable, "print", false, "Print the table after the workload (TABLECHECK_PRINT)")

	return cmd
}

func newLogger(env string) (*zap.Logger, error) {
	if env == drill.EnvProd {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
