package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type Options struct {
	ConfigPath string
}

type RootCommand struct {
	*cobra.Command
	Options Options
}

func Init(name string) *RootCommand {
	cmd := &RootCommand{
		Command: &cobra.Command{
			Use:           name,
			SilenceUsage:  true,
			SilenceErrors: true,
		},
	}
	cmd.PersistentFlags().StringVarP(
		&cmd.Options.ConfigPath,
		"config",
		"c",
		"",
		"Path to the .env configuration file",
	)

	return cmd
}

func (c *RootCommand) MustExecute(ctx context.Context) {
	if err := c.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s failed: %v\n", c.Name(), err)
		os.Exit(1)
	}
}
