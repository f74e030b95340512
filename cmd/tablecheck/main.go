package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/homier/arraytable/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	root := cli.Init("tablecheck")
	root.Short = "Exercise an array table and verify its invariants"
	root.AddCommand(newRunCommand(root))

	root.MustExecute(ctx)
}
