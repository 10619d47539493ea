package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dynpg/dynpg/repl"
)

var (
	replCmd = &cobra.Command{
		Use:   "repl",
		Short: "Run an interactive console session",
		RunE:  replRun,
	}
)

func init() {
	initClientFlags(replCmd.Flags())

	dynpgCmd.AddCommand(replCmd)
}

func replRun(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	c, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	repl.Interact(ctx, c)
	return nil
}
