package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dynpg/dynpg/repl"
)

var (
	execCmd = &cobra.Command{
		Use:   "exec",
		Short: "Execute SQL statements and print the results",
		RunE:  execRun,
	}

	sqlArgs = []string{}
)

func init() {
	fs := execCmd.Flags()
	initClientFlags(fs)

	fs.StringSliceVar(&sqlArgs, "sql", sqlArgs, "sql `query` to execute; multiple allowed")

	dynpgCmd.AddCommand(execCmd)
}

func execRun(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	c, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	for _, s := range append(sqlArgs, args...) {
		repl.ReplSQL(ctx, c, strings.NewReader(s), os.Stdout)
	}
	return nil
}
