package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dynpg/dynpg/client"
)

func init() {
	dynpgCmd.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Print the version number of Dynpg",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Println(client.Version())
			},
		})
}
