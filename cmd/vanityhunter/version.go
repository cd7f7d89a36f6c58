package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

const version = "0.4.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of vanityhunter",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vanityhunter version %s (%s/%s)\n", version, runtime.GOOS, runtime.GOARCH)
		},
	}
}
