package main

import (
	"fmt"

	"github.com/katalvlaran/anneal"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of anneal",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "anneal version %s\n", anneal.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
