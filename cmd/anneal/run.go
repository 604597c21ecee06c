package main

import (
	"encoding/json"
	"os"

	"github.com/katalvlaran/anneal/internal/runfile"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Solve a run file and print its record",
	Long:  `Loads a YAML or JSON run file, anneals it, stores the record and prints it as JSON on stdout.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := loggerFrom(cmd)
		if err != nil {
			return err
		}
		f, err := runfile.Load(args[0])
		if err != nil {
			return err
		}
		store, closeStore, err := storeFrom(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		record, err := runfile.NewRunner(store, nil, logger).Submit(cmd.Context(), f)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
