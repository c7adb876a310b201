package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "List the indexes this configuration advertises",
	RunE:  runIndexes,
}

func init() {
	rootCmd.AddCommand(indexesCmd)
}

func runIndexes(cmd *cobra.Command, args []string) error {
	svc, err := newService(newLogger())
	if err != nil {
		return err
	}

	for _, opt := range svc.Advertise() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", opt.Label, opt.Value)
	}
	return nil
}
