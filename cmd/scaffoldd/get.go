package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meigma/scaffold"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Retrieve one scaffold and print it as FASTA",
	RunE:  runGet,
}

func init() {
	getCmd.Flags().String("index", "", "index name or FASTA path to search")
	getCmd.Flags().String("scaffold", "", "scaffold name to retrieve")
	getCmd.Flags().Int("width", scaffold.DefaultLineWidth,
		"sequence line width, 0 disables wrapping")
	_ = getCmd.MarkFlagRequired("index")
	_ = getCmd.MarkFlagRequired("scaffold")

	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	svc, err := newService(logger)
	if err != nil {
		return err
	}

	req := scaffold.Request{}
	req.Index, _ = cmd.Flags().GetString("index")
	req.Scaffold, _ = cmd.Flags().GetString("scaffold")
	if cmd.Flags().Changed("width") {
		width, _ := cmd.Flags().GetInt("width")
		req.LineWidth = &width
	}

	outcomes, err := svc.Run(cmd.Context(), req)
	if err != nil {
		return err
	}

	for _, o := range outcomes {
		if o.Succeeded() {
			_, err := os.Stdout.Write(o.Result)
			return err
		}
	}

	for _, o := range outcomes {
		if o.Error != "" {
			return fmt.Errorf("retrieve %s from %s: %s", req.Scaffold, req.Index, o.Error)
		}
	}
	return fmt.Errorf("retrieve %s from %s: no outcome", req.Scaffold, req.Index)
}
