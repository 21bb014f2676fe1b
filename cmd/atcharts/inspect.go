package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iafilius/AgentTrainingCharts/src/analysis"
	"github.com/iafilius/AgentTrainingCharts/src/trainlog"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <log-file>",
		Short: "Parse one training log and print its columns and run summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := trainlog.ParseFile(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d row(s), %d column(s)\n", args[0], tbl.Rows(), len(tbl.Labels))
			for _, label := range tbl.Labels {
				col := tbl.Columns[label]
				fmt.Printf("  %-20s %s\n", label, col.Kind)
			}
			sum, err := analysis.Summarize(tbl)
			if err != nil {
				return fmt.Errorf("summarize: %w", err)
			}
			fmt.Println(sum)
			return nil
		},
	}
}
