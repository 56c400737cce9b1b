package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"envelope/internal/client"
)

var (
	reportFormat   string
	reportRange    string
	reportStart    string
	reportEnd      string
	reportDetailed bool
	reportOutput   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export a budget report",
	Long:  "Fetch a rendered report from a running server. Use --range with all, today, week, month, year or custom; the custom range needs both --start and --end (YYYY-MM-DD).",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		body, err := c.ExportReport(context.Background(), reportFormat, reportDetailed, reportRange, reportStart, reportEnd)
		if err != nil {
			return err
		}

		if reportOutput == "" {
			fmt.Print(string(body))
			return nil
		}
		if err := os.WriteFile(reportOutput, body, 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("Report written to %s\n", reportOutput)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "txt", "Output format (txt, csv)")
	reportCmd.Flags().StringVar(&reportRange, "range", "all", "Date range (all, today, week, month, year, custom)")
	reportCmd.Flags().StringVar(&reportStart, "start", "", "Custom range start date (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportEnd, "end", "", "Custom range end date (YYYY-MM-DD)")
	reportCmd.Flags().BoolVar(&reportDetailed, "detailed", true, "Include the transaction listing")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Write the report to a file instead of stdout")

	rootCmd.AddCommand(reportCmd)
}
