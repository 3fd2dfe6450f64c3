package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"example.com/mindful-money/insights/internal/baseline"
	"example.com/mindful-money/insights/internal/parser"
)

var baselinesInput string

var baselinesCmd = &cobra.Command{
	Use:   "baselines",
	Short: "Print average spending baselines as JSON",
	Long: `Compute per-category and total spending averages over the full check-in
history and print them as JSON, the way the weekly report consumes them.`,
	RunE: runBaselines,
}

func init() {
	rootCmd.AddCommand(baselinesCmd)

	baselinesCmd.Flags().StringVarP(&baselinesInput, "input", "i", "", "Path to the check-in history JSON file")
	_ = baselinesCmd.MarkFlagRequired("input")
}

func runBaselines(cmd *cobra.Command, args []string) error {
	history, err := parser.New().LoadHistory(baselinesInput)
	if err != nil {
		return err
	}

	baselines := baseline.Compute(history)

	payload, err := json.MarshalIndent(baselines, "", "  ")
	if err != nil {
		return fmt.Errorf("encode baselines: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(payload))
	return nil
}
