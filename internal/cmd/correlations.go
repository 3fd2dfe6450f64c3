package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"example.com/mindful-money/insights/internal/correlation"
	"example.com/mindful-money/insights/internal/parser"
)

var correlationsInput string

var correlationsCmd = &cobra.Command{
	Use:   "correlations",
	Short: "Print wellness and spending correlations as JSON",
	Long: `Compute Pearson correlations between paired wellness and spending metrics
over the full check-in history and print the raw results as JSON.`,
	RunE: runCorrelations,
}

func init() {
	rootCmd.AddCommand(correlationsCmd)

	correlationsCmd.Flags().StringVarP(&correlationsInput, "input", "i", "", "Path to the check-in history JSON file")
	_ = correlationsCmd.MarkFlagRequired("input")
}

func runCorrelations(cmd *cobra.Command, args []string) error {
	history, err := parser.New().LoadHistory(correlationsInput)
	if err != nil {
		return err
	}

	engine := correlation.NewEngine(cfg.Engine.MinWeeks)
	results := engine.Compute(history)

	payload, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode correlations: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(payload))
	return nil
}
