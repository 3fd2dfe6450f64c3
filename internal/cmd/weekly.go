package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"example.com/mindful-money/insights/internal/baseline"
	"example.com/mindful-money/insights/internal/config"
	"example.com/mindful-money/insights/internal/correlation"
	"example.com/mindful-money/insights/internal/insight"
	"example.com/mindful-money/insights/internal/parser"
	"example.com/mindful-money/insights/internal/report"
)

var (
	weeklyInput         string
	weeklyFormat        string
	weeklyBaselineWeeks int
)

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Generate the weekly insight report",
	Long: `Read a check-in history file, correlate wellness metrics with spending,
and print up to five prioritized insights for the newest week.`,
	RunE: runWeekly,
}

func init() {
	rootCmd.AddCommand(weeklyCmd)

	weeklyCmd.Flags().StringVarP(&weeklyInput, "input", "i", "", "Path to the check-in history JSON file")
	weeklyCmd.Flags().StringVarP(&weeklyFormat, "format", "f", "", "Report format: text or json (default from config)")
	weeklyCmd.Flags().IntVar(&weeklyBaselineWeeks, "baseline-weeks", 0, "How many previous weeks feed the baselines (0 = all)")
	_ = weeklyCmd.MarkFlagRequired("input")
}

func runWeekly(cmd *cobra.Command, args []string) error {
	history, err := parser.New().LoadHistory(weeklyInput)
	if err != nil {
		return err
	}

	if len(history) == 0 {
		return fmt.Errorf("history %s contains no check-ins", weeklyInput)
	}

	current, previous := history[0], history[1:]

	baselineWeeks := previous
	if weeklyBaselineWeeks > 0 && len(baselineWeeks) > weeklyBaselineWeeks {
		baselineWeeks = baselineWeeks[:weeklyBaselineWeeks]
	}

	baselines := baseline.Compute(baselineWeeks)

	engine := correlation.NewEngine(cfg.Engine.MinWeeks)
	correlations := engine.Compute(history)

	insights := insight.NewGenerator().GenerateWeekly(current, previous, correlations, baselines)

	weekly := report.Build(len(history), insights, correlations)

	return writeReport(cmd, weekly)
}

func writeReport(cmd *cobra.Command, weekly report.WeeklyReport) error {
	format := cfg.Report.Format
	if weeklyFormat != "" {
		format = strings.ToLower(weeklyFormat)
	}

	switch format {
	case config.FormatJSON:
		payload, err := weekly.JSON()
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(payload))
		return nil
	case config.FormatText:
		fmt.Fprint(cmd.OutOrStdout(), weekly.Text())
		return nil
	default:
		return fmt.Errorf("unknown report format: %s", format)
	}
}
