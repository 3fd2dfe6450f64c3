package cmd

import (
	"github.com/spf13/cobra"

	"example.com/mindful-money/insights/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "insights",
	Short: "Weekly wellness and spending insights",
	Long: `insights turns weekly wellness check-ins into correlations and a short,
prioritized list of supportive observations about spending habits.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}

		cfg = loaded
		return nil
	},
}

// Execute запускает корневую команду CLI.
func Execute() error {
	return rootCmd.Execute()
}
