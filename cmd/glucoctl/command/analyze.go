package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidepool-org/glucolog/analytics"
	"github.com/tidepool-org/glucolog/readings"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the glucose pattern analysis over the stored history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(svc readings.Service) error {
			history, err := svc.GetAll(context.Background())
			if err != nil {
				return err
			}

			result := analytics.Analyze(history)
			fmt.Printf("Risk level: %s\n", result.RiskLevel)
			if result.Mean != nil && result.StdDev != nil {
				fmt.Printf("Mean: %.1f mg/dL, standard deviation: %.1f mg/dL\n", *result.Mean, *result.StdDev)
			}
			for _, recommendation := range result.Recommendations {
				fmt.Printf("- %s\n", recommendation)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
