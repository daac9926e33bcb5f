package command

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/tidepool-org/glucolog/analytics"
	"github.com/tidepool-org/glucolog/readings"
)

var trendsWindow string

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Print the trend summary for a time window",
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := analytics.ParseWindow(trendsWindow)
		if err != nil {
			return err
		}

		return Run(func(svc readings.Service) error {
			history, err := svc.GetAll(context.Background())
			if err != nil {
				return err
			}

			summary, err := analytics.Summarize(history, window, time.Now())
			if err != nil {
				return err
			}

			fmt.Printf("Window: %s\n", summary.Window)
			fmt.Printf("Readings: %d\n", summary.Count)
			if summary.Count == 0 {
				fmt.Println("No readings in the selected window")
				return nil
			}

			fmt.Printf("Mean: %.1f mg/dL\n", *summary.Mean)
			fmt.Printf("Standard deviation: %.1f mg/dL\n", *summary.StdDev)
			fmt.Printf("Minimum: %.1f mg/dL\n", *summary.Min)
			fmt.Printf("Maximum: %.1f mg/dL\n", *summary.Max)

			hours := make([]int, 0, len(summary.HourlyMeans))
			for hour := range summary.HourlyMeans {
				hours = append(hours, hour)
			}
			sort.Ints(hours)
			for _, hour := range hours {
				fmt.Printf("%02d:00  %.1f mg/dL\n", hour, summary.HourlyMeans[hour])
			}
			return nil
		})
	},
}

func init() {
	trendsCmd.Flags().StringVar(&trendsWindow, "window", string(analytics.WindowAllTime), "Time window (last_7_days, last_30_days, all_time)")
	rootCmd.AddCommand(trendsCmd)
}
