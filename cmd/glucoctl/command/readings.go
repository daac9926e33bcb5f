package command

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tidepool-org/glucolog/pointer"
	"github.com/tidepool-org/glucolog/readings"
	"github.com/tidepool-org/glucolog/store"
)

var readingsLimit int

var readingsCmd = &cobra.Command{
	Use:   "readings",
	Short: "List the most recent glucose readings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(svc readings.Service) error {
			list, err := svc.List(context.Background(), store.Pagination{Limit: readingsLimit})
			if err != nil {
				return err
			}
			for _, reading := range list {
				fmt.Printf("%s  %3d mg/dL  %s\n", reading.Timestamp.Format(time.RFC3339), reading.Value, pointer.ToString(reading.Notes))
			}
			return nil
		})
	},
}

func init() {
	readingsCmd.Flags().IntVar(&readingsLimit, "limit", 10, "Maximum number of readings to list")
	rootCmd.AddCommand(readingsCmd)
}
