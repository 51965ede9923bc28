package cmd

import (
	"context"
	"os"

	infraWireless "hampter-link/internal/adapter/infrastructure/wireless"
	"hampter-link/internal/adapter/status"
	"hampter-link/internal/pkg/exitcode"
	"hampter-link/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <interface>",
	Short: "Show parsed wireless link statistics for an interface",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := logging.GetLogger()

		reporter, err := status.NewReporter(args[0], infraWireless.NewClientAdapter())
		if err != nil {
			logger.WithError(err).Error("Invalid arguments")
			os.Exit(1)
		}

		if err := reporter.Run(context.Background()); err != nil {
			logger.WithError(err).Error("Status query failed")
			os.Exit(exitcode.FromError(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
