package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hampter-link/internal/adapter/discovery"
	"hampter-link/internal/adapter/infrastructure/network"
	"hampter-link/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var discoverCmd = &cobra.Command{
	Use:   "discover <interface>",
	Short: "Broadcast presence beacons and listen for peers on the ad-hoc network",
	Long: `Broadcasts a presence beacon on the interface's subnet broadcast address
and logs every peer whose beacon is heard. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := logging.GetLogger()

		service, err := discovery.NewService(args[0], cfg.Discovery, network.NewManagerAdapter())
		if err != nil {
			logger.WithError(err).Error("Invalid arguments")
			os.Exit(1)
		}

		// Create context for graceful shutdown
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigChan
			logger.WithField("signal", sig.String()).Info("Received shutdown signal")
			cancel()
		}()

		if err := service.Run(ctx); err != nil && err != context.Canceled {
			logger.WithError(err).Error("Peer discovery failed")
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}
