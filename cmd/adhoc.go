package cmd

import (
	"context"
	"os"
	"strconv"

	"hampter-link/internal/adapter/adhoc"
	"hampter-link/internal/adapter/infrastructure/netdaemon"
	"hampter-link/internal/adapter/infrastructure/network"
	infraWireless "hampter-link/internal/adapter/infrastructure/wireless"
	"hampter-link/internal/pkg/exitcode"
	"hampter-link/internal/pkg/logging"
	"hampter-link/internal/pkg/wireless"
	"hampter-link/internal/types"

	"github.com/spf13/cobra"
)

var adhocCmd = &cobra.Command{
	Use:   "adhoc <interface> <ip_address> [channel]",
	Short: "Bring an interface into ad-hoc (IBSS) mode with a static address",
	Long: `Brings the named wireless interface from whatever state it is in into
IBSS mode, assigns the given IPv4 address with a /16 prefix, and joins the
hampter-net cell on the frequency of the given 2.4 GHz channel (default 1).

The interface is marked unmanaged in NetworkManager first, when the daemon
is reachable. There is no rollback; on failure the interface is left in the
state the last successful step produced.`,
	Args: cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		logger := logging.GetLogger()

		channel := wireless.DefaultChannel
		if len(args) == 3 {
			parsed, err := strconv.Atoi(args[2])
			if err != nil {
				logger.Errorf("Invalid channel %q: %v", args[2], err)
				os.Exit(1)
			}
			channel = parsed
		}

		manager, err := adhoc.NewManager(types.AdHocConfig{
			Interface: args[0],
			Address:   args[1],
			Channel:   channel,
		}, network.NewManagerAdapter(), infraWireless.NewClientAdapter(), netdaemon.NewClientAdapter())
		if err != nil {
			logger.WithError(err).Error("Invalid configuration")
			os.Exit(1)
		}

		if err := manager.Configure(context.Background()); err != nil {
			logger.WithError(err).Error("Ad-hoc configuration failed")
			os.Exit(exitcode.FromError(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(adhocCmd)
}
