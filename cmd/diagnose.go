package cmd

import (
	"context"
	"os"

	"hampter-link/internal/adapter/diag"
	"hampter-link/internal/adapter/infrastructure/command"
	"hampter-link/internal/adapter/infrastructure/firewall"
	infraWireless "hampter-link/internal/adapter/infrastructure/wireless"
	"hampter-link/internal/pkg/exitcode"
	"hampter-link/internal/pkg/logging"
	"hampter-link/internal/port"

	"github.com/spf13/cobra"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose <interface> <target_ip>",
	Short: "Print a connectivity report for an interface and ping a peer",
	Long: `Prints five sections: interface addresses, wireless mode, link info,
the head of the firewall filter rules, and the result of pinging the target
over the interface. The exit code is the ping command's exit code.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		logger := logging.GetLogger()

		var firewallMgr port.FirewallManager
		if mgr, err := firewall.NewManagerAdapter(); err != nil {
			logger.WithError(err).Warn("Firewall inspection unavailable")
		} else {
			firewallMgr = mgr
		}

		reporter, err := diag.NewReporter(args[0], args[1],
			infraWireless.NewClientAdapter(), firewallMgr, command.NewRunnerAdapter())
		if err != nil {
			logger.WithError(err).Error("Invalid arguments")
			os.Exit(1)
		}

		if err := reporter.Run(context.Background()); err != nil {
			os.Exit(exitcode.FromError(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)
}
