package cmd

import (
	"hampter-link/internal/pkg/config"
	"hampter-link/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	configFlag string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "hampter-link",
	Short: "hampter-link sets up and inspects the Hampter Link ad-hoc network",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
		logging.InitLogger(cfg.Logging)
		return nil
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML, optional)")
}
