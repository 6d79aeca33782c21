package cmd

import (
	"fmt"
	"os"

	"cookie-importer/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cookie-importer",
	Short: "Import exported cookies into Firefox",
	Long: `cookie-importer migrates cookies exported from another browser, as a
Netscape cookie jar or a JSON array, into the cookies.sqlite store of a
Firefox or Zen profile.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "Directory holding config.yaml and .env")
}
