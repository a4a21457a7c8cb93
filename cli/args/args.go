package args

import (
	"github.com/spf13/cobra"
)

type GlobalArgs struct {
	ConfigPath string
	EnvFile    string
	LogLevel   string
}

func ProcessArgs(a *GlobalArgs, cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&a.ConfigPath, "config-path", "", "Config file path (JSON or YAML)")
	_ = cmd.MarkPersistentFlagRequired("config-path")

	cmd.PersistentFlags().StringVar(&a.EnvFile, "env-file", "", "Optional .env file loaded before the config")
	cmd.PersistentFlags().StringVarP(&a.LogLevel, "log-level", "l", "info", "Log level (debug, info, warn, error, fatal)")
}
