package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/stakestar/avaxtracker/cli/dashboard"
)

var RootCmd = &cobra.Command{
	Use:   "avaxtracker",
	Short: "avaxtracker",
	Long:  `avaxtracker serves a dashboard with uptime, stake and location of Avalanche validators`,
}

func Execute(appName, version string) {
	RootCmd.Short = appName
	RootCmd.Version = version

	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("failed to execute root command: %v", err)
	}
}

func init() {
	RootCmd.AddCommand(dashboard.StartDashboardCmd)
}
