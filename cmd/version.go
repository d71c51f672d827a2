package cmd

import (
	"github.com/spf13/cobra"

	"github.com/semsphy/lift/logger"
	"github.com/semsphy/lift/provider"
)

var (
	cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print version information and exit",
		Long:  ``,
		Run:   runCmdVersion,
	}
)

func init() {
	RootCmd.AddCommand(cmdVersion)
}

func runCmdVersion(_ *cobra.Command, _ []string) {
	logger.Infof("lift version %s\n", provider.VERSION)
}
