package cmd

import (
	"github.com/spf13/cobra"

	"github.com/semsphy/lift/logger"
)

var (
	RootCmd = &cobra.Command{
		Use:   "lift",
		Short: "Declare serverless constructs on AWS",
		Long:  ``,
	}

	configPath = "lift.yaml"
)

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", configPath, "Path to the stack config file")
	RootCmd.PersistentFlags().BoolVar(&logger.Silent, "silent", false, "Do not output any message")
	RootCmd.PersistentFlags().BoolVar(&logger.Verbose, "verbose", false, "Output debug messages")
	RootCmd.PersistentFlags().BoolVar(&logger.Color, "color", false, "Use color output")
}
