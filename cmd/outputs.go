package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/semsphy/lift/awsconn"
	"github.com/semsphy/lift/config"
	"github.com/semsphy/lift/logger"
	"github.com/semsphy/lift/provider"
	"github.com/semsphy/lift/stackoutput"
)

var (
	cmdOutputs = &cobra.Command{
		Use:          "outputs",
		Short:        "Resolve and print the deployed stack's output values",
		Long:         ``,
		RunE:         runCmdOutputs,
		SilenceUsage: true,
	}

	outputsOpts = struct {
		awsDebug bool
	}{}
)

func init() {
	RootCmd.AddCommand(cmdOutputs)
	cmdOutputs.Flags().BoolVar(
		&outputsOpts.awsDebug,
		"aws-debug",
		false,
		"Log debug information from aws-sdk-go library",
	)
}

func runCmdOutputs(_ *cobra.Command, _ []string) error {
	stack, err := config.StackFromFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read stack config")
	}

	p, err := provider.FromStack(stack)
	if err != nil {
		return err
	}

	session, err := awsconn.NewSessionFromRegion(stack.Region, outputsOpts.awsDebug)
	if err != nil {
		return err
	}
	resolver := stackoutput.NewResolver(session)

	for _, binding := range p.OutputBindings() {
		value, found, err := resolver.Resolve(binding.Handle)
		if err != nil {
			return errors.Wrapf(err, "failed to resolve output %q", binding.Name)
		}
		if !found {
			logger.Infof("%s: (not yet available)", binding.Name)
			continue
		}
		logger.Infof("%s: %s", binding.Name, value)
	}
	return nil
}
