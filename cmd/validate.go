package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/semsphy/lift/config"
	"github.com/semsphy/lift/logger"
	"github.com/semsphy/lift/provider"
)

var (
	cmdValidate = &cobra.Command{
		Use:          "validate",
		Short:        "Validate the stack config and declare every construct",
		Long:         ``,
		RunE:         runCmdValidate,
		SilenceUsage: true,
	}
)

func init() {
	RootCmd.AddCommand(cmdValidate)
}

func runCmdValidate(_ *cobra.Command, _ []string) error {
	stack, err := config.StackFromFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read stack config")
	}

	p, err := provider.FromStack(stack)
	if err != nil {
		return err
	}

	logger.Infof("Validation OK! Declared %d construct(s) for stack %q", len(p.ConstructIDs()), stack.Name)
	return nil
}
