package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/semsphy/lift/config"
	"github.com/semsphy/lift/construct"
	"github.com/semsphy/lift/database"
	"github.com/semsphy/lift/logger"
	"github.com/semsphy/lift/network"
	"github.com/semsphy/lift/provider"
)

var (
	cmdInfo = &cobra.Command{
		Use:          "info",
		Short:        "Show the resolved resource declarations for a stack",
		Long:         ``,
		RunE:         runCmdInfo,
		SilenceUsage: true,
	}
)

func init() {
	RootCmd.AddCommand(cmdInfo)
}

func runCmdInfo(_ *cobra.Command, _ []string) error {
	stack, err := config.StackFromFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read stack config")
	}

	p, err := provider.FromStack(stack)
	if err != nil {
		return err
	}

	logger.Headingf("Stack %s (%s)", stack.Name, stack.Region)
	for _, id := range p.ConstructIDs() {
		c, _ := p.Construct(id)
		printConstruct(id, c)
	}
	return nil
}

func printConstruct(id string, c construct.Construct) {
	logger.Infof("%s (%s)", id, c.Kind())

	switch v := c.(type) {
	case *database.Database:
		d := v.Descriptor()
		logger.Infof("  identifier:       %s", d.Identifier)
		logger.Infof("  database name:    %s", d.DatabaseName)
		logger.Infof("  engine:           %s %s", d.Engine.Engine, d.Engine.Version)
		logger.Infof("  instance class:   %s", d.InstanceClass)
		logger.Infof("  storage:          %d GB", d.StorageGB)
		logger.Infof("  subnets:          %s", strings.Join(d.SubnetIDs, ", "))
		logger.Infof("  backup retention: %d days", d.BackupRetentionDays)
	case *network.Vpc:
		d := v.Descriptor()
		logger.Infof("  availability zones: %d", d.AvailabilityZones)
		logger.Infof("  security group:     %s", d.SecurityGroup.Name)
		logger.Infof("  private subnets:    %s", strings.Join(d.PrivateSubnetIDs, ", "))
	}

	for name, handle := range c.References() {
		logger.Infof("  ref %s -> %s/%s", name, handle.Stack, handle.Output)
	}
}
