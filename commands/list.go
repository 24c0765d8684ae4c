package commands // import "code.cloudfoundry.org/zfsvol/commands"

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"

	"github.com/urfave/cli/v2"
)

var ListCommand = cli.Command{
	Name:        "list",
	Usage:       "list",
	Description: "Lists every dataset and volume known to zfs",

	Action: func(ctx *cli.Context) error {
		logger := ctx.App.Metadata["logger"].(lager.Logger)
		logger = logger.Session("list")

		if err := checkArgs(ctx, logger, 0); err != nil {
			return err
		}

		cfg, err := loadConfig(ctx, logger)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		provider, err := newProvider(cfg)
		if err != nil {
			logger.Error("creating-provider", err)
			return cli.Exit(err.Error(), 1)
		}

		resources, err := provider.Instances(logger)
		if err != nil {
			logger.Error("listing-datasets", err)
			return cli.Exit(fmt.Sprintf("Failed to retrieve list of datasets: %s", err.Error()), 1)
		}

		for _, resource := range resources {
			fmt.Fprintln(ctx.App.Writer, resource.Name)
		}

		return nil
	},
}
