package commands

import (
	"code.cloudfoundry.org/lager/v3"
	errorspkg "github.com/pkg/errors"

	"github.com/urfave/cli/v2"
)

var DestroyCommand = cli.Command{
	Name:        "destroy",
	Usage:       "destroy <name>",
	Description: "Destroys a dataset or volume",

	Action: func(ctx *cli.Context) error {
		logger := ctx.App.Metadata["logger"].(lager.Logger)
		logger = logger.Session("destroy")

		if err := checkArgs(ctx, logger, 1); err != nil {
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

		name := ctx.Args().First()
		if err := provider.Destroy(logger, name); err != nil {
			logger.Error("destroying-dataset-failed", err)
			return cli.Exit(errorspkg.Wrapf(err, "destroying %s", name).Error(), 1)
		}

		return nil
	},
}
