package commands

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"

	"github.com/urfave/cli/v2"
)

var ExistsCommand = cli.Command{
	Name:        "exists",
	Usage:       "exists <name>",
	Description: "Prints whether the named dataset or volume exists",

	Action: func(ctx *cli.Context) error {
		logger := ctx.App.Metadata["logger"].(lager.Logger)
		logger = logger.Session("exists")

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

		fmt.Fprintln(ctx.App.Writer, provider.Exists(logger, ctx.Args().First()))
		return nil
	},
}
