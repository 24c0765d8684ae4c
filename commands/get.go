package commands

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	errorspkg "github.com/pkg/errors"

	"github.com/urfave/cli/v2"
)

var GetCommand = cli.Command{
	Name:        "get",
	Usage:       "get [--resolve] <name> <property>",
	Description: "Prints the current value of a property, or - when the host does not support it",

	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "resolve",
			Usage: "Print the name zfs knows the property by on this host instead of its value",
		},
	},

	Action: func(ctx *cli.Context) error {
		logger := ctx.App.Metadata["logger"].(lager.Logger)
		logger = logger.Session("get")

		if err := checkArgs(ctx, logger, 2); err != nil {
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

		name, property := ctx.Args().Get(0), ctx.Args().Get(1)
		if ctx.Bool("resolve") {
			toolName, err := provider.ToolPropertyName(logger, property)
			if err != nil {
				logger.Error("resolving-property-name-failed", err)
				return cli.Exit(errorspkg.Wrapf(err, "resolving %s", property).Error(), 1)
			}

			fmt.Fprintln(ctx.App.Writer, toolName)
			return nil
		}

		value, err := provider.Get(logger, name, property)
		if err != nil {
			logger.Error("getting-property-failed", err)
			return cli.Exit(errorspkg.Wrapf(err, "getting %s of %s", property, name).Error(), 1)
		}

		fmt.Fprintln(ctx.App.Writer, value.String())
		return nil
	},
}
