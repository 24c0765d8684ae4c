package commands

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	errorspkg "github.com/pkg/errors"

	"github.com/urfave/cli/v2"
)

var SetCommand = cli.Command{
	Name:        "set",
	Usage:       "set <name> <property>=<value>",
	Description: "Sets a property. Prints - when the host does not support it",

	Action: func(ctx *cli.Context) error {
		logger := ctx.App.Metadata["logger"].(lager.Logger)
		logger = logger.Session("set")

		if err := checkArgs(ctx, logger, 2); err != nil {
			return err
		}

		name := ctx.Args().Get(0)
		property, value, err := parseAssignment(ctx.Args().Get(1))
		if err != nil {
			logger.Error("parsing-command", err)
			return cli.Exit(err.Error(), 1)
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

		result, err := provider.Set(logger, name, property, value)
		if err != nil {
			logger.Error("setting-property-failed", err)
			return cli.Exit(errorspkg.Wrapf(err, "setting %s of %s", property, name).Error(), 1)
		}

		if result.Unavailable {
			fmt.Fprintln(ctx.App.Writer, result.String())
		}
		return nil
	},
}
