package commands

import (
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/zfsvol/manifest"
	"code.cloudfoundry.org/zfsvol/zfs"
	errorspkg "github.com/pkg/errors"

	"github.com/urfave/cli/v2"
)

var CreateCommand = cli.Command{
	Name:        "create",
	Usage:       "create [--volsize <size>] [--property <property>=<value>]... <name>",
	Description: "Creates a dataset, or a volume when a volsize is given",

	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "volsize",
			Usage: "Size of the volume, e.g.: 10G",
		},
		&cli.StringSliceFlag{
			Name:  "property",
			Usage: "Property to set at creation time, e.g.: compression=lz4",
		},
	},

	Action: func(ctx *cli.Context) error {
		logger := ctx.App.Metadata["logger"].(lager.Logger)
		logger = logger.Session("create")

		if err := checkArgs(ctx, logger, 1); err != nil {
			return err
		}

		resource := zfs.Resource{
			Name:       ctx.Args().First(),
			Ensure:     zfs.Present,
			Properties: map[string]string{},
		}

		for _, assignment := range ctx.StringSlice("property") {
			name, value, err := parseAssignment(assignment)
			if err != nil {
				logger.Error("parsing-command", err)
				return cli.Exit(err.Error(), 1)
			}
			resource.Properties[name] = value
		}
		if ctx.IsSet("volsize") {
			resource.Properties[zfs.VolSizeProperty] = ctx.String("volsize")
		}

		if err := manifest.Validate(resource); err != nil {
			logger.Error("validating-resource", err)
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

		if err := provider.Create(logger, resource); err != nil {
			logger.Error("creating-dataset-failed", err)
			return cli.Exit(errorspkg.Wrapf(err, "creating %s", resource.Name).Error(), 1)
		}

		return nil
	},
}
