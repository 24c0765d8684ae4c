package commands

import (
	"fmt"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/zfsvol/manifest"
	"code.cloudfoundry.org/zfsvol/reconciler"

	"github.com/urfave/cli/v2"
)

var ApplyCommand = cli.Command{
	Name:        "apply",
	Usage:       "apply <manifest.yml>",
	Description: "Brings every volume in the manifest to its desired state",

	Action: func(ctx *cli.Context) error {
		logger := ctx.App.Metadata["logger"].(lager.Logger)
		logger = logger.Session("apply")

		if err := checkArgs(ctx, logger, 1); err != nil {
			return err
		}

		desired, err := manifest.Load(ctx.Args().First())
		if err != nil {
			logger.Error("loading-manifest", err)
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

		// volumes are independent: one failure does not stop the rest
		failed := []string{}
		r := reconciler.New(provider)
		for _, volume := range desired.Volumes {
			report, err := r.Apply(logger, volume)
			if err != nil {
				logger.Error("applying-volume-failed", err, lager.Data{"name": volume.Name})
				fmt.Fprintf(ctx.App.ErrWriter, "%s\n", err.Error())
				failed = append(failed, volume.Name)
				continue
			}

			printReport(ctx, report)
		}

		if len(failed) > 0 {
			return cli.Exit(fmt.Sprintf("failed to apply: %s", strings.Join(failed, ", ")), 1)
		}

		return nil
	},
}

func printReport(ctx *cli.Context, report reconciler.Report) {
	fmt.Fprintf(ctx.App.Writer, "%s: %s\n", report.Name, report.Action)
	for _, change := range report.Changes {
		if change.Unavailable {
			fmt.Fprintf(ctx.App.Writer, "  %s: unavailable\n", change.Property)
			continue
		}
		fmt.Fprintf(ctx.App.Writer, "  %s: %s -> %s\n", change.Property, change.From, change.To)
	}
}
