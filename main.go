package main

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/zfsvol/commands"
	"code.cloudfoundry.org/zfsvol/commands/config"

	"github.com/urfave/cli/v2"
)

func main() {
	zfsvol := cli.NewApp()
	zfsvol.Name = "zfsvol"
	zfsvol.Usage = "Manage zfs datasets and volumes"
	zfsvol.Version = "0.1.0"

	zfsvol.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to config file",
		},
		&cli.StringFlag{
			Name:  "zfs-bin",
			Usage: "Path to the zfs binary",
			Value: config.DefaultZFSBin,
		},
		&cli.StringFlag{
			Name:  "zpool-bin",
			Usage: "Path to the zpool binary",
			Value: config.DefaultZpoolBin,
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Set logging level <debug|info|error|fatal>",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "File to write logs to. Using this option sets the log level to `info` if --log-level is not specified.",
		},
		&cli.StringFlag{
			Name:  "platform",
			Usage: "Kernel name to assume instead of asking the host, e.g.: FreeBSD",
		},
		&cli.StringFlag{
			Name:  "metron-endpoint",
			Usage: "Metron endpoint used to send metrics",
		},
		&cli.IntFlag{
			Name:  "slow-command-threshold",
			Usage: "Seconds a zfs command may take before the host state is logged. 0 disables it",
		},
	}

	zfsvol.Commands = []*cli.Command{
		&commands.ListCommand,
		&commands.ExistsCommand,
		&commands.CreateCommand,
		&commands.DestroyCommand,
		&commands.GetCommand,
		&commands.SetCommand,
		&commands.ApplyCommand,
	}

	zfsvol.Before = func(ctx *cli.Context) error {
		cfgBuilder, err := config.NewBuilder(ctx.String("config"))
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		ctx.App.Metadata["configBuilder"] = cfgBuilder

		cfg, err := cfgBuilder.WithZFSBin(ctx.String("zfs-bin"), ctx.IsSet("zfs-bin")).
			WithZpoolBin(ctx.String("zpool-bin"), ctx.IsSet("zpool-bin")).
			WithPlatform(ctx.String("platform")).
			WithMetronEndpoint(ctx.String("metron-endpoint")).
			WithLogLevel(ctx.String("log-level")).
			WithLogFile(ctx.String("log-file")).
			WithSlowCommandThreshold(ctx.Int("slow-command-threshold"), ctx.IsSet("slow-command-threshold")).
			Build()
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		logger, err := configureLogger(cfg)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		ctx.App.Metadata["logger"] = logger

		return nil
	}

	if err := zfsvol.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func configureLogger(cfg config.Config) (lager.Logger, error) {
	logLevel, err := lager.LogLevelFromString(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	logWriter := os.Stderr
	if cfg.LogFile != "" {
		logWriter, err = os.OpenFile(cfg.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
	}

	logger := lager.NewLogger("zfsvol")
	logger.RegisterSink(lager.NewWriterSink(logWriter, logLevel))

	return logger, nil
}
