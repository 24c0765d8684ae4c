package commands

import (
	"fmt"
	"strings"
	"time"

	"code.cloudfoundry.org/commandrunner/linux_command_runner"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/zfsvol/commands/config"
	"code.cloudfoundry.org/zfsvol/metrics"
	"code.cloudfoundry.org/zfsvol/metrics/systemreporter"
	"code.cloudfoundry.org/zfsvol/zfs"
	errorspkg "github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func loadConfig(ctx *cli.Context, logger lager.Logger) (config.Config, error) {
	configBuilder := ctx.App.Metadata["configBuilder"].(*config.Builder)
	cfg, err := configBuilder.Build()
	logger.Debug("current-config", lager.Data{"currentConfig": cfg})
	if err != nil {
		logger.Error("config-builder-failed", err)
		return cfg, err
	}

	return cfg, nil
}

func newProvider(cfg config.Config) (*zfs.Provider, error) {
	runner := linux_command_runner.New()

	threshold := time.Duration(cfg.SlowCommandThresholdSeconds) * time.Second
	reporter := systemreporter.NewLogBased(threshold, cfg.ZpoolBin, runner)

	metricsEmitter, err := metrics.NewEmitter(cfg.MetronEndpoint, reporter)
	if err != nil {
		return nil, errorspkg.Wrap(err, "initializing metrics")
	}

	var platform zfs.Platform = zfs.NewHostPlatform()
	if cfg.Platform != "" {
		platform = zfs.StaticPlatform(cfg.Platform)
	}

	return zfs.NewProvider(cfg.ZFSBin, runner, platform, metricsEmitter), nil
}

func checkArgs(ctx *cli.Context, logger lager.Logger, n int) error {
	if ctx.NArg() == n {
		return nil
	}

	logger.Error("parsing-command", errorspkg.New("invalid arguments"), lager.Data{"args": ctx.Args().Slice()})
	return cli.Exit(fmt.Sprintf("invalid arguments - usage: %s", ctx.Command.Usage), 1)
}

// parseAssignment splits `property=value` on the first `=`.
func parseAssignment(assignment string) (string, string, error) {
	name, value, ok := strings.Cut(assignment, "=")
	if !ok || name == "" {
		return "", "", errorspkg.Errorf("invalid property assignment `%s`, expected <property>=<value>", assignment)
	}

	return name, value, nil
}
