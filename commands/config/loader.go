package config

import (
	"os"

	errorspkg "github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	ZFSBin         string `yaml:"zfs_bin"`
	ZpoolBin       string `yaml:"zpool_bin"`
	Platform       string `yaml:"platform"`
	MetronEndpoint string `yaml:"metron_endpoint"`
	LogLevel       string `yaml:"log_level"`
	LogFile        string `yaml:"log_file"`

	SlowCommandThresholdSeconds int `yaml:"slow_command_threshold_seconds"`
}

func Load(configPath string) (Config, error) {
	configContent, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, errorspkg.Wrap(err, "invalid config path")
	}

	var config Config
	if err := yaml.Unmarshal(configContent, &config); err != nil {
		return Config{}, errorspkg.Wrap(err, "invalid config file")
	}

	return config, nil
}
