package config

import (
	"code.cloudfoundry.org/lager/v3"
	errorspkg "github.com/pkg/errors"
)

const (
	DefaultZFSBin   = "zfs"
	DefaultZpoolBin = "zpool"
	DefaultLogLevel = "info"
)

type Builder struct {
	config *Config
}

// NewBuilder starts from the config file when one is given. Values set with
// the With* methods take precedence over the file.
func NewBuilder(pathToYaml string) (*Builder, error) {
	config := Config{}

	if pathToYaml != "" {
		var err error
		config, err = Load(pathToYaml)
		if err != nil {
			return nil, err
		}
	}

	return &Builder{
		config: &config,
	}, nil
}

func (b *Builder) Build() (Config, error) {
	config := *b.config

	if config.ZFSBin == "" {
		config.ZFSBin = DefaultZFSBin
	}
	if config.ZpoolBin == "" {
		config.ZpoolBin = DefaultZpoolBin
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}

	if _, err := lager.LogLevelFromString(config.LogLevel); err != nil {
		return config, errorspkg.Errorf("invalid argument: log level `%s` is not one of debug, info, error, fatal", config.LogLevel)
	}

	if config.SlowCommandThresholdSeconds < 0 {
		return config, errorspkg.New("invalid argument: slow command threshold cannot be negative")
	}

	return config, nil
}

func (b *Builder) WithZFSBin(zfsBin string, isSet bool) *Builder {
	if isSet || b.config.ZFSBin == "" {
		b.config.ZFSBin = zfsBin
	}
	return b
}

func (b *Builder) WithZpoolBin(zpoolBin string, isSet bool) *Builder {
	if isSet || b.config.ZpoolBin == "" {
		b.config.ZpoolBin = zpoolBin
	}
	return b
}

func (b *Builder) WithPlatform(platform string) *Builder {
	if platform == "" {
		return b
	}

	b.config.Platform = platform
	return b
}

func (b *Builder) WithMetronEndpoint(metronEndpoint string) *Builder {
	if metronEndpoint == "" {
		return b
	}

	b.config.MetronEndpoint = metronEndpoint
	return b
}

func (b *Builder) WithLogLevel(level string) *Builder {
	if level == "" {
		return b
	}

	b.config.LogLevel = level
	return b
}

func (b *Builder) WithLogFile(filepath string) *Builder {
	if filepath == "" {
		return b
	}

	b.config.LogFile = filepath
	return b
}

func (b *Builder) WithSlowCommandThreshold(seconds int, isSet bool) *Builder {
	if !isSet {
		return b
	}

	b.config.SlowCommandThresholdSeconds = seconds
	return b
}
