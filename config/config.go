package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/spf13/viper"

	apperrors "github.com/LoganBrinsmead/DRSB/errors"
)

// DefaultOptions returns the standard lookup locations: an explicit path via
// the DRSB_CONFIG environment variable, otherwise drsb.yaml in the current
// directory, with DRSB_-prefixed environment overrides.
func DefaultOptions() Options {
	return Options{
		File:      os.Getenv("DRSB_CONFIG"),
		FileName:  "drsb",
		FileType:  "yaml",
		EnvPrefix: "DRSB",
	}
}

// Load reads configuration according to opts and returns validated Settings.
// A missing config file is not an error; defaults apply.
func Load(optsArr ...Options) (*Settings, error) {
	var opts Options
	if len(optsArr) == 0 {
		opts = DefaultOptions()
	} else {
		opts = optsArr[0]
	}

	v, err := createViper(opts)
	if err != nil {
		return nil, err
	}

	settings := &Settings{}
	if err := defaults.Set(settings); err != nil {
		return nil, apperrors.NewConfig(err, "failed to set config defaults")
	}

	if err := v.Unmarshal(settings); err != nil {
		return nil, apperrors.NewConfig(err, fmt.Sprintf("failed to unmarshal config file %s", v.ConfigFileUsed()))
	}

	// Re-apply defaults so fields zeroed by a sparse config file recover.
	if err := defaults.Set(settings); err != nil {
		return nil, apperrors.NewConfig(err, "failed to set config defaults")
	}

	if err := settings.Validate(); err != nil {
		return nil, apperrors.NewConfig(err, "invalid configuration")
	}

	return settings, nil
}

// createViper builds the viper instance for opts.
func createViper(opts Options) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType(opts.FileType)
	setDefaults(v)

	if opts.EnvPrefix != "" {
		v.SetEnvPrefix(opts.EnvPrefix)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, apperrors.NewConfig(err, fmt.Sprintf("cannot read config file %s", opts.File))
		}
		return v, nil
	}

	v.SetConfigName(opts.FileName)
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, apperrors.NewConfig(err, "cannot read config file")
		}
	}

	return v, nil
}

// setDefaults registers every config key with viper so that environment
// overrides are visible to Unmarshal even without a config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("quality", 95)
	v.SetDefault("output-suffix", "_DRSB")
	v.SetDefault("presets.small.width", 576)
	v.SetDefault("presets.small.height", 720)
	v.SetDefault("presets.smallest.width", 300)
	v.SetDefault("presets.smallest.height", 420)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
}
