package config

import (
	"github.com/go-playground/validator/v10"

	"github.com/LoganBrinsmead/DRSB/logging"
)

// Preset is a named output size.
type Preset struct {
	Width  int `mapstructure:"width" json:"width" yaml:"width" validate:"gt=0"`
	Height int `mapstructure:"height" json:"height" yaml:"height" validate:"gt=0"`
}

// Presets holds the built-in output sizes.
type Presets struct {
	// Small is the default output size.
	Small Preset `mapstructure:"small" json:"small" yaml:"small" default:"{\"Width\": 576, \"Height\": 720}"`

	// Smallest is the reduced output size selected with --smallest.
	Smallest Preset `mapstructure:"smallest" json:"smallest" yaml:"smallest" default:"{\"Width\": 300, \"Height\": 420}"`
}

// Settings is the full tool configuration.
type Settings struct {
	// Quality is the encode quality on a 1-100 scale.
	Quality int `mapstructure:"quality" json:"quality" yaml:"quality" default:"95" validate:"min=1,max=100"`

	// OutputSuffix is appended to the input stem when no output path is given.
	OutputSuffix string `mapstructure:"output-suffix" json:"outputSuffix" yaml:"output-suffix" default:"_DRSB"`

	// Presets are the built-in output sizes.
	Presets Presets `mapstructure:"presets" json:"presets" yaml:"presets"`

	// Logging configures the diagnostic logger.
	Logging logging.Config `mapstructure:"logging" json:"logging" yaml:"logging"`
}

// Options controls where configuration is loaded from.
type Options struct {
	// File is an explicit config file path. Empty means search defaults.
	File string

	// FileName is the base name searched for when File is empty.
	FileName string

	// FileType is the config file format.
	FileType string

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix string
}

// Validate checks the settings for semantic errors.
func (s *Settings) Validate() error {
	return validate.Struct(s)
}

var validate = validator.New(validator.WithRequiredStructEnabled())
