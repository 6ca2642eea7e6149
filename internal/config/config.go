// Package config loads pipetable settings from a YAML file, PIPETABLE_*
// environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/pipetable/internal/logger"
	"github.com/iw2rmb/pipetable/table"
	"github.com/iw2rmb/pipetable/tableeditor"
)

// EnvPrefix prefixes every environment override, e.g. PIPETABLE_FORMAT_TYPE.
const EnvPrefix = "PIPETABLE"

// Config represents the root configuration structure
type Config struct {
	MinDelimiterWidth int             `mapstructure:"min_delimiter_width" yaml:"min_delimiter_width"`
	DefaultAlignment  string          `mapstructure:"default_alignment" yaml:"default_alignment"`
	HeaderAlignment   string          `mapstructure:"header_alignment" yaml:"header_alignment"`
	FormatType        string          `mapstructure:"format_type" yaml:"format_type"`
	LeftMarginChars   string          `mapstructure:"left_margin_chars" yaml:"left_margin_chars"`
	SmartCursor       bool            `mapstructure:"smart_cursor" yaml:"smart_cursor"`
	TextWidth         TextWidthConfig `mapstructure:"text_width" yaml:"text_width"`
	Log               LogConfig       `mapstructure:"log" yaml:"log"`
}

// TextWidthConfig controls how cell text is measured.
type TextWidthConfig struct {
	Normalize       bool   `mapstructure:"normalize" yaml:"normalize"`
	WideChars       string `mapstructure:"wide_chars" yaml:"wide_chars"`
	NarrowChars     string `mapstructure:"narrow_chars" yaml:"narrow_chars"`
	AmbiguousAsWide bool   `mapstructure:"ambiguous_as_wide" yaml:"ambiguous_as_wide"`
}

// LogConfig holds logging settings. An empty path means the logger default.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	Path  string `mapstructure:"path" yaml:"path"`
}

// Load reads configuration. With an empty path it looks for config.yaml in
// ~/.config/pipetable and the working directory, and a missing file is not
// an error. An explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("$HOME/.config/pipetable")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	v := viper.New()
	applyDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// applyDefaults sets default configuration values
func applyDefaults(v *viper.Viper) {
	d := table.DefaultFormatOptions()
	v.SetDefault("min_delimiter_width", d.MinDelimiterWidth)
	v.SetDefault("default_alignment", d.DefaultAlignment.String())
	v.SetDefault("header_alignment", d.HeaderAlignment.String())
	v.SetDefault("format_type", d.FormatType.String())
	v.SetDefault("left_margin_chars", "")
	v.SetDefault("smart_cursor", false)

	v.SetDefault("text_width.normalize", d.TextWidth.Normalize)
	v.SetDefault("text_width.wide_chars", d.TextWidth.WideChars)
	v.SetDefault("text_width.narrow_chars", d.TextWidth.NarrowChars)
	v.SetDefault("text_width.ambiguous_as_wide", d.TextWidth.AmbiguousAsWide)

	v.SetDefault("log.level", logger.LevelInfo.String())
	v.SetDefault("log.path", "")
}

// Validate reports every invalid value.
func (c *Config) Validate() error {
	_, err := c.TableOptions()
	if _, lerr := logger.ParseLevel(c.Log.Level); lerr != nil {
		err = errors.Join(err, fmt.Errorf("log.level: %w", lerr))
	}
	return err
}

// TableOptions converts the configuration into table editor options.
func (c *Config) TableOptions() (tableeditor.Options, error) {
	var errs []error
	def, err := table.ParseAlignment(c.DefaultAlignment)
	if err != nil {
		errs = append(errs, fmt.Errorf("default_alignment: %w", err))
	}
	header, err := table.ParseHeaderAlignment(c.HeaderAlignment)
	if err != nil {
		errs = append(errs, fmt.Errorf("header_alignment: %w", err))
	}
	ft, err := table.ParseFormatType(c.FormatType)
	if err != nil {
		errs = append(errs, fmt.Errorf("format_type: %w", err))
	}
	if len(errs) > 0 {
		return tableeditor.Options{}, errors.Join(errs...)
	}

	opts := tableeditor.Options{
		FormatOptions: table.FormatOptions{
			FormatType:        ft,
			MinDelimiterWidth: c.MinDelimiterWidth,
			DefaultAlignment:  def,
			HeaderAlignment:   header,
			TextWidth: table.TextWidthOptions{
				Normalize:       c.TextWidth.Normalize,
				WideChars:       c.TextWidth.WideChars,
				NarrowChars:     c.TextWidth.NarrowChars,
				AmbiguousAsWide: c.TextWidth.AmbiguousAsWide,
			},
		},
		LeftMarginChars: c.LeftMarginChars,
		SmartCursor:     c.SmartCursor,
	}
	if err := opts.Validate(); err != nil {
		return tableeditor.Options{}, err
	}
	return opts, nil
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() (logger.Level, error) {
	return logger.ParseLevel(c.Log.Level)
}

// YAML renders the configuration as it would appear in config.yaml.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
