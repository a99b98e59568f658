package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigName is looked up in the working directory when no
	// --config flag is given, with any extension viper understands.
	DefaultConfigName = ".confdiff"
	EnvPrefix         = "CONFDIFF"
)

// Settings are the knobs shared by every command. Paths of the compared
// documents are not settings; they always come from the command line.
type Settings struct {
	Format        string `mapstructure:"format" validate:"oneof=text json yaml"`
	Color         string `mapstructure:"color" validate:"oneof=auto always never"`
	Order         string `mapstructure:"order" validate:"oneof=hierarchical lexical"`
	InputFormat   string `mapstructure:"input_format" validate:"oneof=auto yaml json toml"`
	StringDiff    bool   `mapstructure:"string_diff"`
	Output        string `mapstructure:"output"`
	LogLevel      string `mapstructure:"log_level" validate:"loglevel"`
	LogFormat     string `mapstructure:"log_format" validate:"oneof=console json"`
	LogFile       string `mapstructure:"log_file"`
	LogMaxSizeMB  int    `mapstructure:"log_max_size_mb" validate:"gte=0"`
	LogMaxBackups int    `mapstructure:"log_max_backups" validate:"gte=0"`
}

// flagKeys maps command line flag names to settings keys.
var flagKeys = map[string]string{
	"format":       "format",
	"color":        "color",
	"order":        "order",
	"input-format": "input_format",
	"string-diff":  "string_diff",
	"output":       "output",
	"log-level":    "log_level",
	"log-file":     "log_file",
}

func Defaults() Settings {
	return Settings{
		Format:        "text",
		Color:         "auto",
		Order:         "hierarchical",
		InputFormat:   "auto",
		LogLevel:      "warn",
		LogFormat:     "console",
		LogMaxSizeMB:  10,
		LogMaxBackups: 3,
	}
}

// RegisterFlags adds the settings flags to a command's flag set.
func RegisterFlags(flags *pflag.FlagSet) {
	d := Defaults()
	flags.StringP("format", "f", d.Format, "Report format (text, json, yaml)")
	flags.String("color", d.Color, "Colorize the report (auto, always, never)")
	flags.String("order", d.Order, "Path ordering (hierarchical, lexical)")
	flags.String("input-format", d.InputFormat, "Input format (auto, yaml, json, toml)")
	flags.Bool("string-diff", d.StringDiff, "Show a line diff for modified multi-line strings")
	flags.String("output", d.Output, "Write the report to a file instead of stdout")
	flags.String("log-level", d.LogLevel, "Log level (debug, info, warn, error)")
	flags.String("log-file", d.LogFile, "Also write logs to this file, rotated by size")
}

// Load merges defaults, the config file, CONFDIFF_* environment variables
// and explicitly set flags, in increasing order of precedence. A missing
// default config file is fine; a missing file named with --config is not.
func Load(flags *pflag.FlagSet, configFile string) (*Settings, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("format", d.Format)
	v.SetDefault("color", d.Color)
	v.SetDefault("order", d.Order)
	v.SetDefault("input_format", d.InputFormat)
	v.SetDefault("string_diff", d.StringDiff)
	v.SetDefault("output", d.Output)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_max_size_mb", d.LogMaxSizeMB)
	v.SetDefault("log_max_backups", d.LogMaxBackups)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}

	if err := Validate(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Validate checks enumerated settings against their allowed values.
func Validate(s *Settings) error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("mapstructure")
	})

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
			return true
		default:
			return false
		}
	})

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("validating settings: %w", err)
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		msg := fmt.Sprintf("invalid %s %q", fe.Field(), fmt.Sprint(fe.Value()))
		if fe.Tag() == "oneof" {
			msg += fmt.Sprintf(" (must be one of: %s)", strings.ReplaceAll(fe.Param(), " ", ", "))
		}
		msgs = append(msgs, msg)
	}
	return fmt.Errorf("invalid settings: %s", strings.Join(msgs, "; "))
}
