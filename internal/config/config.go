package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/artche/aikit/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognised configuration keys.
const (
	KeySource   = "source"
	KeyIgnore   = "ignore"
	KeyLogLevel = "log_level"
	KeyColor    = "color"
)

// DefaultLogLevel is used when log_level is not configured.
const DefaultLogLevel = "warn"

// Keys lists every key accepted by Set.
var Keys = []string{KeySource, KeyIgnore, KeyLogLevel, KeyColor}

// ErrUnknownKey is returned by Set for keys outside Keys.
var ErrUnknownKey = errors.New("unknown config key")

// Dir returns the path to the aikit config directory (~/.aikit/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.aikit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment. A
// missing config file is not an error; a malformed one is.
func Load() error {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyLogLevel, DefaultLogLevel)
	viper.SetDefault(KeyColor, true)

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a config value by key in its string form. Returns empty string
// if not set.
func Get(key string) string {
	switch key {
	case KeyIgnore:
		return strings.Join(IgnorePatterns(), ",")
	case KeyColor:
		return strconv.FormatBool(Color())
	}
	return viper.GetString(key)
}

// Set validates and writes a config key-value pair and saves the config file.
// The ignore key takes a comma-separated list.
func Set(key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("%w %q (valid keys: %s)", ErrUnknownKey, key, strings.Join(Keys, ", "))
	}

	var v any = value
	switch key {
	case KeyIgnore:
		v = splitList(value)
	case KeyColor:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value %q for %s: expected true or false", value, key)
		}
		v = b
	case KeyLogLevel:
		if _, err := zerolog.ParseLevel(value); err != nil {
			return fmt.Errorf("invalid value %q for %s: %w", value, key, err)
		}
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, v)

	configFile := FilePath()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Source returns the template directory override, or "" for the embedded
// templates. A leading "~/" is expanded to the home directory.
func Source() string {
	src := strings.TrimSpace(viper.GetString(KeySource))
	if rest, ok := strings.CutPrefix(src, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return src
}

// IgnorePatterns returns the extra glob patterns excluded from copies.
func IgnorePatterns() []string {
	var out []string
	for _, p := range viper.GetStringSlice(KeyIgnore) {
		out = append(out, splitList(p)...)
	}
	return out
}

// LogLevel returns the configured diagnostic log level.
func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

// Color reports whether coloured output is enabled.
func Color() bool {
	return viper.GetBool(KeyColor)
}

// splitList splits a comma-separated value into trimmed, non-empty parts.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
