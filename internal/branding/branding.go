// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults apply when a key is missing.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	PackageName string `yaml:"package_name"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "aikit",
			DisplayName: "AI Skills Installer",
			Description: "Install AI skills, rules, commands and agents into .claude/ or .cursor/",
			HomeDir:     ".aikit",
			EnvPrefix:   "AIKIT",
			PackageName: "@artche/ai",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "aikit").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".aikit").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "AIKIT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// PackageName returns the name the template bundle is published under.
func PackageName() string { load(); return defaults.PackageName }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("source") → "AIKIT_SOURCE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
