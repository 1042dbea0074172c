// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
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
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	HomeDir         string `yaml:"home_dir"`
	EnvPrefix       string `yaml:"env_prefix"`
	FallbackProject string `yaml:"fallback_project"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:         "kitchensink",
			DisplayName:     "Kitchen Sink",
			Description:     "Bootstrap a Vite + React + TypeScript app",
			HomeDir:         ".kitchensink",
			EnvPrefix:       "KITCHENSINK",
			FallbackProject: "my-vite-kitchen-sink-app",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "kitchensink").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".kitchensink").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "KITCHENSINK").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// FallbackProject returns the project name used when none is supplied or the
// supplied one sanitizes to nothing.
func FallbackProject() string { load(); return defaults.FallbackProject }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("TEMPLATE") → "KITCHENSINK_TEMPLATE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
