package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jjarrett21/kitchensink/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized keys.
const (
	KeyTemplate       = "template"
	KeyGenerator      = "generator"
	KeyPackageManager = "package_manager"
	KeyBaseURLEnv     = "base_url_env"
)

// Keys lists every recognized key in display order.
var Keys = []string{KeyTemplate, KeyGenerator, KeyPackageManager, KeyBaseURLEnv}

var defaultValues = map[string]string{
	KeyTemplate:       "react-ts",
	KeyGenerator:      "create-vite",
	KeyPackageManager: "npm",
	KeyBaseURLEnv:     "VITE_BASE_API_URL",
}

// Settings is the resolved configuration for one run.
type Settings struct {
	Template       string
	Generator      string
	PackageManager string
	BaseURLEnv     string
}

// Dir returns the config directory. KITCHENSINK_CONFIG_DIR overrides the
// default ~/.kitchensink/.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("CONFIG_DIR")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
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

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	for k, v := range defaultValues {
		viper.SetDefault(k, v)
	}

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Default returns the built-in value for key, or "" for unknown keys.
func Default(key string) string {
	return defaultValues[key]
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the resolved settings.
func Current() Settings {
	return Settings{
		Template:       viper.GetString(KeyTemplate),
		Generator:      viper.GetString(KeyGenerator),
		PackageManager: viper.GetString(KeyPackageManager),
		BaseURLEnv:     viper.GetString(KeyBaseURLEnv),
	}
}

// IsKnownKey reports whether key is a recognized setting.
func IsKnownKey(key string) bool {
	_, ok := defaultValues[key]
	return ok
}

// Set validates the config file as it would look with key=value, then
// writes it.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q: expected one of %v", key, Keys)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	// WriteConfigAs persists every resolved setting, so validate that.
	doc := viper.AllSettings()
	doc[key] = value
	result, err := ValidateValues(doc)
	if err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("invalid value for %s: %s", key, result.Summary())
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
