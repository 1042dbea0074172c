package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config dir at a temp dir and resets Viper's global state.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("KITCHENSINK_CONFIG_DIR", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

func TestDirOverride(t *testing.T) {
	dir := isolate(t)
	assert.Equal(t, dir, Dir())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), FilePath())
}

func TestCurrentDefaults(t *testing.T) {
	isolate(t)
	Load()

	assert.Equal(t, Settings{
		Template:       "react-ts",
		Generator:      "create-vite",
		PackageManager: "npm",
		BaseURLEnv:     "VITE_BASE_API_URL",
	}, Current())
}

func TestCurrentReadsFileAndEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("package_manager: pnpm\ntemplate: react-swc-ts\n"), 0644))
	t.Setenv("KITCHENSINK_TEMPLATE", "react")

	Load()
	s := Current()

	assert.Equal(t, "pnpm", s.PackageManager)
	assert.Equal(t, "react", s.Template, "env should override the file")
	assert.Equal(t, "create-vite", s.Generator)
}

func TestSetPersists(t *testing.T) {
	isolate(t)
	Load()

	require.NoError(t, Set(KeyPackageManager, "yarn"))
	assert.FileExists(t, FilePath())

	viper.Reset()
	Load()
	assert.Equal(t, "yarn", Get(KeyPackageManager))
}

func TestSetRejectsInvalid(t *testing.T) {
	isolate(t)
	Load()

	err := Set(KeyPackageManager, "pip")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package_manager")
	assert.NoFileExists(t, FilePath())

	err = Set(KeyBaseURLEnv, "API_URL")
	require.Error(t, err)

	err = Set("colour", "blue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func TestDefault(t *testing.T) {
	assert.Equal(t, "npm", Default(KeyPackageManager))
	assert.Equal(t, "", Default("missing"))
	assert.True(t, IsKnownKey(KeyTemplate))
	assert.False(t, IsKnownKey("missing"))
}
