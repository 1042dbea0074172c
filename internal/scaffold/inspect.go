package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// PackageManifest is the subset of package.json the bootstrapper looks at.
type PackageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version,omitempty"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// Inspect reads dir/package.json. Comments and trailing commas are tolerated
// since some generators emit them.
func Inspect(dir string) (*PackageManifest, error) {
	path := filepath.Join(dir, "package.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var m PackageManifest
	if err := json.Unmarshal(jsonc.ToJSON(data), &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &m, nil
}

// HasScript reports whether the manifest defines the named npm script.
func (m *PackageManifest) HasScript(name string) bool {
	_, ok := m.Scripts[name]
	return ok
}
