package project

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jjarrett21/kitchensink/internal/branding"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// Descriptor identifies the project to create. It is built once and not
// modified afterwards.
type Descriptor struct {
	Name       string // sanitized, e.g. "test-project"
	TargetPath string // absolute, e.g. "/home/me/code/test-project"
}

// FallbackName is used whenever a name is missing or sanitizes to nothing.
func FallbackName() string {
	return branding.FallbackProject()
}

// Sanitize strips every character outside [A-Za-z0-9_-]. An empty result is
// replaced by FallbackName.
func Sanitize(name string) string {
	clean := unsafeChars.ReplaceAllString(name, "")
	if clean == "" {
		return FallbackName()
	}
	return clean
}

// New sanitizes name and places the project directly under parentDir. A
// name starting with "-" is rejected since the generator would read it as a
// flag.
func New(name, parentDir string) (*Descriptor, error) {
	clean := Sanitize(name)
	if strings.HasPrefix(clean, "-") {
		return nil, fmt.Errorf("project name %q must not start with \"-\"", clean)
	}
	parent, err := filepath.Abs(parentDir)
	if err != nil {
		return nil, fmt.Errorf("resolving parent directory %s: %w", parentDir, err)
	}
	return &Descriptor{
		Name:       clean,
		TargetPath: filepath.Join(parent, clean),
	}, nil
}

// ParentDir returns the directory the generator must run in.
func (d *Descriptor) ParentDir() string {
	return filepath.Dir(d.TargetPath)
}

// Path joins elem onto the project root.
func (d *Descriptor) Path(elem ...string) string {
	return filepath.Join(append([]string{d.TargetPath}, elem...)...)
}
