package rewrite

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// DefaultBaseURLEnv is the Vite env variable the API client reads its base URL from.
const DefaultBaseURLEnv = "VITE_BASE_API_URL"

// Vite only exposes variables with this prefix to client code.
var baseURLEnvPattern = regexp.MustCompile(`^VITE_[A-Z0-9_]+$`)

// Project-relative paths of every file this package touches.
var (
	IndexCSS   = filepath.Join("src", "index.css")
	AppCSS     = filepath.Join("src", "app.css")
	ViteConfig = "vite.config.ts"
	EntryPoint = filepath.Join("src", "main.tsx")
	APIDir     = filepath.Join("src", "api")
	APIClient  = filepath.Join("src", "api", "client.ts")
	TestSetup  = filepath.Join("src", "setupTests.ts")
)

// Data holds the template variables.
type Data struct {
	ProjectName string
	BaseURLEnv  string
}

// Validate fills in defaults and rejects values that would not render to
// valid TypeScript.
func (d *Data) Validate() error {
	if d.BaseURLEnv == "" {
		d.BaseURLEnv = DefaultBaseURLEnv
	}
	if !baseURLEnvPattern.MatchString(d.BaseURLEnv) {
		return fmt.Errorf("base URL env variable %q must match %s", d.BaseURLEnv, baseURLEnvPattern)
	}
	return nil
}

// Result lists the files written, relative to the project root, in order.
type Result struct {
	Dir   string
	Files []string
}

type step struct {
	rel string
	run func(dir string, data Data) error
}

var steps = []step{
	{IndexCSS, func(dir string, data Data) error { return PrependStyles(filepath.Join(dir, IndexCSS)) }},
	{AppCSS, func(dir string, data Data) error { return PrependStyles(filepath.Join(dir, AppCSS)) }},
	{ViteConfig, func(dir string, data Data) error {
		return renderTo(filepath.Join(dir, ViteConfig), "vite.config.ts.tmpl", data)
	}},
	{EntryPoint, func(dir string, data Data) error {
		return renderTo(filepath.Join(dir, EntryPoint), "main.tsx.tmpl", data)
	}},
	{TestSetup, func(dir string, data Data) error {
		return renderTo(filepath.Join(dir, TestSetup), "setupTests.ts.tmpl", data)
	}},
	{APIClient, WriteAPIClient},
}

// Apply rewrites every file under dir in a fixed order and stops at the first
// failure.
func Apply(dir string, data Data) (*Result, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	result := &Result{Dir: dir}
	for _, s := range steps {
		if err := s.run(dir, data); err != nil {
			return result, fmt.Errorf("rewriting %s: %w", s.rel, err)
		}
		result.Files = append(result.Files, s.rel)
	}
	return result, nil
}

// StylesHeader returns the directives prepended to each global stylesheet.
func StylesHeader() ([]byte, error) {
	return templateFS.ReadFile("templates/styles.css.tmpl")
}

// PrependStyles writes the styles header followed by whatever path already
// contained. A missing file counts as empty. Running it twice on the same
// file prepends the header twice.
func PrependStyles(path string) error {
	header, err := StylesHeader()
	if err != nil {
		return err
	}

	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return os.WriteFile(path, append(header, existing...), 0644)
}

// WriteAPIClient creates src/api when missing and writes client.ts into it.
func WriteAPIClient(dir string, data Data) error {
	apiDir := filepath.Join(dir, APIDir)
	if _, err := os.Stat(apiDir); errors.Is(err, fs.ErrNotExist) {
		if err := os.Mkdir(apiDir, 0755); err != nil {
			return err
		}
	}
	return renderTo(filepath.Join(dir, APIClient), "client.ts.tmpl", data)
}

// Render executes the named embedded template.
func Render(name string, data Data) ([]byte, error) {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("template %s not found: %w", name, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func renderTo(path, name string, data Data) error {
	out, err := Render(name, data)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}
