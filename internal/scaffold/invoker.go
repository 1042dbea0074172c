package scaffold

import (
	"context"
	"fmt"
	"os"

	"github.com/jjarrett21/kitchensink/internal/project"
	"github.com/jjarrett21/kitchensink/internal/runner"
)

// Defaults for the generator invocation.
const (
	DefaultLauncher  = "npx"
	DefaultGenerator = "create-vite"
	DefaultTemplate  = "react-ts"
)

// Invoker runs the project generator.
type Invoker struct {
	Runner    runner.Runner
	Launcher  string // e.g. "npx"
	Generator string // e.g. "create-vite"
	Template  string // e.g. "react-ts"
}

// NewInvoker returns an Invoker using npx create-vite with the given
// template. An empty template means DefaultTemplate.
func NewInvoker(r runner.Runner, generator, template string) *Invoker {
	if generator == "" {
		generator = DefaultGenerator
	}
	if template == "" {
		template = DefaultTemplate
	}
	return &Invoker{Runner: r, Launcher: DefaultLauncher, Generator: generator, Template: template}
}

// Args returns the generator's argument list for d.
func (i *Invoker) Args(d *project.Descriptor) []string {
	return []string{i.Generator, d.Name, "--template", i.Template}
}

// Generate runs the generator in the descriptor's parent directory and waits
// for it to finish. A non-zero exit is returned as a wrapped *runner.ExitError.
func (i *Invoker) Generate(ctx context.Context, d *project.Descriptor) error {
	if err := i.Runner.Run(ctx, d.ParentDir(), i.Launcher, i.Args(d)...); err != nil {
		return fmt.Errorf("generating project %s: %w", d.Name, err)
	}
	return nil
}

// EnterError reports that the generated project directory cannot be used.
type EnterError struct {
	Path string
	Err  error
}

func (e *EnterError) Error() string {
	return fmt.Sprintf("cannot enter project directory %s: %v", e.Path, e.Err)
}

func (e *EnterError) Unwrap() error { return e.Err }

// EnterProject confirms the generator produced d.TargetPath. The process
// working directory is left untouched; callers pass the path explicitly.
func EnterProject(d *project.Descriptor) (string, error) {
	info, err := os.Stat(d.TargetPath)
	if err != nil {
		return "", &EnterError{Path: d.TargetPath, Err: err}
	}
	if !info.IsDir() {
		return "", &EnterError{Path: d.TargetPath, Err: fmt.Errorf("not a directory")}
	}
	return d.TargetPath, nil
}
