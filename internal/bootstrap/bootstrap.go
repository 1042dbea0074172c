package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/jjarrett21/kitchensink/internal/installer"
	"github.com/jjarrett21/kitchensink/internal/logger"
	"github.com/jjarrett21/kitchensink/internal/packages"
	"github.com/jjarrett21/kitchensink/internal/project"
	"github.com/jjarrett21/kitchensink/internal/rewrite"
	"github.com/jjarrett21/kitchensink/internal/runner"
	"github.com/jjarrett21/kitchensink/internal/scaffold"
)

// Options configures one run.
type Options struct {
	Name           string // raw project name, sanitized here
	Packages       string // raw space-separated extra packages
	ParentDir      string // directory the project is created in
	Template       string
	Generator      string
	PackageManager string
	BaseURLEnv     string
}

// Result summarizes a completed run.
type Result struct {
	Project   *project.Descriptor
	Selection packages.Selection
	Files     []string
	DevScript bool // the generated package.json has a "dev" script
}

// Bootstrapper wires the individual stages together.
type Bootstrapper struct {
	Runner runner.Runner
	Log    *logger.Logger
}

// New returns a Bootstrapper. A nil log discards output.
func New(r runner.Runner, log *logger.Logger) *Bootstrapper {
	if log == nil {
		log = logger.Discard()
	}
	return &Bootstrapper{Runner: r, Log: log}
}

// Run performs the whole setup.
func (b *Bootstrapper) Run(ctx context.Context, opts Options) (*Result, error) {
	inst, err := installer.New(b.Runner, opts.PackageManager)
	if err != nil {
		return nil, err
	}

	desc, err := project.New(opts.Name, opts.ParentDir)
	if err != nil {
		return nil, err
	}
	data := rewrite.Data{ProjectName: desc.Name, BaseURLEnv: opts.BaseURLEnv}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	if desc.Name != strings.TrimSpace(opts.Name) {
		b.Log.Debug("Project name %q sanitized to %q", opts.Name, desc.Name)
	}

	sel := packages.Reconcile(packages.Defaults, opts.Packages)
	b.reportSelection(sel)

	b.Log.Step("Creating React Kitchen Sink project: %s", desc.Name)
	inv := scaffold.NewInvoker(b.Runner, opts.Generator, opts.Template)
	if err := inv.Generate(ctx, desc); err != nil {
		return nil, err
	}

	dir, err := scaffold.EnterProject(desc)
	if err != nil {
		return nil, err
	}
	b.Log.Info("Working in %s", dir)

	result := &Result{Project: desc, Selection: sel}
	if manifest, err := scaffold.Inspect(dir); err != nil {
		b.Log.Warn("Could not read generated package.json: %v", err)
	} else {
		if manifest.Name != "" && manifest.Name != desc.Name {
			b.Log.Warn("Generated package.json is named %q, expected %q", manifest.Name, desc.Name)
		}
		result.DevScript = manifest.HasScript("dev")
	}

	b.Log.Step("Installing dependencies with %s", inst.Manager.Name)
	b.Log.Debug("Runtime: %s", runner.CommandLine(inst.Manager.Name, inst.RuntimeArgs(sel)...))
	b.Log.Debug("Development: %s", runner.CommandLine(inst.Manager.Name, inst.DevArgs()...))
	if err := inst.Install(ctx, dir, sel); err != nil {
		return nil, err
	}

	b.Log.Step("Rewriting starter templates")
	rw, err := rewrite.Apply(dir, data)
	if rw != nil {
		result.Files = rw.Files
		for _, f := range rw.Files {
			b.Log.Info("wrote %s", f)
		}
	}
	if err != nil {
		return nil, err
	}

	b.Log.Success("Setup complete")
	return result, nil
}

// NextSteps returns the commands a user runs to start the dev server.
func (r *Result) NextSteps(manager string) string {
	if manager == "" {
		manager = installer.DefaultManager
	}
	if !r.DevScript {
		return fmt.Sprintf("cd %s", r.Project.Name)
	}
	return fmt.Sprintf("cd %s && %s run dev", r.Project.Name, manager)
}

func (b *Bootstrapper) reportSelection(sel packages.Selection) {
	if len(sel.AlreadyIncluded) > 0 {
		b.Log.Info("Already included by default: %s", strings.Join(sel.AlreadyIncluded, " "))
	}
	if len(sel.NotIncluded) > 0 {
		b.Log.Info("Additional packages: %s", sel.Additional())
	}
	for _, w := range packages.CheckSpecifiers(sel.NotIncluded) {
		b.Log.Warn("%s", w)
	}
}
