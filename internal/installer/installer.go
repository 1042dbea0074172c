package installer

import (
	"context"
	"fmt"
	"sort"

	"github.com/jjarrett21/kitchensink/internal/packages"
	"github.com/jjarrett21/kitchensink/internal/runner"
)

// Manager describes how a package manager spells its install commands.
type Manager struct {
	Name   string
	Add    []string // verb for runtime dependencies
	AddDev []string // verb for development dependencies
}

var managers = map[string]Manager{
	"npm":  {Name: "npm", Add: []string{"install"}, AddDev: []string{"install", "-D"}},
	"pnpm": {Name: "pnpm", Add: []string{"add"}, AddDev: []string{"add", "-D"}},
	"yarn": {Name: "yarn", Add: []string{"add"}, AddDev: []string{"add", "-D"}},
	"bun":  {Name: "bun", Add: []string{"add"}, AddDev: []string{"add", "-d"}},
}

// DefaultManager is used when no package manager is configured.
const DefaultManager = "npm"

// LookupManager returns the Manager registered under name.
func LookupManager(name string) (Manager, error) {
	if name == "" {
		name = DefaultManager
	}
	m, ok := managers[name]
	if !ok {
		return Manager{}, fmt.Errorf("unsupported package manager %q: supported are %v", name, ManagerNames())
	}
	return m, nil
}

// ManagerNames lists supported package managers in sorted order.
func ManagerNames() []string {
	names := make([]string, 0, len(managers))
	for n := range managers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Installer runs the two install steps.
type Installer struct {
	Runner  runner.Runner
	Manager Manager
	Dev     []string
}

// New returns an Installer for the named package manager.
func New(r runner.Runner, manager string) (*Installer, error) {
	m, err := LookupManager(manager)
	if err != nil {
		return nil, err
	}
	return &Installer{Runner: r, Manager: m, Dev: packages.DevDefaults}, nil
}

// RuntimeArgs returns the runtime install argument list for sel.
func (i *Installer) RuntimeArgs(sel packages.Selection) []string {
	return append(append([]string(nil), i.Manager.Add...), sel.RuntimeArgs()...)
}

// DevArgs returns the development install argument list.
func (i *Installer) DevArgs() []string {
	return append(append([]string(nil), i.Manager.AddDev...), i.Dev...)
}

// Install installs runtime dependencies, then development dependencies, in
// dir. The development step is skipped if the runtime step fails. Nothing
// is rolled back.
func (i *Installer) Install(ctx context.Context, dir string, sel packages.Selection) error {
	if err := i.Runner.Run(ctx, dir, i.Manager.Name, i.RuntimeArgs(sel)...); err != nil {
		return fmt.Errorf("installing runtime dependencies: %w", err)
	}
	if err := i.Runner.Run(ctx, dir, i.Manager.Name, i.DevArgs()...); err != nil {
		return fmt.Errorf("installing development dependencies: %w", err)
	}
	return nil
}
