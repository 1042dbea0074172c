package preflight

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// NodeConstraint is the Node.js range Vite's generator supports.
const NodeConstraint = "^20.19.0 || >=22.12.0"

// Status of a single check.
type Status int

const (
	StatusOK Status = iota
	StatusMissing
	StatusFail
)

// Label renders the status the way doctor output shows it.
func (s Status) Label() string {
	switch s {
	case StatusOK:
		return "[ OK ]"
	case StatusMissing:
		return "[MISS]"
	default:
		return "[FAIL]"
	}
}

// Check is the outcome of one probe.
type Check struct {
	Name   string
	Status Status
	Detail string
}

// Checker probes the local environment. The function fields exist so tests
// can stand in for PATH lookups and subprocess output.
type Checker struct {
	LookPath func(file string) (string, error)
	Output   func(ctx context.Context, name string, args ...string) (string, error)
}

// New returns a Checker backed by the real PATH.
func New() *Checker {
	return &Checker{LookPath: exec.LookPath, Output: commandOutput}
}

// Binaries reports whether each named program is on PATH.
func (c *Checker) Binaries(names ...string) []Check {
	checks := make([]Check, 0, len(names))
	for _, name := range names {
		path, err := c.LookPath(name)
		if err != nil {
			checks = append(checks, Check{Name: name, Status: StatusMissing, Detail: name + " not found"})
			continue
		}
		checks = append(checks, Check{Name: name, Status: StatusOK, Detail: name + " found at " + path})
	}
	return checks
}

// NodeVersion runs `node --version` and compares it against NodeConstraint.
func (c *Checker) NodeVersion(ctx context.Context) Check {
	check := Check{Name: "node version"}

	out, err := c.Output(ctx, "node", "--version")
	if err != nil {
		check.Status = StatusMissing
		check.Detail = fmt.Sprintf("could not run node --version: %v", err)
		return check
	}

	version := strings.TrimSpace(out)
	ok, err := NodeSatisfies(version)
	switch {
	case err != nil:
		check.Status = StatusFail
		check.Detail = err.Error()
	case !ok:
		check.Status = StatusFail
		check.Detail = fmt.Sprintf("node %s does not satisfy %s", version, NodeConstraint)
	default:
		check.Status = StatusOK
		check.Detail = fmt.Sprintf("node %s satisfies %s", version, NodeConstraint)
	}
	return check
}

// NodeSatisfies reports whether version (with or without a leading "v")
// is inside NodeConstraint.
func NodeSatisfies(version string) (bool, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing node version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(NodeConstraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", NodeConstraint, err)
	}
	return c.Check(v), nil
}

// Failed reports whether any check is not OK.
func Failed(checks []Check) bool {
	for _, c := range checks {
		if c.Status != StatusOK {
			return true
		}
	}
	return false
}

func commandOutput(ctx context.Context, name string, args ...string) (string, error) {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return stdout.String(), nil
}
