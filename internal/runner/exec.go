package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ExecRunner runs real subprocesses.
type ExecRunner struct {
	// Stdin, Stdout and Stderr can be set for testing; they default to the
	// process's own streams so generator prompts and npm progress reach the user.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run looks up name on PATH, executes it in dir and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s is required but was not found on PATH: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Command: CommandLine(name, args...), Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("running %s: %w", CommandLine(name, args...), err)
	}
	return nil
}
