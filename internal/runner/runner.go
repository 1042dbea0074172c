package runner

import (
	"context"
	"fmt"
	"strings"
)

// Runner runs a program to completion in dir.
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) error
}

// ExitError reports a program that ran but exited non-zero.
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
}

// CommandLine renders name and args the way a shell user would type them.
func CommandLine(name string, args ...string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}
