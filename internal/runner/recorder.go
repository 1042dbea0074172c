package runner

import (
	"context"
	"sync"
)

// Invocation is one recorded call to Recorder.Run.
type Invocation struct {
	Dir  string
	Name string
	Args []string
}

// CommandLine returns the invocation as a single string.
func (i Invocation) CommandLine() string {
	return CommandLine(i.Name, i.Args...)
}

// Recorder is a Runner that records calls instead of executing them.
type Recorder struct {
	// FailAt makes the call with this 1-based index return an ExitError with
	// status 1. Zero disables failure.
	FailAt int
	// OnRun, when set, is called for every successful invocation. Tests use it
	// to emulate side effects such as the generator creating a directory.
	OnRun func(inv Invocation) error

	mu    sync.Mutex
	calls []Invocation
}

// Run records the invocation.
func (r *Recorder) Run(_ context.Context, dir string, name string, args ...string) error {
	inv := Invocation{Dir: dir, Name: name, Args: append([]string(nil), args...)}

	r.mu.Lock()
	r.calls = append(r.calls, inv)
	n := len(r.calls)
	r.mu.Unlock()

	if r.FailAt == n {
		return &ExitError{Command: inv.CommandLine(), Code: 1}
	}
	if r.OnRun != nil {
		return r.OnRun(inv)
	}
	return nil
}

// Calls returns a copy of the recorded invocations in order.
func (r *Recorder) Calls() []Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Invocation(nil), r.calls...)
}
