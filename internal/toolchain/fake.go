package toolchain

import (
	"context"
	"strings"
	"sync"
)

// RecordingRunner is a Runner that records invocations and returns canned
// errors keyed by command name. It is used by tests across packages.
type RecordingRunner struct {
	mu     sync.Mutex
	Calls  []RecordedCall
	Errors map[string]error
}

// RecordedCall is one Runner invocation.
type RecordedCall struct {
	Dir  string
	Line string
}

// Run records the call and returns the configured error for name, if any.
func (r *RecordingRunner) Run(_ context.Context, dir, name string, args ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, RecordedCall{
		Dir:  dir,
		Line: strings.TrimSpace(name + " " + strings.Join(args, " ")),
	})
	return r.Errors[name]
}

// Lines returns the recorded command lines.
func (r *RecordingRunner) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		out = append(out, c.Line)
	}
	return out
}
