// Package dispatch routes parsed invocations to command executors. The
// executors themselves (the actual browser operations) are opaque: anything
// satisfying ExecutorFunc can be registered under a command name.
package dispatch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nicoster/chrome-devtools-cli-sub002/internal/log"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/schema"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/usage"
)

// Invocation is the parser's output contract: a canonical command name plus
// its typed options and raw positionals.
type Invocation struct {
	Command   string
	Options   map[string]schema.Value
	Arguments []string
}

// ExecutorFunc performs one command. The context carries the --timeout
// deadline; blocking executors must honor it.
type ExecutorFunc func(ctx context.Context, inv Invocation) (any, error)

// CommandResult is what downstream renderers consume.
type CommandResult struct {
	ID       string        `json:"id"`
	Command  string        `json:"command"`
	Success  bool          `json:"success"`
	Data     any           `json:"data,omitempty"`
	Error    string        `json:"error,omitempty"`
	ExitCode int           `json:"exitCode"`
	Duration time.Duration `json:"duration"`
}

// Dispatcher maps canonical command names to executors.
type Dispatcher struct {
	mu        sync.RWMutex
	executors map[string]ExecutorFunc
}

// New creates an empty dispatcher.
func New() *Dispatcher {
	return &Dispatcher{executors: make(map[string]ExecutorFunc)}
}

// Register binds an executor to a command name, replacing any earlier
// binding.
func (d *Dispatcher) Register(name string, fn ExecutorFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.executors[name] = fn
}

// Has reports whether an executor is bound to name.
func (d *Dispatcher) Has(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.executors[name]
	return ok
}

// Run executes the invocation and reports the outcome. Every result carries
// a unique invocation ID and the elapsed time. Executor failures are
// classified into the exit-code taxonomy; Run itself never returns an error.
func (d *Dispatcher) Run(ctx context.Context, inv Invocation) CommandResult {
	result := CommandResult{
		ID:      uuid.NewString(),
		Command: inv.Command,
	}

	d.mu.RLock()
	fn, ok := d.executors[inv.Command]
	d.mu.RUnlock()

	if !ok {
		err := usage.CommandFailed(inv.Command, errors.New("no executor registered"))
		result.Error = err.Error()
		result.ExitCode = err.ExitCode()
		return result
	}

	start := time.Now()
	data, err := fn(ctx, inv)
	result.Duration = time.Since(start)

	if err != nil {
		log.Error("dispatch: %s failed after %s: %v", inv.Command, result.Duration, err)
		classified := classify(inv.Command, err)
		result.Error = classified.Error()
		result.ExitCode = classified.ExitCode()
		return result
	}

	log.Debug("dispatch: %s ok in %s", inv.Command, result.Duration)
	result.Success = true
	result.Data = data
	return result
}

// classify folds an executor error into the user-facing taxonomy. Errors
// already typed as usage errors pass through.
func classify(command string, err error) *usage.Error {
	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return usage.Timeout(command)
	}
	return usage.CommandFailed(command, err)
}
