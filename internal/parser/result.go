package parser

import "github.com/nicoster/chrome-devtools-cli-sub002/internal/schema"

// ParseResult is the outcome of one ParseArguments call. It is produced and
// consumed per invocation and never persisted.
//
// Command is the canonical command name, with any alias already resolved.
// Options merges the global table beneath the command's own options; a
// command-specific value wins over a global of the same key. Arguments holds
// the raw positional tokens in CLI order.
type ParseResult struct {
	Success   bool
	Command   string
	Options   map[string]schema.Value
	Arguments []string
	Errors    []string
	Warnings  []string

	// Explicit marks option names the user supplied as flags, as opposed
	// to values filled from declared defaults.
	Explicit map[string]bool
}

func newParseResult() *ParseResult {
	return &ParseResult{
		Success:  true,
		Options:  make(map[string]schema.Value),
		Explicit: make(map[string]bool),
	}
}

func (r *ParseResult) fail(msg string) {
	r.Success = false
	r.Errors = append(r.Errors, msg)
}

// Option returns the parsed value for name, or nil.
func (r *ParseResult) Option(name string) schema.Value {
	return r.Options[name]
}
