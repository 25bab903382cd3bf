// Package cli declares the static command catalogue and wires it into a
// parser. The definitions here are the bootstrap data the rest of the
// system reads; nothing in this package executes commands.
package cli

import (
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/log"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/parser"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/schema"
)

// BuildParser creates the registry and parser and registers every built-in
// command. A definition that fails structural validation is skipped and
// logged; it must not take previously registered commands down with it.
func BuildParser() (*parser.Parser, *schema.Registry) {
	registry := schema.NewRegistry()
	p := parser.New(registry, GlobalOptions())

	for _, def := range Commands() {
		if err := p.RegisterCommand(def); err != nil {
			log.Error("cli: skipping command %q: %v", def.Name, err)
		}
	}

	return p, registry
}
