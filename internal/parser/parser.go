package parser

import (
	"errors"
	"fmt"

	"github.com/nicoster/chrome-devtools-cli-sub002/internal/schema"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/usage"
)

// Parser turns raw argument vectors into typed parse results. It owns alias
// resolution and registration-time structural validation; the injected
// registry is the backing catalogue of command schemas.
type Parser struct {
	registry *schema.Registry
	globals  []schema.OptionDefinition
	aliases  map[string]string // alias -> canonical name
}

// New creates a parser over the given registry and global option table.
func New(registry *schema.Registry, globals []schema.OptionDefinition) *Parser {
	return &Parser{
		registry: registry,
		globals:  globals,
		aliases:  make(map[string]string),
	}
}

// Registry returns the backing schema registry.
func (p *Parser) Registry() *schema.Registry {
	return p.registry
}

// Globals returns the global option table.
func (p *Parser) Globals() []schema.OptionDefinition {
	return p.globals
}

// RegisterCommand validates def's structural shape and stores it. Every
// violation is collected before failing, so a malformed definition surfaces
// all of its problems in one error. A failed registration leaves the
// registry and alias table untouched.
func (p *Parser) RegisterCommand(def *schema.CommandDefinition) error {
	if def == nil {
		return usage.Definition("", errors.New("definition is nil"))
	}

	var violations []error

	if def.Name == "" {
		violations = append(violations, errors.New("name must be a non-empty string"))
	}
	if def.Description == "" {
		violations = append(violations, errors.New("description must be a non-empty string"))
	}

	for _, alias := range def.Aliases {
		if alias == "" {
			violations = append(violations, errors.New("alias must be a non-empty string"))
			continue
		}
		if owner, taken := p.aliasOwner(alias); taken && owner != def.Name {
			violations = append(violations, fmt.Errorf("alias %q already used by command %q", alias, owner))
		}
	}

	// Short flags need only be unique within the command itself. A command
	// short that shadows a global short is fine: globals are consumed before
	// the command name, command shorts after it.
	shorts := make(map[string]string)
	for _, opt := range def.Options {
		if opt.Name == "" {
			violations = append(violations, errors.New("option name must be a non-empty string"))
		}
		if !opt.Type.Valid() {
			violations = append(violations, fmt.Errorf("option %q has invalid type", opt.Name))
		}
		if opt.Short != "" {
			if len(opt.Short) != 1 {
				violations = append(violations, fmt.Errorf("option %q short flag %q must be a single character", opt.Name, opt.Short))
			} else if owner, taken := shorts[opt.Short]; taken {
				violations = append(violations, fmt.Errorf("option %q short flag %q collides with %q", opt.Name, opt.Short, owner))
			} else {
				shorts[opt.Short] = opt.Name
			}
		}
		if len(opt.Choices) > 0 && opt.Type != schema.OptionString {
			violations = append(violations, fmt.Errorf("option %q declares choices but is not a string option", opt.Name))
		}
	}

	for i, arg := range def.Arguments {
		if arg.Name == "" {
			violations = append(violations, errors.New("argument name must be a non-empty string"))
		}
		if !arg.Type.Valid() {
			violations = append(violations, fmt.Errorf("argument %q has invalid type", arg.Name))
		}
		if arg.Variadic && i != len(def.Arguments)-1 {
			violations = append(violations, fmt.Errorf("argument %q is variadic but not trailing", arg.Name))
		}
	}

	if len(violations) > 0 {
		return usage.Definition(def.Name, errors.Join(violations...))
	}

	p.registry.Register(def)
	for _, alias := range def.Aliases {
		p.aliases[alias] = def.Name
	}
	return nil
}

// aliasOwner reports whether name is claimed as another command's name or
// alias, and by whom.
func (p *Parser) aliasOwner(name string) (string, bool) {
	if canonical, ok := p.aliases[name]; ok {
		return canonical, true
	}
	if p.registry.Has(name) {
		return name, true
	}
	return "", false
}

// Resolve maps a command name or alias to the canonical command name. The
// second result is false when neither matches.
func (p *Parser) Resolve(name string) (string, bool) {
	if canonical, ok := p.aliases[name]; ok {
		return canonical, true
	}
	if p.registry.Has(name) {
		return name, true
	}
	return name, false
}

// HasCommand reports whether name (canonical or alias) is registered.
func (p *Parser) HasCommand(name string) bool {
	_, ok := p.Resolve(name)
	return ok
}

// GetCommand returns the definition for name (canonical or alias), or nil.
func (p *Parser) GetCommand(name string) *schema.CommandDefinition {
	canonical, ok := p.Resolve(name)
	if !ok {
		return nil
	}
	return p.registry.Get(canonical)
}

// globalOption finds a global option by long name.
func (p *Parser) globalOption(name string) *schema.OptionDefinition {
	for i := range p.globals {
		if p.globals[i].Name == name {
			return &p.globals[i]
		}
	}
	return nil
}

// globalOptionByShort finds a global option by short flag.
func (p *Parser) globalOptionByShort(short string) *schema.OptionDefinition {
	for i := range p.globals {
		if p.globals[i].Short == short {
			return &p.globals[i]
		}
	}
	return nil
}
