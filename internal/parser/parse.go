package parser

import (
	"fmt"
	"strings"

	"github.com/nicoster/chrome-devtools-cli-sub002/internal/schema"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/usage"
)

// ParseArgv parses a conventional process argument vector whose first two
// tokens (interpreter path, script path) are discarded. Vectors shorter than
// the prefix are treated as empty. Embedders with a runtime that prepends
// the two-token convention use this; everyone else calls ParseArguments with
// the user-supplied tokens directly.
func (p *Parser) ParseArgv(argv []string) *ParseResult {
	if len(argv) <= 2 {
		return p.ParseArguments(nil)
	}
	return p.ParseArguments(argv[2:])
}

// ParseArguments resolves tokens into a command invocation: global options,
// then a command name (aliases resolved), then command-scoped options and
// positionals. Parse failures are reported in the result's Errors list; the
// method itself never panics past its boundary.
func (p *Parser) ParseArguments(tokens []string) (result *ParseResult) {
	result = newParseResult()

	defer func() {
		if r := recover(); r != nil {
			result = newParseResult()
			result.Command = ""
			result.fail(fmt.Sprintf("parse error: %v", r))
		}
	}()

	// Bare invocation and --help anywhere short-circuit to help.
	if len(tokens) == 0 || containsToken(tokens, "--help") {
		result.Command = "help"
		result.Arguments = p.helpTargets(tokens)
		return result
	}
	if containsToken(tokens, "--version") || containsToken(tokens, "-V") {
		result.Command = "version"
		return result
	}

	globals := make(map[string]schema.Value)
	rest := p.scanGlobals(tokens, globals, result)

	if len(rest) == 0 {
		result.Command = "help"
		return result
	}

	// The first non-global token is the command, even when it looks like a
	// flag: a typo'd global and a command starting with "-" are
	// indistinguishable here, and unknown-command reporting sorts it out.
	name := rest[0]
	rest = rest[1:]

	canonical, _ := p.Resolve(name)
	result.Command = canonical

	def := p.registry.Get(canonical)
	if def == nil {
		if canonical == "help" {
			// help always succeeds, registered or not
			result.Arguments = append(result.Arguments, rest...)
			p.mergeOptions(result, globals, nil, nil)
			return result
		}
		result.fail(usage.UnknownCommand(name).Error())
		return result
	}

	cmdValues := make(map[string]schema.Value)
	p.scanCommand(def, rest, cmdValues, result)
	p.mergeOptions(result, globals, cmdValues, def)
	return result
}

// scanGlobals consumes leading global option tokens and returns the
// remainder, starting at the command name.
func (p *Parser) scanGlobals(tokens []string, values map[string]schema.Value, result *ParseResult) []string {
	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		def, inline, hasInline, negated, ok := p.matchGlobal(tok)
		if !ok {
			break
		}

		i = consumeValue(def, tok, inline, hasInline, negated, tokens, i, values, result)
	}
	return tokens[i:]
}

// matchGlobal resolves one token against the global option table.
func (p *Parser) matchGlobal(tok string) (def *schema.OptionDefinition, inline string, hasInline bool, negated bool, ok bool) {
	switch {
	case strings.HasPrefix(tok, "--"):
		name := tok[2:]
		if eq := strings.Index(name, "="); eq != -1 {
			inline, hasInline = name[eq+1:], true
			name = name[:eq]
		}
		def = p.globalOption(name)
		if def == nil && strings.HasPrefix(name, "no-") {
			if base := p.globalOption(name[3:]); base != nil && base.Type == schema.OptionBool {
				def, negated = base, true
			}
		}
	case strings.HasPrefix(tok, "-") && len(tok) == 2:
		def = p.globalOptionByShort(tok[1:])
	}
	return def, inline, hasInline, negated, def != nil
}

// scanCommand walks the remaining tokens against the command's own schema.
// Every token not starting with "-" is a positional; unknown flags produce
// one error each and parsing continues.
func (p *Parser) scanCommand(def *schema.CommandDefinition, tokens []string, values map[string]schema.Value, result *ParseResult) {
	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		if !strings.HasPrefix(tok, "-") || tok == "-" {
			result.Arguments = append(result.Arguments, tok)
			i++
			continue
		}

		var (
			opt       *schema.OptionDefinition
			inline    string
			hasInline bool
			negated   bool
		)

		if strings.HasPrefix(tok, "--") {
			name := tok[2:]
			if eq := strings.Index(name, "="); eq != -1 {
				inline, hasInline = name[eq+1:], true
				name = name[:eq]
			}
			opt = def.Option(name)
			if opt == nil && strings.HasPrefix(name, "no-") {
				if base := def.Option(name[3:]); base != nil && base.Type == schema.OptionBool {
					opt, negated = base, true
				}
			}
		} else if len(tok) == 2 {
			opt = def.OptionByShort(tok[1:])
		}
		// Multi-character short tokens (-ox) are deliberately not POSIX
		// bundles; they fall through as unknown.

		if opt == nil {
			result.fail(usage.UnknownOption(tok).Error())
			i++
			continue
		}

		i = consumeValue(opt, tok, inline, hasInline, negated, tokens, i, values, result)
	}
}

// consumeValue stores the typed value for one matched option token and
// returns the index of the next unconsumed token. Booleans never consume a
// value token; other types take the inline "=value" or the following token,
// unless that token itself looks like an option.
func consumeValue(opt *schema.OptionDefinition, tok, inline string, hasInline, negated bool, tokens []string, i int, values map[string]schema.Value, result *ParseResult) int {
	if opt.Type == schema.OptionBool {
		switch {
		case negated:
			values[opt.Name] = schema.BoolValue(false)
		case hasInline:
			v, err := CoerceOptionValue(opt, inline)
			if err != nil {
				result.fail(err.Error())
			} else {
				values[opt.Name] = v
			}
		default:
			values[opt.Name] = schema.BoolValue(true)
		}
		return i + 1
	}

	raw := inline
	next := i + 1
	if !hasInline {
		if i+1 >= len(tokens) || strings.HasPrefix(tokens[i+1], "-") {
			result.fail(usage.MissingValue("--" + opt.Name).Error())
			return i + 1
		}
		raw = tokens[i+1]
		next = i + 2
	}

	v, err := CoerceOptionValue(opt, raw)
	if err != nil {
		result.fail(err.Error())
		return next
	}
	values[opt.Name] = v
	return next
}

// mergeOptions layers command-specific values over globals. Values present
// before default filling came from explicit flags and are marked as such;
// declared defaults then fill the gaps.
func (p *Parser) mergeOptions(result *ParseResult, globals, cmd map[string]schema.Value, def *schema.CommandDefinition) {
	for k := range globals {
		result.Explicit[k] = true
	}
	for k := range cmd {
		result.Explicit[k] = true
	}

	for _, g := range p.globals {
		if _, set := globals[g.Name]; !set && g.Default != nil {
			globals[g.Name] = g.Default
		}
	}
	if def != nil {
		for _, opt := range def.Options {
			if _, set := cmd[opt.Name]; !set && opt.Default != nil {
				cmd[opt.Name] = opt.Default
			}
		}
	}

	for k, v := range globals {
		result.Options[k] = v
	}
	for k, v := range cmd {
		result.Options[k] = v
	}
}

func containsToken(tokens []string, want string) bool {
	for _, t := range tokens {
		if t == want {
			return true
		}
	}
	return false
}

// helpTargets keeps the tokens that could name a command, so
// "cdp screenshot --help" renders screenshot's help rather than the general
// page. Global flags and their value tokens are skipped; "--host remote
// --help" has no target.
func (p *Parser) helpTargets(tokens []string) []string {
	var out []string
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if def, _, hasInline, _, ok := p.matchGlobal(tok); ok {
			i++
			if def.Type != schema.OptionBool && !hasInline && i < len(tokens) && !strings.HasPrefix(tokens[i], "-") {
				i++
			}
			continue
		}
		if strings.HasPrefix(tok, "-") {
			i++
			continue
		}
		out = append(out, tok)
		i++
	}
	return out
}
