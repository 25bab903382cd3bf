package parser

import (
	"fmt"
	"strings"

	"github.com/nicoster/chrome-devtools-cli-sub002/internal/schema"
)

// ValidateArguments checks a parsed invocation against the command's schema:
// required options, required positional coverage, choice allow-lists, and
// custom validators. Validation is deliberately separate from parsing so a
// syntactically fine command line can still be reported as semantically
// invalid.
func (p *Parser) ValidateArguments(commandName string, result *ParseResult) schema.ValidationResult {
	out := schema.OK()

	def := p.GetCommand(commandName)
	if def == nil {
		// help and version run without a schema; nothing to check.
		return out
	}

	for _, opt := range def.Options {
		value, present := result.Options[opt.Name]
		if opt.Required && (!present || value == nil) {
			out.Merge(schema.Invalid(fmt.Sprintf("Missing required option: --%s", opt.Name)))
			continue
		}
		if !present || value == nil {
			continue
		}
		if len(opt.Choices) > 0 && !choiceAllowed(opt.Choices, value) {
			out.Merge(schema.Invalid(fmt.Sprintf(
				"Invalid value for --%s: must be one of: %s", opt.Name, strings.Join(opt.Choices, ", "))))
		}
		if opt.Validator != nil {
			out.Merge(opt.Validator(value))
		}
	}

	required := def.RequiredArguments()
	provided := len(result.Arguments)
	if provided < len(required) {
		// Name every uncovered required argument; the slice cannot
		// under-report because provided < len(required) holds here.
		for _, arg := range required[provided:] {
			out.Merge(schema.Invalid(fmt.Sprintf("Missing required argument: %s", arg.Name)))
		}
	}

	for i, arg := range def.Arguments {
		if arg.Validator == nil {
			continue
		}
		if arg.Variadic {
			for _, raw := range result.Arguments[min(i, len(result.Arguments)):] {
				out.Merge(arg.Validator(schema.StringValue(raw)))
			}
			break
		}
		if i < len(result.Arguments) {
			out.Merge(arg.Validator(schema.StringValue(result.Arguments[i])))
		}
	}

	return out
}

func choiceAllowed(choices []string, value schema.Value) bool {
	s, ok := schema.String(value)
	if !ok {
		return false
	}
	for _, c := range choices {
		if c == s {
			return true
		}
	}
	return false
}
