package schema

// ValidationResult carries the outcome of a validation pass. Results compose
// by concatenation via Merge.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// OK is the zero-failure result.
func OK() ValidationResult {
	return ValidationResult{Valid: true}
}

// Invalid builds a failed result from one or more error messages.
func Invalid(errs ...string) ValidationResult {
	return ValidationResult{Valid: false, Errors: errs}
}

// Merge folds other into r. The merged result is valid only if both were.
func (r *ValidationResult) Merge(other ValidationResult) {
	if !other.Valid {
		r.Valid = false
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// ValidatorFunc is a custom per-option or per-argument predicate.
type ValidatorFunc func(value Value) ValidationResult

// OptionDefinition describes one named option of a command (or of the global
// option table).
type OptionDefinition struct {
	Name        string // kebab-case long name, without leading dashes
	Short       string // optional single-character short flag
	Type        OptionType
	Description string
	Required    bool
	Default     Value    // used when the option is absent; may be nil
	Choices     []string // allow-list, string options only
	Validator   ValidatorFunc
}

// ArgumentDefinition describes one positional argument. Order in the
// command's Arguments slice matches CLI word order.
type ArgumentDefinition struct {
	Name        string
	Type        ArgumentType
	Description string
	Required    bool
	Variadic    bool // trailing argument only; consumes remaining positionals
	Validator   ValidatorFunc
}

// Example is a worked command line shown in help output.
type Example struct {
	Command     string
	Description string
}

// CommandDefinition is the full schema of one command. Definitions are built
// once at bootstrap and never mutated afterwards.
type CommandDefinition struct {
	Name        string
	Aliases     []string
	Description string
	Usage       string
	Options     []OptionDefinition
	Arguments   []ArgumentDefinition
	Examples    []Example
}

// Option returns the option named name, or nil.
func (d *CommandDefinition) Option(name string) *OptionDefinition {
	for i := range d.Options {
		if d.Options[i].Name == name {
			return &d.Options[i]
		}
	}
	return nil
}

// OptionByShort returns the option with the given short flag, or nil.
func (d *CommandDefinition) OptionByShort(short string) *OptionDefinition {
	if short == "" {
		return nil
	}
	for i := range d.Options {
		if d.Options[i].Short == short {
			return &d.Options[i]
		}
	}
	return nil
}

// RequiredArguments returns the required positionals in declaration order.
func (d *CommandDefinition) RequiredArguments() []ArgumentDefinition {
	var req []ArgumentDefinition
	for _, a := range d.Arguments {
		if a.Required {
			req = append(req, a)
		}
	}
	return req
}
