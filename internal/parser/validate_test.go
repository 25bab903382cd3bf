package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nicoster/chrome-devtools-cli-sub002/internal/schema"
)

func TestValidateMissingRequired(t *testing.T) {
	p := newTestParser(t)

	// Parsing a bare "deploy" succeeds; validation reports what is missing.
	res := p.ParseArguments([]string{"deploy"})
	require.True(t, res.Success)
	require.Empty(t, res.Arguments)

	vr := p.ValidateArguments("deploy", res)
	require.False(t, vr.Valid)
	joined := strings.Join(vr.Errors, "\n")
	require.Contains(t, joined, "Missing required option: --target")
	require.Contains(t, joined, "Missing required argument: env")
}

func TestValidateNamesEveryMissingArgument(t *testing.T) {
	p := New(schema.NewRegistry(), testGlobals())
	require.NoError(t, p.RegisterCommand(&schema.CommandDefinition{
		Name:        "copy",
		Description: "x",
		Arguments: []schema.ArgumentDefinition{
			{Name: "source", Type: schema.ArgFile, Required: true},
			{Name: "dest", Type: schema.ArgFile, Required: true},
		},
	}))

	tests := []struct {
		name     string
		tokens   []string
		missing  []string
		provided int
	}{
		{name: "none provided", tokens: []string{"copy"}, missing: []string{"source", "dest"}},
		{name: "one provided", tokens: []string{"copy", "a.txt"}, missing: []string{"dest"}},
		{name: "all provided", tokens: []string{"copy", "a.txt", "b.txt"}, missing: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := p.ParseArguments(tt.tokens)
			require.True(t, res.Success)

			vr := p.ValidateArguments("copy", res)
			if len(tt.missing) == 0 {
				require.True(t, vr.Valid)
				require.Empty(t, vr.Errors)
				return
			}
			require.False(t, vr.Valid)
			require.Len(t, vr.Errors, len(tt.missing), "every missing argument is named")
			for i, name := range tt.missing {
				require.Contains(t, vr.Errors[i], name)
			}
		})
	}
}

func TestValidateChoices(t *testing.T) {
	p := New(schema.NewRegistry(), testGlobals())
	require.NoError(t, p.RegisterCommand(&schema.CommandDefinition{
		Name:        "capture",
		Description: "x",
		Options: []schema.OptionDefinition{
			{Name: "kind", Type: schema.OptionString, Choices: []string{"png", "jpeg"}},
		},
	}))

	res := p.ParseArguments([]string{"capture", "--kind", "gif"})
	require.True(t, res.Success)

	vr := p.ValidateArguments("capture", res)
	require.False(t, vr.Valid)
	require.Contains(t, vr.Errors[0], "must be one of: png, jpeg")

	res = p.ParseArguments([]string{"capture", "--kind", "png"})
	vr = p.ValidateArguments("capture", res)
	require.True(t, vr.Valid)
}

func TestValidateCustomValidators(t *testing.T) {
	nonEmpty := func(v schema.Value) schema.ValidationResult {
		if s, _ := schema.String(v); strings.TrimSpace(s) == "" {
			return schema.Invalid("selector must not be blank")
		}
		return schema.OK()
	}
	slowWarning := func(v schema.Value) schema.ValidationResult {
		n, _ := schema.Number(v)
		r := schema.OK()
		if n > 60000 {
			r.Warnings = append(r.Warnings, "delays over a minute are probably a mistake")
		}
		return r
	}

	p := New(schema.NewRegistry(), testGlobals())
	require.NoError(t, p.RegisterCommand(&schema.CommandDefinition{
		Name:        "poke",
		Description: "x",
		Options: []schema.OptionDefinition{
			{Name: "delay", Type: schema.OptionNumber, Validator: slowWarning},
		},
		Arguments: []schema.ArgumentDefinition{
			{Name: "selector", Type: schema.ArgString, Required: true, Validator: nonEmpty},
		},
	}))

	res := p.ParseArguments([]string{"poke", "--delay", "90000", " "})
	require.True(t, res.Success)

	vr := p.ValidateArguments("poke", res)
	require.False(t, vr.Valid)
	require.Contains(t, vr.Errors[0], "selector must not be blank")
	require.Contains(t, vr.Warnings[0], "over a minute")
}

func TestValidateVariadicArguments(t *testing.T) {
	even := func(v schema.Value) schema.ValidationResult {
		s, _ := schema.String(v)
		if len(s)%2 != 0 {
			return schema.Invalid("value " + s + " has odd length")
		}
		return schema.OK()
	}

	p := New(schema.NewRegistry(), testGlobals())
	require.NoError(t, p.RegisterCommand(&schema.CommandDefinition{
		Name:        "pick",
		Description: "x",
		Arguments: []schema.ArgumentDefinition{
			{Name: "selector", Type: schema.ArgString, Required: true},
			{Name: "value", Type: schema.ArgString, Required: true, Variadic: true, Validator: even},
		},
	}))

	// The variadic trailing argument accepts any number of positionals and
	// its validator runs per value.
	res := p.ParseArguments([]string{"pick", "#menu", "ab", "cde", "fg"})
	require.True(t, res.Success)
	require.Equal(t, []string{"#menu", "ab", "cde", "fg"}, res.Arguments)

	vr := p.ValidateArguments("pick", res)
	require.False(t, vr.Valid)
	require.Len(t, vr.Errors, 1)
	require.Contains(t, vr.Errors[0], "cde")

	// One value satisfies the required variadic.
	res = p.ParseArguments([]string{"pick", "#menu", "ab"})
	vr = p.ValidateArguments("pick", res)
	require.True(t, vr.Valid)
}

func TestValidateRoundTrip(t *testing.T) {
	// Supplying every declared option with a matching value and every
	// required positional must validate cleanly.
	p := newTestParser(t)

	res := p.ParseArguments([]string{
		"deploy", "-T", "prod", "--force", "--tags", "a,b", "--retries", "2", "staging",
	})
	require.True(t, res.Success, "errors: %v", res.Errors)

	vr := p.ValidateArguments("deploy", res)
	require.True(t, vr.Valid)
	require.Empty(t, vr.Errors)
}

func TestValidateUnknownCommandIsNoop(t *testing.T) {
	p := newTestParser(t)
	res := p.ParseArguments([]string{"deploy", "-T", "x", "staging"})

	// help and version run without a schema.
	vr := p.ValidateArguments("version", res)
	require.True(t, vr.Valid)
}
