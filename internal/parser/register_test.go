package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nicoster/chrome-devtools-cli-sub002/internal/schema"
)

func TestRegisterCommandStructuralChecks(t *testing.T) {
	tests := []struct {
		name string
		def  *schema.CommandDefinition
		want []string // substrings that must all appear in the error
	}{
		{
			name: "empty name",
			def:  &schema.CommandDefinition{Description: "x"},
			want: []string{"name must be a non-empty string"},
		},
		{
			name: "empty description",
			def:  &schema.CommandDefinition{Name: "x"},
			want: []string{"description must be a non-empty string"},
		},
		{
			name: "multi-character short flag",
			def: &schema.CommandDefinition{
				Name: "x", Description: "x",
				Options: []schema.OptionDefinition{
					{Name: "out", Short: "ou", Type: schema.OptionString},
				},
			},
			want: []string{`short flag "ou" must be a single character`},
		},
		{
			name: "short collides within command",
			def: &schema.CommandDefinition{
				Name: "x", Description: "x",
				Options: []schema.OptionDefinition{
					{Name: "tempo", Short: "t", Type: schema.OptionNumber},
					{Name: "track", Short: "t", Type: schema.OptionString},
				},
			},
			want: []string{`short flag "t" collides with "tempo"`},
		},
		{
			name: "choices on non-string option",
			def: &schema.CommandDefinition{
				Name: "x", Description: "x",
				Options: []schema.OptionDefinition{
					{Name: "level", Type: schema.OptionNumber, Choices: []string{"1", "2"}},
				},
			},
			want: []string{"declares choices but is not a string option"},
		},
		{
			name: "variadic not trailing",
			def: &schema.CommandDefinition{
				Name: "x", Description: "x",
				Arguments: []schema.ArgumentDefinition{
					{Name: "files", Type: schema.ArgFile, Variadic: true},
					{Name: "dest", Type: schema.ArgString},
				},
			},
			want: []string{`argument "files" is variadic but not trailing`},
		},
		{
			name: "all violations reported together",
			def: &schema.CommandDefinition{
				Name: "", Description: "",
				Options: []schema.OptionDefinition{
					{Name: "out", Short: "ou", Type: schema.OptionString},
				},
			},
			want: []string{
				"name must be a non-empty string",
				"description must be a non-empty string",
				`short flag "ou" must be a single character`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(schema.NewRegistry(), testGlobals())
			err := p.RegisterCommand(tt.def)
			require.Error(t, err)
			for _, frag := range tt.want {
				require.Contains(t, err.Error(), frag)
			}
			require.Empty(t, p.Registry().All(), "failed registration must not register")
		})
	}
}

func TestRegisterCommandShortMayShadowGlobal(t *testing.T) {
	// A command short that reuses a global short (here t, timeout) is legal:
	// global shorts are consumed before the command name, command shorts after.
	p := New(schema.NewRegistry(), testGlobals())
	err := p.RegisterCommand(&schema.CommandDefinition{
		Name:        "deploy",
		Description: "x",
		Options: []schema.OptionDefinition{
			{Name: "target", Short: "t", Type: schema.OptionString, Required: true},
		},
	})
	require.NoError(t, err)

	res := p.ParseArguments([]string{"-t", "5000", "deploy", "-t", "prod"})
	require.True(t, res.Success, "errors: %v", res.Errors)
	require.Equal(t, schema.NumberValue(5000), res.Options["timeout"])
	require.Equal(t, schema.StringValue("prod"), res.Options["target"])
}

func TestRegisterCommandAliasCollision(t *testing.T) {
	p := New(schema.NewRegistry(), testGlobals())

	first := &schema.CommandDefinition{Name: "deploy", Aliases: []string{"d"}, Description: "x"}
	require.NoError(t, p.RegisterCommand(first))

	second := &schema.CommandDefinition{Name: "destroy", Aliases: []string{"d"}, Description: "y"}
	err := p.RegisterCommand(second)
	require.Error(t, err)
	require.Contains(t, err.Error(), `alias "d" already used by command "deploy"`)

	// The failed registration must not touch existing state.
	require.True(t, p.HasCommand("deploy"))
	require.False(t, p.HasCommand("destroy"))
	require.Same(t, first, p.GetCommand("d"))
}

func TestRegisterCommandAliasVsCommandName(t *testing.T) {
	p := New(schema.NewRegistry(), testGlobals())
	require.NoError(t, p.RegisterCommand(&schema.CommandDefinition{Name: "deploy", Description: "x"}))

	err := p.RegisterCommand(&schema.CommandDefinition{
		Name: "destroy", Aliases: []string{"deploy"}, Description: "y",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), `alias "deploy" already used`)
}

func TestAliasResolution(t *testing.T) {
	p := New(schema.NewRegistry(), testGlobals())
	def := &schema.CommandDefinition{
		Name:        "screenshot",
		Aliases:     []string{"shot", "ss"},
		Description: "x",
	}
	require.NoError(t, p.RegisterCommand(def))

	for _, name := range []string{"screenshot", "shot", "ss"} {
		require.True(t, p.HasCommand(name), name)
		require.Same(t, def, p.GetCommand(name), name)
	}

	canonical, ok := p.Resolve("shot")
	require.True(t, ok)
	require.Equal(t, "screenshot", canonical)
}
