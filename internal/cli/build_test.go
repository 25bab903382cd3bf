package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nicoster/chrome-devtools-cli-sub002/internal/schema"
)

func TestBuildParserRegistersCatalogue(t *testing.T) {
	p, registry := BuildParser()

	for _, def := range Commands() {
		require.True(t, registry.Has(def.Name), "command %q not registered", def.Name)
		for _, alias := range def.Aliases {
			canonical, ok := p.Resolve(alias)
			require.True(t, ok, "alias %q unresolved", alias)
			require.Equal(t, def.Name, canonical)
		}
	}

	require.Len(t, registry.All(), len(Commands()))
}

func TestCatalogueDefinitionsAreWellFormed(t *testing.T) {
	// The parser permits a command short to shadow a global short, but the
	// shipped catalogue avoids it so every -x means one thing in --help.
	shorts := make(map[string]string)
	for _, opt := range GlobalOptions() {
		if opt.Short != "" {
			shorts[opt.Short] = "global --" + opt.Name
		}
	}

	for _, def := range Commands() {
		require.NotEmpty(t, def.Description, "command %q has no description", def.Name)
		require.NotEmpty(t, def.Usage, "command %q has no usage line", def.Name)

		for _, opt := range def.Options {
			require.True(t, opt.Type.Valid(), "%s --%s has an invalid type", def.Name, opt.Name)
			if opt.Default != nil {
				require.Equal(t, opt.Type, opt.Default.Kind(),
					"%s --%s default kind mismatch", def.Name, opt.Name)
			}
			if owner, taken := shorts[opt.Short]; taken && opt.Short != "" {
				t.Fatalf("%s -%s collides with %s", def.Name, opt.Short, owner)
			}
		}

		for i, arg := range def.Arguments {
			require.True(t, arg.Type.Valid(), "%s <%s> has an invalid type", def.Name, arg.Name)
			if arg.Variadic {
				require.Equal(t, len(def.Arguments)-1, i,
					"%s variadic <%s> is not trailing", def.Name, arg.Name)
			}
		}
	}
}

func TestCatalogueRoundTrip(t *testing.T) {
	p, _ := BuildParser()

	res := p.ParseArguments([]string{"navigate", "https://example.com", "--wait-until", "networkidle"})
	require.True(t, res.Success)
	require.Equal(t, "navigate", res.Command)
	require.Equal(t, []string{"https://example.com"}, res.Arguments)
	require.Equal(t, schema.StringValue("networkidle"), res.Option("wait-until"))

	vr := p.ValidateArguments(res.Command, res)
	require.True(t, vr.Valid)
}

func TestCatalogueAliasParse(t *testing.T) {
	p, _ := BuildParser()

	res := p.ParseArguments([]string{"shot", "--full-page", "-o", "page.png"})
	require.True(t, res.Success)
	require.Equal(t, "screenshot", res.Command)
	require.Equal(t, schema.BoolValue(true), res.Option("full-page"))
	require.Equal(t, schema.StringValue("page.png"), res.Option("output"))
}

func TestURLValidatorRejectsSchemeless(t *testing.T) {
	p, _ := BuildParser()

	res := p.ParseArguments([]string{"navigate", "example.com"})
	require.True(t, res.Success)

	vr := p.ValidateArguments(res.Command, res)
	require.False(t, vr.Valid)
	require.Contains(t, vr.Errors[0], "Invalid URL")
}

func TestURLValidatorAcceptsFileScheme(t *testing.T) {
	p, _ := BuildParser()

	res := p.ParseArguments([]string{"navigate", "file:///tmp/page.html"})
	vr := p.ValidateArguments(res.Command, res)
	require.True(t, vr.Valid)
}

func TestQualityValidatorBounds(t *testing.T) {
	p, _ := BuildParser()

	res := p.ParseArguments([]string{"screenshot", "--quality", "140"})
	require.True(t, res.Success)

	vr := p.ValidateArguments(res.Command, res)
	require.False(t, vr.Valid)
	require.Contains(t, vr.Errors[0], "between 0 and 100")
}

func TestSelectVariadicValues(t *testing.T) {
	p, _ := BuildParser()

	res := p.ParseArguments([]string{"select", "#colors", "red", "green", "blue"})
	require.True(t, res.Success)
	require.Equal(t, []string{"#colors", "red", "green", "blue"}, res.Arguments)

	vr := p.ValidateArguments(res.Command, res)
	require.True(t, vr.Valid)
}

func TestGlobalDefaultsApplied(t *testing.T) {
	p, _ := BuildParser()

	res := p.ParseArguments([]string{"version"})
	require.True(t, res.Success)
	require.Equal(t, schema.NumberValue(9222), res.Option("port"))
	require.Equal(t, schema.StringValue("text"), res.Option("format"))
	require.Equal(t, schema.NumberValue(30000), res.Option("timeout"))
	require.False(t, res.Explicit["port"])
}
