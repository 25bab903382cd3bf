package completions

import (
	"strings"
	"testing"

	"github.com/nicoster/chrome-devtools-cli-sub002/internal/schema"
)

func buildTestRegistry() (*schema.Registry, []schema.OptionDefinition) {
	registry := schema.NewRegistry()
	registry.Register(&schema.CommandDefinition{
		Name:        "navigate",
		Aliases:     []string{"go"},
		Description: "Navigate the page to a URL",
		Options: []schema.OptionDefinition{
			{Name: "wait-until", Type: schema.OptionString, Description: "Lifecycle event to wait for"},
		},
	})
	registry.Register(&schema.CommandDefinition{
		Name:        "screenshot",
		Description: "Capture the page as an image",
		Options: []schema.OptionDefinition{
			{Name: "output", Short: "o", Type: schema.OptionString, Description: "Output file path"},
			{Name: "full-page", Type: schema.OptionBool, Description: "Capture the full scrollable page"},
		},
	})
	registry.Register(&schema.CommandDefinition{
		Name:        "version",
		Description: "Show version information",
	})

	globals := []schema.OptionDefinition{
		{Name: "port", Short: "p", Type: schema.OptionNumber, Description: "DevTools endpoint port"},
		{Name: "verbose", Short: "v", Type: schema.OptionBool, Description: "Verbose output"},
	}
	return registry, globals
}

func TestGenerateBash(t *testing.T) {
	registry, globalOpts := buildTestRegistry()
	commands, globals := Extract(registry, globalOpts)
	script := GenerateBash(commands, globals)

	checks := []string{
		"_cdp_completions()",
		"complete -F _cdp_completions cdp",
		"navigate",
		"go",
		"screenshot",
		"--output",
		"--full-page",
		"--no-full-page",
		"--port",
	}
	for _, check := range checks {
		if !strings.Contains(script, check) {
			t.Errorf("bash script should contain %q", check)
		}
	}

	if !strings.HasPrefix(script, "# cdp bash completion script") {
		t.Error("bash script should start with comment header")
	}
}

func TestGenerateZsh(t *testing.T) {
	registry, globalOpts := buildTestRegistry()
	commands, globals := Extract(registry, globalOpts)
	script := GenerateZsh(commands, globals)

	checks := []string{
		"#compdef cdp",
		"_cdp()",
		"_cdp_commands()",
		"_describe",
		"navigate:Navigate the page to a URL",
		"go:Navigate the page to a URL",
		"screenshot:Capture the page as an image",
		"--port[DevTools endpoint port]",
	}
	for _, check := range checks {
		if !strings.Contains(script, check) {
			t.Errorf("zsh script should contain %q", check)
		}
	}
}

func TestGenerateFish(t *testing.T) {
	registry, globalOpts := buildTestRegistry()
	commands, globals := Extract(registry, globalOpts)
	script := GenerateFish(commands, globals)

	checks := []string{
		"complete -c cdp -f",
		"__fish_use_subcommand",
		"-a navigate -d 'Navigate the page to a URL'",
		"-a go -d 'Navigate the page to a URL'",
		"'__fish_seen_subcommand_from screenshot' -l output",
		"-l port -d 'DevTools endpoint port'",
	}
	for _, check := range checks {
		if !strings.Contains(script, check) {
			t.Errorf("fish script should contain %q", check)
		}
	}
}

func TestGenerateUnsupportedShell(t *testing.T) {
	registry, globalOpts := buildTestRegistry()
	commands, globals := Extract(registry, globalOpts)

	if got := Generate(Shell("powershell"), commands, globals); got != "" {
		t.Errorf("unsupported shell should produce no script, got %d bytes", len(got))
	}
}

func TestExtractGlobalsIncludeHelpAndVersion(t *testing.T) {
	registry, globalOpts := buildTestRegistry()
	_, globals := Extract(registry, globalOpts)

	var found []string
	for _, f := range globals {
		found = append(found, f.Long)
	}
	joined := strings.Join(found, " ")
	for _, want := range []string{"--help", "--version", "--port", "--verbose", "--no-verbose"} {
		if !strings.Contains(joined, want) {
			t.Errorf("global flags should include %q, got %v", want, found)
		}
	}
}

func TestShellDetection(t *testing.T) {
	tests := []struct {
		env  string
		want Shell
	}{
		{env: "/bin/bash", want: ShellBash},
		{env: "/usr/bin/zsh", want: ShellZsh},
		{env: "/opt/homebrew/bin/fish", want: ShellFish},
		{env: "/bin/tcsh", want: ""},
		{env: "", want: ""},
	}

	for _, tt := range tests {
		t.Setenv("SHELL", tt.env)
		if got := RunningShell(); got != tt.want {
			t.Errorf("RunningShell() with SHELL=%q = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestInstructions(t *testing.T) {
	out := Instructions(ShellZsh)
	if !strings.Contains(out, "~/.zshrc") {
		t.Errorf("zsh instructions should mention ~/.zshrc:\n%s", out)
	}
	if !strings.Contains(out, `eval "$(cdp completions zsh --script)"`) {
		t.Errorf("zsh instructions should include the eval line:\n%s", out)
	}
}
