package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/nicoster/chrome-devtools-cli-sub002/internal/cli"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/completions"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/config"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/dispatch"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/help"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/helpui"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/log"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/parser"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/paths"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/render"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/schema"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/ui"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/ui/style"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/usage"
)

var version = "0.3.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	p, registry := cli.BuildParser()
	result := p.ParseArguments(args)

	if err := applyConfigFile(result); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}

	setupEnvironment(result)
	defer log.Close()
	log.Info("invocation: command=%s args=%v", result.Command, result.Arguments)

	gen := help.NewGenerator(p, registry)

	if result.Command == "help" && result.Success {
		return runHelp(gen, registry, result)
	}

	if !result.Success {
		reportFailure(gen, result.Command, result.Errors)
		return 5
	}

	if vr := p.ValidateArguments(result.Command, result); !vr.Valid {
		reportFailure(gen, result.Command, vr.Errors)
		return 5
	} else if len(vr.Warnings) > 0 {
		for _, w := range vr.Warnings {
			log.Warn("validation: %s", w)
			if !ui.IsQuiet() {
				fmt.Fprintln(os.Stderr, "warning: "+w)
			}
		}
	}

	d := dispatch.New()
	registerExecutors(d, registry)

	timeout := 30000 * time.Millisecond
	if n, ok := schema.Number(result.Options["timeout"]); ok && n > 0 {
		timeout = time.Duration(n) * time.Millisecond
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	res := d.Run(ctx, dispatch.Invocation{
		Command:   result.Command,
		Options:   result.Options,
		Arguments: result.Arguments,
	})

	format := render.FormatText
	if f, _ := schema.String(result.Options["format"]); f == "json" {
		format = render.FormatJSON
	}

	output := render.Render(res, format)
	if res.Success {
		fmt.Print(output)
		return 0
	}

	fmt.Fprint(os.Stderr, output)
	if format == render.FormatText && !ui.IsQuiet() {
		fmt.Fprint(os.Stderr, help.RenderSuggestions(gen.ContextualHelp(res.Error, res.Command)))
	}
	return res.ExitCode
}

// applyConfigFile overlays --config file values onto options the user did
// not set explicitly.
func applyConfigFile(result *parser.ParseResult) error {
	path, ok := schema.String(result.Options["config"])
	required := true
	if !ok || path == "" {
		defaultPath, err := paths.ConfigFilePath()
		if err != nil {
			return nil
		}
		path = defaultPath
		required = false
	}

	f, err := config.Load(path, required)
	if err != nil {
		return err
	}
	f.Apply(result.Options, result.Explicit)
	return nil
}

// setupEnvironment configures styling, quiet mode, and logging from the
// merged global options.
func setupEnvironment(result *parser.ParseResult) {
	enableColor := term.IsTerminal(int(os.Stdout.Fd()))
	style.Init(enableColor)

	if schema.Bool(result.Options["quiet"]) {
		ui.EnableQuiet()
		ui.DisablePager()
	}

	level := log.LevelWarn
	if schema.Bool(result.Options["verbose"]) {
		level = log.LevelInfo
	}
	if schema.Bool(result.Options["debug"]) {
		level = log.LevelDebug
	}
	if env := os.Getenv("CDP_LOG_LEVEL"); env != "" {
		level = log.ParseLevel(env)
	}
	if logPath, err := paths.LogFilePath(); err == nil {
		if err := log.Init(logPath, level); err != nil {
			fmt.Fprintln(os.Stderr, "warning: "+err.Error())
		}
	}
}

// runHelp routes the help command: interactive browser, command help, topic
// help, or the general page.
func runHelp(gen *help.Generator, registry *schema.Registry, result *parser.ParseResult) int {
	if schema.Bool(result.Options["interactive"]) {
		if err := helpui.Run(gen, registry); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return 1
		}
		return 0
	}

	if len(result.Arguments) == 0 {
		ui.Pager(gen.GeneralHelp())
		return 0
	}

	target := result.Arguments[0]
	if gen.LookupTopic(target) != nil {
		ui.Pager(gen.TopicHelp(target))
		return 0
	}
	ui.Pager(gen.CommandHelp(target))
	return 0
}

// reportFailure prints parse or validation errors with layered contextual
// suggestions.
func reportFailure(gen *help.Generator, command string, errs []string) {
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e)
	}
	if !ui.IsQuiet() {
		fmt.Fprint(os.Stderr, help.RenderSuggestions(gen.ContextualHelp(strings.Join(errs, "\n"), command)))
	}
}

// registerExecutors binds built-in executors. The browser commands proper
// are reached through an external CDP transport this binary does not embed;
// they report a connection-kind error until one is wired in.
func registerExecutors(d *dispatch.Dispatcher, registry *schema.Registry) {
	d.Register("version", func(ctx context.Context, inv dispatch.Invocation) (any, error) {
		return map[string]string{"cli": version}, nil
	})

	d.Register("inspect", func(ctx context.Context, inv dispatch.Invocation) (any, error) {
		host, _ := schema.String(inv.Options["host"])
		port, _ := schema.Number(inv.Options["port"])
		return map[string]any{
			"endpoint": fmt.Sprintf("%s:%d", host, int(port)),
			"timeout":  inv.Options["timeout"].Display(),
		}, nil
	})

	d.Register("completions", func(ctx context.Context, inv dispatch.Invocation) (any, error) {
		shell := completions.RunningShell()
		if len(inv.Arguments) > 0 {
			shell = completions.Shell(inv.Arguments[0])
		}
		if !shell.Valid() {
			return nil, usage.Validation("could not detect shell, specify one: cdp completions <bash|zsh|fish>")
		}
		if schema.Bool(inv.Options["script"]) {
			commands, globals := completions.Extract(registry, cli.GlobalOptions())
			return completions.Generate(shell, commands, globals), nil
		}
		return completions.Instructions(shell), nil
	})

	notConnected := func(ctx context.Context, inv dispatch.Invocation) (any, error) {
		return nil, usage.ConnectionFailed(errors.New("no DevTools transport configured"))
	}
	for _, def := range registry.All() {
		if !d.Has(def.Name) && def.Name != "help" {
			d.Register(def.Name, notConnected)
		}
	}
}
