// Package completions generates shell completion scripts from the command
// schema registry. Scripts are derived, never hand-maintained: a new command
// or option shows up in completions without touching this package.
package completions

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nicoster/chrome-devtools-cli-sub002/internal/schema"
)

// Shell identifies a completion dialect.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Valid reports whether s is a supported shell.
func (s Shell) Valid() bool {
	switch s {
	case ShellBash, ShellZsh, ShellFish:
		return true
	}
	return false
}

// RunningShell detects the invoking shell from $SHELL. Empty when detection
// fails; callers should then require an explicit argument.
func RunningShell() Shell {
	base := filepath.Base(os.Getenv("SHELL"))
	switch {
	case strings.HasPrefix(base, "bash"):
		return ShellBash
	case strings.HasPrefix(base, "zsh"):
		return ShellZsh
	case strings.HasPrefix(base, "fish"):
		return ShellFish
	}
	return ""
}

// CommandInfo is the completion-relevant slice of a command definition.
type CommandInfo struct {
	Name        string
	Aliases     []string
	Description string
	Flags       []FlagInfo
}

// FlagInfo is one completable flag.
type FlagInfo struct {
	Long        string // with leading dashes
	Short       string // with leading dash, may be empty
	Description string
	HasValue    bool
}

// Extract flattens the registry and the global option table into completion
// metadata. Globals complete before the command name, command flags after.
func Extract(registry *schema.Registry, globals []schema.OptionDefinition) (commands []CommandInfo, globalFlags []FlagInfo) {
	for _, def := range registry.All() {
		commands = append(commands, CommandInfo{
			Name:        def.Name,
			Aliases:     def.Aliases,
			Description: def.Description,
			Flags:       optionFlags(def.Options),
		})
	}
	globalFlags = optionFlags(globals)
	globalFlags = append(globalFlags,
		FlagInfo{Long: "--help", Description: "Show help"},
		FlagInfo{Long: "--version", Short: "-V", Description: "Show version"},
	)
	return commands, globalFlags
}

func optionFlags(opts []schema.OptionDefinition) []FlagInfo {
	var flags []FlagInfo
	for _, opt := range opts {
		fi := FlagInfo{
			Long:        "--" + opt.Name,
			Description: opt.Description,
			HasValue:    opt.Type != schema.OptionBool,
		}
		if opt.Short != "" {
			fi.Short = "-" + opt.Short
		}
		flags = append(flags, fi)
		if opt.Type == schema.OptionBool {
			flags = append(flags, FlagInfo{Long: "--no-" + opt.Name, Description: opt.Description})
		}
	}
	return flags
}
