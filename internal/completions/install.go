package completions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SourceLine returns the line a user adds to their shell rc file to load
// completions on startup.
func SourceLine(shell Shell) string {
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s completions %s --script)"`, binary, shell)
	case ShellFish:
		return fmt.Sprintf("%s completions fish --script | source", binary)
	default:
		return ""
	}
}

// RcFile returns the conventional rc file for shell.
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}

// AutoInstallPath returns a directory the shell auto-loads completions from,
// or empty when the shell has no such convention.
func AutoInstallPath(shell Shell) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	switch shell {
	case ShellFish:
		return filepath.Join(home, ".config", "fish", "completions", binary+".fish")
	case ShellBash:
		return filepath.Join(home, ".local", "share", "bash-completion", "completions", binary)
	default:
		return ""
	}
}

// Instructions renders the human-readable setup steps shown when the
// completions command runs without --script.
func Instructions(shell Shell) string {
	var b strings.Builder

	b.WriteString("To enable completions, choose one of the following:\n\n")

	step := 1
	if path := AutoInstallPath(shell); path != "" {
		fmt.Fprintf(&b, "%d. Write to the auto-load directory:\n", step)
		fmt.Fprintf(&b, "   %s completions %s --script > %s\n\n", binary, shell, path)
		step++
	}

	fmt.Fprintf(&b, "%d. Add to %s:\n", step, RcFile(shell))
	fmt.Fprintf(&b, "   %s\n\n", SourceLine(shell))

	b.WriteString("Then restart your shell or run: exec $SHELL\n")
	return b.String()
}
