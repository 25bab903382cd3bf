package completions

import (
	"fmt"
	"sort"
	"strings"
)

const binary = "cdp"

// GenerateBash renders a bash completion script.
func GenerateBash(commands []CommandInfo, globals []FlagInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s bash completion script\n", binary)
	fmt.Fprintf(&b, "_%s_completions() {\n", binary)
	b.WriteString("    local cur prev words\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")

	fmt.Fprintf(&b, "    local commands=%q\n", strings.Join(commandWords(commands), " "))
	fmt.Fprintf(&b, "    local globals=%q\n\n", strings.Join(flagWords(globals), " "))

	b.WriteString("    local cmd=\"\" i\n")
	b.WriteString("    for ((i=1; i < COMP_CWORD; i++)); do\n")
	b.WriteString("        case \"${COMP_WORDS[i]}\" in\n")
	b.WriteString("            -*) continue ;;\n")
	b.WriteString("            *) cmd=\"${COMP_WORDS[i]}\"; break ;;\n")
	b.WriteString("        esac\n")
	b.WriteString("    done\n\n")

	b.WriteString("    if [[ -z \"$cmd\" ]]; then\n")
	b.WriteString("        COMPREPLY=( $(compgen -W \"$commands $globals\" -- \"$cur\") )\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"$cmd\" in\n")
	for _, cmd := range commands {
		if len(cmd.Flags) == 0 {
			continue
		}
		names := append([]string{cmd.Name}, cmd.Aliases...)
		fmt.Fprintf(&b, "        %s)\n", strings.Join(names, "|"))
		fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n",
			strings.Join(flagWords(cmd.Flags), " "))
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "complete -F _%s_completions %s\n", binary, binary)
	return b.String()
}

// GenerateZsh renders a zsh completion script.
func GenerateZsh(commands []CommandInfo, globals []FlagInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "#compdef %s\n\n", binary)

	fmt.Fprintf(&b, "_%s_commands() {\n", binary)
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, cmd := range commands {
		fmt.Fprintf(&b, "        '%s:%s'\n", cmd.Name, zshEscape(cmd.Description))
		for _, alias := range cmd.Aliases {
			fmt.Fprintf(&b, "        '%s:%s'\n", alias, zshEscape(cmd.Description))
		}
	}
	b.WriteString("    )\n")
	b.WriteString("    _describe 'command' commands\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "_%s() {\n", binary)
	b.WriteString("    local -a globals\n")
	b.WriteString("    globals=(\n")
	for _, f := range globals {
		fmt.Fprintf(&b, "        '%s[%s]'\n", f.Long, zshEscape(f.Description))
	}
	b.WriteString("    )\n")
	fmt.Fprintf(&b, "    _arguments $globals '1: :_%s_commands' '*::arg:->args'\n", binary)
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "_%s \"$@\"\n", binary)
	return b.String()
}

// GenerateFish renders a fish completion script.
func GenerateFish(commands []CommandInfo, globals []FlagInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s fish completion script\n", binary)
	fmt.Fprintf(&b, "complete -c %s -f\n\n", binary)

	for _, f := range globals {
		fmt.Fprintf(&b, "complete -c %s -l %s -d '%s'\n",
			binary, strings.TrimPrefix(f.Long, "--"), fishEscape(f.Description))
	}
	b.WriteString("\n")

	for _, cmd := range commands {
		names := append([]string{cmd.Name}, cmd.Aliases...)
		for _, name := range names {
			fmt.Fprintf(&b, "complete -c %s -n __fish_use_subcommand -a %s -d '%s'\n",
				binary, name, fishEscape(cmd.Description))
		}
		for _, f := range cmd.Flags {
			fmt.Fprintf(&b, "complete -c %s -n '__fish_seen_subcommand_from %s' -l %s -d '%s'\n",
				binary, strings.Join(names, " "), strings.TrimPrefix(f.Long, "--"), fishEscape(f.Description))
		}
	}
	return b.String()
}

// Generate renders the script for shell, or empty for an unsupported shell.
func Generate(shell Shell, commands []CommandInfo, globals []FlagInfo) string {
	sort.Slice(commands, func(i, j int) bool { return commands[i].Name < commands[j].Name })
	switch shell {
	case ShellBash:
		return GenerateBash(commands, globals)
	case ShellZsh:
		return GenerateZsh(commands, globals)
	case ShellFish:
		return GenerateFish(commands, globals)
	default:
		return ""
	}
}

func commandWords(commands []CommandInfo) []string {
	var words []string
	for _, cmd := range commands {
		words = append(words, cmd.Name)
		words = append(words, cmd.Aliases...)
	}
	return words
}

func flagWords(flags []FlagInfo) []string {
	var words []string
	for _, f := range flags {
		words = append(words, f.Long)
		if f.Short != "" {
			words = append(words, f.Short)
		}
	}
	return words
}

func zshEscape(s string) string {
	return strings.ReplaceAll(s, "'", "'\\''")
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
