package help

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/nicoster/chrome-devtools-cli-sub002/internal/parser"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/schema"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/ui/style"
)

const defaultSuggestionsCount = 3

// Generator renders help and contextual assistance. It resolves commands
// through the live parser first and falls back to the static registry, so
// help stays useful even for definitions that failed parser registration.
type Generator struct {
	parser   *parser.Parser
	registry *schema.Registry

	mu         sync.RWMutex
	topics     map[string]*Topic
	topicOrder []string
	rules      []ContextualRule
}

// NewGenerator creates a generator with the built-in topic catalogue and
// contextual knowledge base loaded.
func NewGenerator(p *parser.Parser, registry *schema.Registry) *Generator {
	g := &Generator{
		parser:   p,
		registry: registry,
		topics:   make(map[string]*Topic),
	}
	for _, t := range builtinTopics() {
		g.AddTopic(t)
	}
	g.rules = builtinRules()
	return g
}

// AddTopic registers a topic at runtime; a repeated name replaces the
// earlier topic but keeps its position.
func (g *Generator) AddTopic(t *Topic) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.topics[t.Name]; !exists {
		g.topicOrder = append(g.topicOrder, t.Name)
	}
	g.topics[t.Name] = t
}

// LookupTopic returns the named topic, or nil.
func (g *Generator) LookupTopic(name string) *Topic {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.topics[name]
}

// Topics returns all topics in registration order.
func (g *Generator) Topics() []*Topic {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Topic, 0, len(g.topicOrder))
	for _, name := range g.topicOrder {
		out = append(out, g.topics[name])
	}
	return out
}

func (g *Generator) lookupCommand(name string) *schema.CommandDefinition {
	if def := g.parser.GetCommand(name); def != nil {
		return def
	}
	return g.registry.Get(name)
}

// CommandHelp renders per-command help, or a "did you mean" listing when the
// command is unknown.
func (g *Generator) CommandHelp(name string) string {
	def := g.lookupCommand(name)
	if def == nil {
		return g.unknownCommandHelp(name)
	}

	var out bytes.Buffer

	fmt.Fprintf(&out, "%s - %s\n\n", style.Header("cdp "+def.Name), def.Description)

	out.WriteString("USAGE\n   ")
	out.WriteString(formatUsage(def.Usage))
	out.WriteString("\n\n")

	if len(def.Arguments) > 0 {
		out.WriteString("ARGUMENTS\n")
		for _, arg := range def.Arguments {
			label := arg.Name
			if arg.Variadic {
				label += "..."
			}
			note := "optional"
			if arg.Required {
				note = "required"
			}
			if arg.Type != schema.ArgString {
				note += ", " + arg.Type.String()
			}
			fmt.Fprintf(&out, "   %s  %s %s\n",
				style.Info(fmt.Sprintf("%-16s", label)), arg.Description, style.Muted("("+note+")"))
		}
		out.WriteString("\n")
	}

	if len(def.Options) > 0 {
		out.WriteString("OPTIONS\n")
		for _, opt := range def.Options {
			fmt.Fprintf(&out, "   %s  %s\n",
				style.Info(fmt.Sprintf("%-26s", optionFlags(&opt))), optionSummary(&opt))
		}
		out.WriteString("\n")
	}

	if len(def.Examples) > 0 {
		out.WriteString("EXAMPLES\n")
		for i, ex := range def.Examples {
			fmt.Fprintf(&out, "   %d. %s\n", i+1, style.Info(ex.Command))
			if ex.Description != "" {
				fmt.Fprintf(&out, "      %s\n", style.Muted(ex.Description))
			}
		}
		out.WriteString("\n")
	}

	if len(def.Aliases) > 0 {
		fmt.Fprintf(&out, "ALIASES\n   %s\n\n", strings.Join(def.Aliases, ", "))
	}

	if topics := seeAlso[def.Name]; len(topics) > 0 {
		out.WriteString("SEE ALSO\n")
		for _, t := range topics {
			fmt.Fprintf(&out, "   cdp help %s\n", t)
		}
		out.WriteString("\n")
	}

	out.WriteString("See 'cdp help' for the full command list.\n")
	return out.String()
}

func (g *Generator) unknownCommandHelp(name string) string {
	var out bytes.Buffer

	fmt.Fprintf(&out, "%s\n\n", style.Error("Unknown command: "+name))

	var candidates []string
	for _, def := range g.registry.All() {
		candidates = append(candidates, def.Name)
		candidates = append(candidates, def.Aliases...)
	}

	if similar := FindSimilar(name, candidates, defaultSuggestionsCount); len(similar) > 0 {
		out.WriteString("Did you mean:\n")
		for _, s := range similar {
			fmt.Fprintf(&out, "   %s\n", style.Info(s))
		}
		out.WriteString("\n")
	}

	out.WriteString("Available commands:\n")
	names := make([]string, 0, len(g.registry.All()))
	for _, def := range g.registry.All() {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(&out, "   %s\n", n)
	}
	out.WriteString("\nSee 'cdp help' for descriptions.\n")
	return out.String()
}

// GeneralHelp renders the top-level help page: usage, the global option
// table, and every command grouped by category.
func (g *Generator) GeneralHelp() string {
	var out bytes.Buffer

	out.WriteString(style.Header("cdp"))
	out.WriteString(" - control Chrome from the command line\n\n")

	out.WriteString("USAGE\n   ")
	out.WriteString(formatUsage("cdp [global options] <command> [options] [arguments]"))
	out.WriteString("\n\n")

	out.WriteString("GLOBAL OPTIONS\n")
	for _, opt := range g.parser.Globals() {
		fmt.Fprintf(&out, "   %s  %s\n",
			style.Info(fmt.Sprintf("%-26s", optionFlags(&opt))), optionSummary(&opt))
	}
	fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-26s", "--version, -V")), "Show version")
	fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-26s", "--help")), "Show help")
	out.WriteString("\n")

	grouped := make(map[CommandCategory][]*schema.CommandDefinition)
	for _, def := range g.registry.All() {
		cat := CategoryOf(def.Name)
		grouped[cat] = append(grouped[cat], def)
	}

	for _, cat := range categoryOrder {
		defs := grouped[cat]
		if len(defs) == 0 {
			continue
		}
		sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })

		out.WriteString(cat.String())
		out.WriteString("\n")
		for _, def := range defs {
			fmt.Fprintf(&out, "   %s  %s\n",
				style.Info(fmt.Sprintf("%-16s", def.Name)), def.Description)
		}
		out.WriteString("\n")
	}

	out.WriteString("conceptual guides\n")
	for _, topic := range g.Topics() {
		fmt.Fprintf(&out, "   %s  %s\n",
			style.Muted(fmt.Sprintf("%-16s", topic.Name)), topic.Description)
	}
	out.WriteString("\n")

	out.WriteString("See 'cdp help <command>' for detailed help on a specific command.\n")
	out.WriteString("See 'cdp help <topic>' for conceptual documentation.\n")
	return out.String()
}

// TopicHelp renders one topic, or the list of known topics when the name
// does not match.
func (g *Generator) TopicHelp(name string) string {
	topic := g.LookupTopic(name)
	if topic == nil {
		var out bytes.Buffer
		fmt.Fprintf(&out, "%s\n\nTOPICS\n", style.Error("Unknown topic: "+name))
		for _, t := range g.Topics() {
			fmt.Fprintf(&out, "   %s  %s\n",
				style.Muted(fmt.Sprintf("%-16s", t.Name)), t.Description)
		}
		out.WriteString("\nSee 'cdp help <topic>' to read about a specific topic.\n")
		return out.String()
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "%s - %s\n\n", style.Header(topic.Title), topic.Description)
	out.WriteString(topic.Content)
	out.WriteString("\n")

	if len(topic.Examples) > 0 {
		out.WriteString("\nEXAMPLES\n")
		for _, ex := range topic.Examples {
			fmt.Fprintf(&out, "   %s\n", style.Info(ex))
		}
	}

	if len(topic.SeeAlso) > 0 {
		out.WriteString("\nSEE ALSO\n")
		for _, ref := range topic.SeeAlso {
			fmt.Fprintf(&out, "   cdp help %s\n", ref)
		}
	}
	return out.String()
}

// RenderSuggestions formats contextual-help suggestions for terminal output.
func RenderSuggestions(suggestions []Suggestion) string {
	var out bytes.Buffer
	out.WriteString("Suggestions:\n")
	for _, s := range suggestions {
		fmt.Fprintf(&out, "   - %s\n", s.Text)
		if s.Example != "" {
			fmt.Fprintf(&out, "     %s\n", style.Muted(s.Example))
		}
		if len(s.RelatedCommands) > 0 {
			fmt.Fprintf(&out, "     %s\n", style.Muted("related: "+strings.Join(s.RelatedCommands, ", ")))
		}
	}
	return out.String()
}

// optionFlags renders the flag column: short, long, and boolean negation.
func optionFlags(opt *schema.OptionDefinition) string {
	var parts []string
	if opt.Short != "" {
		parts = append(parts, "-"+opt.Short)
	}
	parts = append(parts, "--"+opt.Name)
	if opt.Type == schema.OptionBool {
		parts = append(parts, "--no-"+opt.Name)
	}
	flags := strings.Join(parts, ", ")
	if opt.Type != schema.OptionBool {
		flags += " <" + opt.Type.String() + ">"
	}
	return flags
}

// optionSummary renders the description column with required/default/choices
// annotations.
func optionSummary(opt *schema.OptionDefinition) string {
	summary := opt.Description
	var notes []string
	if opt.Required {
		notes = append(notes, "required")
	}
	if opt.Default != nil {
		notes = append(notes, "default: "+opt.Default.Display())
	}
	if len(opt.Choices) > 0 {
		notes = append(notes, "choices: "+strings.Join(opt.Choices, ", "))
	}
	if len(notes) > 0 {
		summary += " " + style.Muted("("+strings.Join(notes, "; ")+")")
	}
	return summary
}

// formatUsage styles the usage line with the command in Info color and the
// rest muted.
func formatUsage(usage string) string {
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return style.Info(cmd)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}
