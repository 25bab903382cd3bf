package help

import "strings"

// Suggestion is one remediation hint produced by contextual help.
type Suggestion struct {
	Text            string
	Example         string
	RelatedCommands []string
}

// ContextualRule maps a lowercase substring pattern (or "command:<name>")
// to remediation suggestions. All rules whose pattern matches an error text
// contribute, in registration order.
type ContextualRule struct {
	Pattern     string
	Suggestions []Suggestion
}

// builtinRules is the static knowledge base. Matching is best effort: a
// miss falls back to generic advice, never to an error.
func builtinRules() []ContextualRule {
	return []ContextualRule{
		{
			Pattern: "connection refused",
			Suggestions: []Suggestion{
				{
					Text:    "Chrome is not listening on the target endpoint. Start it with remote debugging enabled.",
					Example: "chrome --remote-debugging-port=9222",
				},
				{
					Text:            "If Chrome runs on another machine, pass --host and make sure the port is reachable.",
					Example:         "cdp --host 192.168.1.20 --port 9222 version",
					RelatedCommands: []string{"inspect"},
				},
			},
		},
		{
			Pattern: "timed out",
			Suggestions: []Suggestion{
				{
					Text:    "Raise the deadline with --timeout (milliseconds).",
					Example: "cdp --timeout 60000 navigate https://slow.example.com",
				},
				{
					Text: "Slow pages often finish loading after the load event; try wait-for on a selector that appears late.",
					RelatedCommands: []string{"wait-for"},
				},
			},
		},
		{
			Pattern: "no node found",
			Suggestions: []Suggestion{
				{
					Text:    "The selector matched nothing. Verify it in the browser console first.",
					Example: "cdp eval \"document.querySelector('#submit') !== null\"",
				},
				{
					Text:            "If the element renders late, wait for it before interacting.",
					Example:         "cdp wait-for '#submit' --timeout 10000",
					RelatedCommands: []string{"wait-for", "eval"},
				},
			},
		},
		{
			Pattern: "invalid url",
			Suggestions: []Suggestion{
				{
					Text:    "URLs need an explicit scheme.",
					Example: "cdp navigate https://example.com",
				},
			},
		},
		{
			Pattern: "unknown option",
			Suggestions: []Suggestion{
				{
					Text:    "Check the command's option list; global options go before the command name.",
					Example: "cdp help <command>",
				},
			},
		},
		{
			Pattern: "must be a number",
			Suggestions: []Suggestion{
				{
					Text:    "Numeric options take bare numbers, no units.",
					Example: "cdp --timeout 30000 --port 9222 version",
				},
			},
		},
		{
			Pattern: "command:screenshot",
			Suggestions: []Suggestion{
				{
					Text:    "Without --output the image goes to a generated file name in the working directory.",
					Example: "cdp screenshot --output page.png --full-page",
				},
			},
		},
		{
			Pattern: "command:eval",
			Suggestions: []Suggestion{
				{
					Text:    "Quote the expression so the shell passes it through untouched.",
					Example: "cdp eval 'document.title'",
				},
			},
		},
		{
			Pattern: "command:fill",
			Suggestions: []Suggestion{
				{
					Text:    "fill takes the selector first, then the value.",
					Example: "cdp fill 'input[name=q]' 'search terms'",
				},
			},
		},
	}
}

// fallbackSuggestions is emitted when no rule matches.
var fallbackSuggestions = []Suggestion{
	{Text: "Check the command syntax with 'cdp help <command>'."},
	{Text: "Verify Chrome is reachable: 'cdp version' exercises the connection."},
	{Text: "Re-run with --debug for a full trace of what the CLI attempted."},
}

// ContextualHelp matches errText against the rule base and returns every
// matching rule's suggestions in registration order, then any rules keyed to
// the command. A miss returns the generic fallback; this never fails and
// never returns an empty list.
func (g *Generator) ContextualHelp(errText, commandName string) []Suggestion {
	lowered := strings.ToLower(errText)

	g.mu.RLock()
	rules := g.rules
	g.mu.RUnlock()

	var out []Suggestion
	for _, rule := range rules {
		if strings.HasPrefix(rule.Pattern, "command:") {
			continue
		}
		if strings.Contains(lowered, rule.Pattern) {
			out = append(out, rule.Suggestions...)
		}
	}

	if commandName != "" {
		key := "command:" + commandName
		for _, rule := range rules {
			if rule.Pattern == key {
				out = append(out, rule.Suggestions...)
			}
		}
	}

	if len(out) == 0 {
		return fallbackSuggestions
	}
	return out
}

// AddContextualRule registers a rule at runtime. Patterns are stored
// lowercase; matching is case-insensitive on the error text.
func (g *Generator) AddContextualRule(rule ContextualRule) {
	g.mu.Lock()
	defer g.mu.Unlock()
	rule.Pattern = strings.ToLower(rule.Pattern)
	g.rules = append(g.rules, rule)
}
