package help

// Topic is a conceptual documentation page, addressable by name from
// "cdp help <topic>".
type Topic struct {
	Name        string
	Title       string
	Description string
	Content     string
	Examples    []string
	SeeAlso     []string
}

// builtinTopics is the static topic catalogue. Runtime additions go through
// Generator.AddTopic.
func builtinTopics() []*Topic {
	return []*Topic{
		{
			Name:        "getting-started",
			Title:       "Getting Started",
			Description: "First steps with the DevTools CLI",
			Content: `Start Chrome with remote debugging enabled:

   chrome --remote-debugging-port=9222

Then point the CLI at it. The default endpoint is localhost:9222; use
--host and --port to target another instance.

Every invocation follows the same shape:

   cdp [global options] <command> [command options] [arguments]

Global options come before the command name. Anything after the command
belongs to that command's own schema.`,
			Examples: []string{
				"cdp navigate https://example.com",
				"cdp --port 9223 screenshot --output page.png",
				"cdp eval 'document.title'",
			},
			SeeAlso: []string{"connection", "exit-codes"},
		},
		{
			Name:        "selectors",
			Title:       "CSS Selectors",
			Description: "How element-targeting commands locate nodes",
			Content: `Interaction commands (click, fill, hover, select, text, html, attr,
wait-for) take a CSS selector as their first positional argument. The
selector is evaluated with document.querySelector, so the first match
wins. Quote selectors in your shell; most contain characters the shell
would otherwise interpret.`,
			Examples: []string{
				"cdp click '#submit'",
				"cdp fill 'input[name=email]' user@example.com",
				"cdp wait-for '.results-loaded' --timeout 10000",
			},
			SeeAlso: []string{"getting-started"},
		},
		{
			Name:        "formats",
			Title:       "Output Formats",
			Description: "Choosing between text and JSON output",
			Content: `The --format global option selects how results are rendered: "text"
(default) prints a human summary, "json" emits one machine-readable
object per invocation with the command name, success flag, data payload
and timing. Capture commands that write files (screenshot, pdf) report
the written path in either format.`,
			Examples: []string{
				"cdp --format json text 'h1'",
				"cdp -f json cookies",
			},
		},
		{
			Name:        "connection",
			Title:       "Connecting to Chrome",
			Description: "Endpoints, ports, and connection troubleshooting",
			Content: `The CLI talks to Chrome's DevTools protocol endpoint over
host:port, default localhost:9222. If connections are refused, confirm
Chrome is running with --remote-debugging-port and that nothing else
owns the port. Remote hosts must expose the port; Chrome binds it to
localhost unless told otherwise. --timeout bounds how long any single
command waits, in milliseconds.`,
			Examples: []string{
				"cdp --host 192.168.1.20 --port 9222 navigate https://example.com",
				"cdp --timeout 60000 pdf --output slow-page.pdf",
			},
			SeeAlso: []string{"exit-codes"},
		},
		{
			Name:        "exit-codes",
			Title:       "Exit Codes",
			Description: "What the process exit status means",
			Content: `0  success
1  general error
2  connection error (endpoint unreachable)
3  command error (the browser rejected the operation)
4  timeout
5  invalid arguments or validation failure

Scripts should branch on these rather than parsing error text.`,
		},
	}
}
