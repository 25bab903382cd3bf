package cli

import (
	"fmt"
	"net/url"

	"github.com/nicoster/chrome-devtools-cli-sub002/internal/completions"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/schema"
)

// validURL accepts absolute http(s) and file URLs.
func validURL(v schema.Value) schema.ValidationResult {
	s, _ := schema.String(v)
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || (u.Scheme != "file" && u.Host == "") {
		return schema.Invalid(fmt.Sprintf("Invalid URL: %s (a scheme like https:// is required)", s))
	}
	return schema.OK()
}

// supportedShell limits the completions argument to known dialects.
func supportedShell(v schema.Value) schema.ValidationResult {
	s, _ := schema.String(v)
	if !completions.Shell(s).Valid() {
		return schema.Invalid(fmt.Sprintf("Unsupported shell: %s (use bash, zsh, or fish)", s))
	}
	return schema.OK()
}

// qualityRange bounds JPEG quality.
func qualityRange(v schema.Value) schema.ValidationResult {
	n, ok := schema.Number(v)
	if !ok || n < 0 || n > 100 {
		return schema.Invalid("Invalid value for --quality: must be between 0 and 100")
	}
	return schema.OK()
}

// Commands returns the full static command catalogue. The definitions are
// pure data; executors bind to them by name at the composition root.
func Commands() []*schema.CommandDefinition {
	return []*schema.CommandDefinition{
		{
			Name:        "navigate",
			Aliases:     []string{"go"},
			Description: "Navigate the page to a URL",
			Usage:       "cdp navigate <url> [options]",
			Options: []schema.OptionDefinition{
				{
					Name:        "wait-until",
					Type:        schema.OptionString,
					Description: "Lifecycle event to wait for",
					Default:     schema.StringValue("load"),
					Choices:     []string{"load", "domcontentloaded", "networkidle"},
				},
				{
					Name:        "referrer",
					Type:        schema.OptionString,
					Description: "Referrer header to send",
				},
			},
			Arguments: []schema.ArgumentDefinition{
				{Name: "url", Type: schema.ArgURL, Description: "Destination URL", Required: true, Validator: validURL},
			},
			Examples: []schema.Example{
				{Command: "cdp navigate https://example.com", Description: "Open a page and wait for load"},
				{Command: "cdp go https://example.com --wait-until networkidle", Description: "Wait until the network settles"},
			},
		},
		{
			Name:        "back",
			Description: "Go back one history entry",
			Usage:       "cdp back",
		},
		{
			Name:        "forward",
			Description: "Go forward one history entry",
			Usage:       "cdp forward",
		},
		{
			Name:        "reload",
			Description: "Reload the current page",
			Usage:       "cdp reload [options]",
			Options: []schema.OptionDefinition{
				{
					Name:        "ignore-cache",
					Type:        schema.OptionBool,
					Description: "Bypass the browser cache",
					Default:     schema.BoolValue(false),
				},
			},
		},
		{
			Name:        "screenshot",
			Aliases:     []string{"shot"},
			Description: "Capture the page as an image",
			Usage:       "cdp screenshot [options]",
			Options: []schema.OptionDefinition{
				{
					Name:        "output",
					Short:       "o",
					Type:        schema.OptionString,
					Description: "Output file path",
				},
				{
					Name:        "full-page",
					Type:        schema.OptionBool,
					Description: "Capture the full scrollable page",
					Default:     schema.BoolValue(false),
				},
				{
					Name:        "selector",
					Type:        schema.OptionString,
					Description: "Capture only the element matching this selector",
				},
				{
					Name:        "quality",
					Type:        schema.OptionNumber,
					Description: "JPEG quality (0-100)",
					Validator:   qualityRange,
				},
			},
			Examples: []schema.Example{
				{Command: "cdp screenshot --output page.png"},
				{Command: "cdp shot --full-page --output full.png", Description: "Full page, via the alias"},
			},
		},
		{
			Name:        "pdf",
			Description: "Print the page to PDF",
			Usage:       "cdp pdf [options]",
			Options: []schema.OptionDefinition{
				{
					Name:        "output",
					Short:       "o",
					Type:        schema.OptionString,
					Description: "Output file path",
				},
				{
					Name:        "landscape",
					Type:        schema.OptionBool,
					Description: "Landscape orientation",
					Default:     schema.BoolValue(false),
				},
				{
					Name:        "scale",
					Type:        schema.OptionNumber,
					Description: "Print scale",
					Default:     schema.NumberValue(1),
				},
			},
		},
		{
			Name:        "eval",
			Aliases:     []string{"exec"},
			Description: "Evaluate a JavaScript expression in the page",
			Usage:       "cdp eval <expression> [options]",
			Options: []schema.OptionDefinition{
				{
					Name:        "await",
					Type:        schema.OptionBool,
					Description: "Await the result if it is a promise",
					Default:     schema.BoolValue(true),
				},
			},
			Arguments: []schema.ArgumentDefinition{
				{Name: "expression", Type: schema.ArgString, Description: "JavaScript expression", Required: true},
			},
			Examples: []schema.Example{
				{Command: "cdp eval 'document.title'"},
				{Command: "cdp eval 'fetch(\"/api\").then(r => r.status)'", Description: "Promises resolve before printing"},
			},
		},
		{
			Name:        "click",
			Description: "Click the first element matching a selector",
			Usage:       "cdp click <selector> [options]",
			Options: []schema.OptionDefinition{
				{
					Name:        "double",
					Type:        schema.OptionBool,
					Description: "Double-click",
					Default:     schema.BoolValue(false),
				},
				{
					Name:        "button",
					Type:        schema.OptionString,
					Description: "Mouse button",
					Default:     schema.StringValue("left"),
					Choices:     []string{"left", "middle", "right"},
				},
			},
			Arguments: []schema.ArgumentDefinition{
				{Name: "selector", Type: schema.ArgString, Description: "CSS selector", Required: true},
			},
			Examples: []schema.Example{
				{Command: "cdp click '#submit'"},
			},
		},
		{
			Name:        "fill",
			Description: "Type a value into an input element",
			Usage:       "cdp fill <selector> <value> [options]",
			Options: []schema.OptionDefinition{
				{
					Name:        "clear",
					Type:        schema.OptionBool,
					Description: "Clear the field first",
					Default:     schema.BoolValue(true),
				},
				{
					Name:        "delay",
					Type:        schema.OptionNumber,
					Description: "Per-keystroke delay in milliseconds",
					Default:     schema.NumberValue(0),
				},
			},
			Arguments: []schema.ArgumentDefinition{
				{Name: "selector", Type: schema.ArgString, Description: "CSS selector", Required: true},
				{Name: "value", Type: schema.ArgString, Description: "Text to type", Required: true},
			},
			Examples: []schema.Example{
				{Command: "cdp fill 'input[name=email]' user@example.com"},
			},
		},
		{
			Name:        "select",
			Description: "Choose option values in a <select> element",
			Usage:       "cdp select <selector> <value...>",
			Arguments: []schema.ArgumentDefinition{
				{Name: "selector", Type: schema.ArgString, Description: "CSS selector", Required: true},
				{Name: "value", Type: schema.ArgString, Description: "Option value(s) to select", Required: true, Variadic: true},
			},
		},
		{
			Name:        "hover",
			Description: "Hover over the first element matching a selector",
			Usage:       "cdp hover <selector>",
			Arguments: []schema.ArgumentDefinition{
				{Name: "selector", Type: schema.ArgString, Description: "CSS selector", Required: true},
			},
		},
		{
			Name:        "text",
			Description: "Print an element's text content",
			Usage:       "cdp text <selector>",
			Arguments: []schema.ArgumentDefinition{
				{Name: "selector", Type: schema.ArgString, Description: "CSS selector", Required: true},
			},
		},
		{
			Name:        "html",
			Description: "Print the document or an element as HTML",
			Usage:       "cdp html [selector]",
			Arguments: []schema.ArgumentDefinition{
				{Name: "selector", Type: schema.ArgString, Description: "CSS selector (defaults to the document)", Required: false},
			},
		},
		{
			Name:        "attr",
			Description: "Print an element attribute",
			Usage:       "cdp attr <selector> <name>",
			Arguments: []schema.ArgumentDefinition{
				{Name: "selector", Type: schema.ArgString, Description: "CSS selector", Required: true},
				{Name: "name", Type: schema.ArgString, Description: "Attribute name", Required: true},
			},
			Examples: []schema.Example{
				{Command: "cdp attr 'a.download' href"},
			},
		},
		{
			Name:        "cookies",
			Description: "List cookies for the current page",
			Usage:       "cdp cookies [options]",
			Options: []schema.OptionDefinition{
				{
					Name:        "domain",
					Type:        schema.OptionString,
					Description: "Restrict to a domain",
				},
				{
					Name:        "names",
					Type:        schema.OptionArray,
					Description: "Only show these cookie names (comma separated)",
				},
			},
			Examples: []schema.Example{
				{Command: "cdp --format json cookies --names session,csrf"},
			},
		},
		{
			Name:        "wait-for",
			Aliases:     []string{"wait"},
			Description: "Wait until a selector matches (or disappears)",
			Usage:       "cdp wait-for <selector> [options]",
			Options: []schema.OptionDefinition{
				{
					Name:        "hidden",
					Type:        schema.OptionBool,
					Description: "Wait for the element to disappear instead",
					Default:     schema.BoolValue(false),
				},
				{
					Name:        "poll",
					Type:        schema.OptionNumber,
					Description: "Polling interval in milliseconds",
					Default:     schema.NumberValue(100),
				},
			},
			Arguments: []schema.ArgumentDefinition{
				{Name: "selector", Type: schema.ArgString, Description: "CSS selector", Required: true},
			},
			Examples: []schema.Example{
				{Command: "cdp wait-for '.results-loaded' --timeout 10000"},
			},
		},
		{
			Name:        "console",
			Description: "Stream console messages from the page",
			Usage:       "cdp console [options]",
			Options: []schema.OptionDefinition{
				{
					Name:        "follow",
					Type:        schema.OptionBool,
					Description: "Keep streaming until interrupted",
					Default:     schema.BoolValue(false),
				},
				{
					Name:        "level",
					Type:        schema.OptionString,
					Description: "Minimum message level",
					Default:     schema.StringValue("log"),
					Choices:     []string{"log", "info", "warn", "error"},
				},
			},
		},
		{
			Name:        "network",
			Description: "Stream network requests from the page",
			Usage:       "cdp network [options]",
			Options: []schema.OptionDefinition{
				{
					Name:        "follow",
					Type:        schema.OptionBool,
					Description: "Keep streaming until interrupted",
					Default:     schema.BoolValue(false),
				},
				{
					Name:        "filter",
					Type:        schema.OptionString,
					Description: "Only show URLs containing this substring",
				},
			},
		},
		{
			Name:        "inspect",
			Description: "Show the DevTools target this CLI would talk to",
			Usage:       "cdp inspect",
		},
		{
			Name:        "install",
			Description: "Download a Chrome build for automation",
			Usage:       "cdp install [version] [options]",
			Options: []schema.OptionDefinition{
				{
					Name:        "channel",
					Type:        schema.OptionString,
					Description: "Release channel",
					Default:     schema.StringValue("stable"),
					Choices:     []string{"stable", "beta", "dev"},
				},
			},
			Arguments: []schema.ArgumentDefinition{
				{Name: "version", Type: schema.ArgString, Description: "Version to install (defaults to latest)", Required: false},
			},
		},
		{
			Name:        "version",
			Description: "Show CLI and browser version information",
			Usage:       "cdp version",
		},
		{
			Name:        "completions",
			Description: "Generate shell completion scripts",
			Usage:       "cdp completions [shell] [options]",
			Options: []schema.OptionDefinition{
				{
					Name:        "script",
					Type:        schema.OptionBool,
					Description: "Print the raw script instead of install instructions",
					Default:     schema.BoolValue(false),
				},
			},
			Arguments: []schema.ArgumentDefinition{
				{
					Name:        "shell",
					Type:        schema.ArgString,
					Description: "Shell dialect (defaults to $SHELL)",
					Required:    false,
					Validator:   supportedShell,
				},
			},
			Examples: []schema.Example{
				{Command: "cdp completions zsh --script", Description: "Emit the zsh script for eval"},
			},
		},
		{
			Name:        "help",
			Description: "Show help for a command or topic",
			Usage:       "cdp help [command|topic]",
			Arguments: []schema.ArgumentDefinition{
				{Name: "topic", Type: schema.ArgString, Description: "Command or topic name", Required: false},
			},
			Options: []schema.OptionDefinition{
				{
					Name:        "interactive",
					Short:       "i",
					Type:        schema.OptionBool,
					Description: "Browse help in an interactive viewer",
					Default:     schema.BoolValue(false),
				},
			},
		},
	}
}
