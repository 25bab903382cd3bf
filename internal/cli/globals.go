package cli

import "github.com/nicoster/chrome-devtools-cli-sub002/internal/schema"

// GlobalOptions is the fixed table of options recognized before the command
// name. --help and --version/-V are handled ahead of this table and never
// combine with a command.
func GlobalOptions() []schema.OptionDefinition {
	return []schema.OptionDefinition{
		{
			Name:        "host",
			Short:       "h",
			Type:        schema.OptionString,
			Description: "DevTools endpoint host",
			Default:     schema.StringValue("localhost"),
		},
		{
			Name:        "port",
			Short:       "p",
			Type:        schema.OptionNumber,
			Description: "DevTools endpoint port",
			Default:     schema.NumberValue(9222),
		},
		{
			Name:        "format",
			Short:       "f",
			Type:        schema.OptionString,
			Description: "Output format",
			Default:     schema.StringValue("text"),
			Choices:     []string{"json", "text"},
		},
		{
			Name:        "verbose",
			Short:       "v",
			Type:        schema.OptionBool,
			Description: "Verbose output",
			Default:     schema.BoolValue(false),
		},
		{
			Name:        "quiet",
			Short:       "q",
			Type:        schema.OptionBool,
			Description: "Suppress non-essential output",
			Default:     schema.BoolValue(false),
		},
		{
			Name:        "timeout",
			Short:       "t",
			Type:        schema.OptionNumber,
			Description: "Command timeout in milliseconds",
			Default:     schema.NumberValue(30000),
		},
		{
			Name:        "debug",
			Short:       "d",
			Type:        schema.OptionBool,
			Description: "Debug logging",
			Default:     schema.BoolValue(false),
		},
		{
			Name:        "config",
			Short:       "c",
			Type:        schema.OptionString,
			Description: "Path to a YAML config file",
		},
	}
}
