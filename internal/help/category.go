package help

// CommandCategory groups commands on the general help page.
type CommandCategory int

const (
	CategoryGeneral CommandCategory = iota
	CategoryJavaScript
	CategoryCapture
	CategoryInteraction
	CategoryMonitoring
	CategoryNavigation
	CategorySetup
	CategoryInfo
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryJavaScript:
		return "JavaScript Execution"
	case CategoryCapture:
		return "Page Capture"
	case CategoryInteraction:
		return "User Interaction"
	case CategoryMonitoring:
		return "Monitoring & Debugging"
	case CategoryNavigation:
		return "Navigation & Timing"
	case CategorySetup:
		return "Installation & Setup"
	case CategoryInfo:
		return "Help & Information"
	default:
		return "General"
	}
}

var categoryOrder = []CommandCategory{
	CategoryNavigation,
	CategoryJavaScript,
	CategoryCapture,
	CategoryInteraction,
	CategoryMonitoring,
	CategorySetup,
	CategoryInfo,
	CategoryGeneral,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}

// categoryMembers maps command names into their display category. Commands
// absent from every list land in General.
var categoryMembers = map[CommandCategory][]string{
	CategoryJavaScript:  {"eval"},
	CategoryCapture:     {"screenshot", "pdf", "html", "text", "attr"},
	CategoryInteraction: {"click", "fill", "select", "hover"},
	CategoryMonitoring:  {"console", "network", "inspect", "cookies"},
	CategoryNavigation:  {"navigate", "back", "forward", "reload", "wait-for"},
	CategorySetup:       {"install", "completions"},
	CategoryInfo:        {"help", "version"},
}

// CategoryOf returns the category a command name belongs to.
func CategoryOf(name string) CommandCategory {
	for cat, members := range categoryMembers {
		for _, m := range members {
			if m == name {
				return cat
			}
		}
	}
	return CategoryGeneral
}

// seeAlso maps command names to related help topics, rendered as the
// cross-reference footer of per-command help.
var seeAlso = map[string][]string{
	"navigate":   {"getting-started", "connection"},
	"screenshot": {"formats"},
	"pdf":        {"formats"},
	"eval":       {"getting-started"},
	"click":      {"selectors"},
	"fill":       {"selectors"},
	"select":     {"selectors"},
	"hover":      {"selectors"},
	"text":       {"selectors"},
	"html":       {"selectors"},
	"attr":       {"selectors"},
	"wait-for":   {"selectors", "exit-codes"},
	"console":    {"connection"},
	"network":    {"connection"},
	"inspect":    {"connection"},
	"install":    {"getting-started"},
}
