// Package render turns command results into terminal output, honoring the
// --format global option.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/nicoster/chrome-devtools-cli-sub002/internal/dispatch"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/ui/style"
)

// Format is the closed set of output formats; it mirrors the --format
// option's choices list.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Render produces the user-visible representation of a result. Unknown
// formats fall back to text; the choices validation upstream makes that a
// defensive path only.
func Render(result dispatch.CommandResult, format Format) string {
	if format == FormatJSON {
		return renderJSON(result)
	}
	return renderText(result)
}

type jsonEnvelope struct {
	ID         string `json:"id"`
	Command    string `json:"command"`
	Success    bool   `json:"success"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	ExitCode   int    `json:"exitCode"`
	DurationMS int64  `json:"durationMs"`
}

func renderJSON(result dispatch.CommandResult) string {
	env := jsonEnvelope{
		ID:         result.ID,
		Command:    result.Command,
		Success:    result.Success,
		Data:       result.Data,
		Error:      result.Error,
		ExitCode:   result.ExitCode,
		DurationMS: result.Duration.Milliseconds(),
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		// Data payloads come from executors; an unmarshalable one should
		// still produce output.
		return fmt.Sprintf(`{"id":%q,"command":%q,"success":false,"error":"unrenderable result: %v"}`,
			result.ID, result.Command, err)
	}
	return string(data) + "\n"
}

func renderText(result dispatch.CommandResult) string {
	var out bytes.Buffer

	if !result.Success {
		fmt.Fprintf(&out, "%s %s\n", style.Error("error:"), result.Error)
		return out.String()
	}

	switch data := result.Data.(type) {
	case nil:
		fmt.Fprintf(&out, "%s %s\n", style.Success("ok:"), result.Command)
	case string:
		fmt.Fprintln(&out, data)
	default:
		encoded, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			fmt.Fprintf(&out, "%v\n", data)
		} else {
			out.Write(encoded)
			out.WriteString("\n")
		}
	}
	return out.String()
}
