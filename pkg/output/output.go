// Package output renders check results for terminals and scripts.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/fdpath/pkg/check"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// PrintResult writes a check result with colored status. Details are
// indented to line up under the name.
func PrintResult(w io.Writer, r check.Result) {
	indent := "     "
	if r.OK() {
		_, _ = fmt.Fprintf(w, "%s[OK]%s %s\n", green, reset, r.Name)
	} else {
		_, _ = fmt.Fprintf(w, "%s[FAIL]%s %s\n", red, reset, r.Name)
		indent = "       "
	}
	for _, d := range r.Details {
		_, _ = fmt.Fprintf(w, "%s%s\n", indent, formatLabel(d))
	}
}

// formatLabel dims the "label:" prefix of a detail line.
func formatLabel(detail string) string {
	label, value, ok := strings.Cut(detail, ": ")
	if !ok {
		return detail
	}
	return fmt.Sprintf("%s%s:%s %s", dim, label, reset, value)
}

type jsonResult struct {
	Name    string       `json:"name"`
	Status  check.Status `json:"status"`
	Path    string       `json:"path,omitempty"`
	Details []string     `json:"details,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// PrintJSON writes results as a JSON array, one object per result.
func PrintJSON(w io.Writer, results []check.Result) error {
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		jr := jsonResult{
			Name:    r.Name,
			Status:  r.Status,
			Path:    r.Path,
			Details: r.Details,
		}
		if r.Err != nil {
			jr.Error = r.Err.Error()
		}
		out = append(out, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}
