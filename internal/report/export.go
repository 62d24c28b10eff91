package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/chronobench/chrono/pkg/chrono"
)

// Format selects the export rendering
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates an --output flag value
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json, or yaml)", s)
	}
}

// Export writes the results in the requested format
func Export(w io.Writer, format Format, results []*Result) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(results)
	case FormatTable:
		return exportTable(w, results)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func exportTable(w io.Writer, results []*Result) error {
	table := tablewriter.NewWriter(w)
	table.Header("Label", "Wall", "User", "System", "CPU", "CPU%")

	for _, r := range results {
		table.Append(
			r.Label,
			chrono.Format(r.Real),
			chrono.Format(r.User),
			chrono.Format(r.System),
			chrono.Format(r.User+r.System),
			fmt.Sprintf("%.1f", r.CPUPercent),
		)
	}
	return table.Render()
}
