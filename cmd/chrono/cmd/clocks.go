package cmd

import (
	"encoding/json"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/chronobench/chrono/pkg/chrono"
)

// clocksCmd represents the clocks command
var clocksCmd = &cobra.Command{
	Use:   "clocks",
	Short: "List clock kinds and their availability",
	Long:  `Show every clock kind this build supports on the current platform, with a current reading where available.`,
	RunE:  runClocks,
}

func init() {
	rootCmd.AddCommand(clocksCmd)
}

type clockStatus struct {
	Kind      string `json:"kind" yaml:"kind"`
	Supported bool   `json:"supported" yaml:"supported"`
	Reading   string `json:"reading,omitempty" yaml:"reading,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

func runClocks(cmd *cobra.Command, args []string) error {
	statuses := make([]clockStatus, 0, len(chrono.Kinds()))
	for _, kind := range chrono.Kinds() {
		status := clockStatus{
			Kind:      kind.String(),
			Supported: kind.Supported(),
		}
		if status.Supported {
			if reading, err := chrono.Now(kind); err != nil {
				status.Error = err.Error()
			} else {
				status.Reading = chrono.Format(reading)
			}
		}
		statuses = append(statuses, status)
	}

	switch outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(statuses)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Kind", "Supported", "Reading")
		for _, s := range statuses {
			supported := "no"
			if s.Supported {
				supported = "yes"
			}
			reading := s.Reading
			if s.Error != "" {
				reading = "error: " + s.Error
			}
			table.Append(s.Kind, supported, reading)
		}
		return table.Render()
	}
}
