package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chronobench/chrono/internal/exporter"
)

var listenAddr string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Serve the process CPU clocks as Prometheus metrics",
	Long: `Start an HTTP server exposing the process's real, user, and system time as
Prometheus gauges at /metrics, measured from the moment the exporter starts.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&listenAddr, "listen", ":9600", "listen address")
}

func runExport(cmd *cobra.Command, args []string) error {
	if v := viper.GetString("listen"); v != "" && !cmd.Flags().Changed("listen") {
		listenAddr = v
	}

	exp, err := exporter.New(logger)
	if err != nil {
		return err
	}
	return exp.Serve(listenAddr)
}
