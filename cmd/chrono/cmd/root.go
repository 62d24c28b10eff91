package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chronobench/chrono/internal/report"
	"github.com/chronobench/chrono/pkg/logging"
)

var (
	cfgFile      string
	outputFormat string
	logLevel     string
	jsonLogs     bool

	logger *logging.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "chrono",
	Short: "Measure wall and CPU time with the system's native clocks",
	Long: `chrono samples the operating system's timing sources (wall clock, monotonic
clock, process user/system CPU time, thread CPU time) and measures how long
commands and workloads take on each of them.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.New(logging.ParseLevel(logLevel), jsonLogs)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chrono/config)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "table", "output format: table, json, or yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "emit logs as JSON")
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}
		viper.AddConfigPath(filepath.Join(home, ".chrono"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()
	viper.BindEnv("output", "CHRONO_OUTPUT")
	viper.BindEnv("log_level", "CHRONO_LOG_LEVEL")
	viper.BindEnv("listen", "CHRONO_LISTEN")

	if err := viper.ReadInConfig(); err == nil {
		// Flags win over config; config wins over defaults.
		if v := viper.GetString("output"); v != "" && outputFormat == "table" {
			outputFormat = v
		}
		if v := viper.GetString("log_level"); v != "" && logLevel == "info" {
			logLevel = v
		}
	}
}

// exportResults renders results to stdout in the selected output format
func exportResults(results []*report.Result) error {
	format, err := report.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	return report.Export(os.Stdout, format, results)
}
