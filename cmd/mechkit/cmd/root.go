// Package cmd provides the CLI commands for mechkit.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mechkit/internal/config"
	"mechkit/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mechkit",
	Short: "Unit-aware mechanical engineering reference toolkit",
	Long: `mechkit looks up material, thread, grade and section reference data
and runs basic mechanical design calculations, with units checked
throughout.

Examples:
  mechkit material 1050 --condition Annealed
  mechkit thread "M8 X 1.25"
  mechkit gear --pinion-teeth 100 --gear-teeth 300 --speed "100 rpm"
  mechkit analyze gearbox.mech.hcl
  mechkit cost gearbox.mech.hcl`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mechkit.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(materialCmd)
	rootCmd.AddCommand(threadCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(gearCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(costCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("mechkit version 0.1.0")
	},
}

// configCmd prints the active configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()
		fmt.Printf("Unit system:      %s\n", cfg.Units.System)
		fmt.Printf("Pressure unit:    %s\n", cfg.Units.PressureUnit)
		fmt.Printf("Length unit:      %s\n", cfg.Units.LengthUnit)
		fmt.Printf("Output format:    %s\n", cfg.Output.DefaultFormat)
		fmt.Printf("Output precision: %d\n", cfg.Output.Precision)
		fmt.Printf("Currency:         %s\n", cfg.Costing.Currency)
		fmt.Printf("Log level:        %s\n", cfg.Logging.Level)
	},
}
