// =============================================================================
// Compute Sales - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Unlike most CLIs,
// the interesting work hangs directly off the root command: the tool is
// invoked as
//
//   computesales <price-catalogue> <sales-record> [sales-record...]
//
// COBRA CLI STRUCTURE:
//   rootCmd (computesales)
//   └── versionCmd (computesales version)
//
// The root command is responsible for:
//   1. Declaring the global flags (--config, --verbose)
//   2. Declaring the run flags (--summary, --output, --no-save)
//   3. Validating the positional arguments
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/ginjaninja78/compute-sales/internal/config"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// summaryMode collapses per-file sections into a single totals table.
var summaryMode bool

// outputFile overrides the configured report file path when non-empty.
var outputFile string

// noSave suppresses the report file entirely, console output only.
var noSave bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command. Running it performs a full sales
// cost computation.
var rootCmd = &cobra.Command{
	Use: "computesales <price-catalogue> <sales-record> [sales-record...]",

	Short: "Compute Sales - Price sales records against a catalogue and report the cost",

	Long: `Compute Sales reads a price catalogue and one or more sales record files,
prices every sale against the catalogue, and writes a cost report to the
console and to a report file.

Key Features:
  - JSON, CSV and XLSX catalogue and sales record files
  - Exact decimal money arithmetic
  - Negative quantities and prices corrected with warnings
  - Batch runs where one broken file never stops the rest
  - Report archival with retention cleanup

Example Usage:
  computesales priceCatalogue.json salesRecord.json
  computesales priceCatalogue.json q1.json q2.json q3.json
  computesales --summary priceCatalogue.json q1.json q2.json
  computesales --config ./my.yaml priceCatalogue.json salesRecord.json`,

	// The catalogue plus at least one sales record file.
	Args: cobra.MinimumNArgs(2),

	// Errors are reported once, by Execute.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Execute the root command. If there's an error, print it and exit.
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the run function and the global and run flags.
func init() {
	// RunE is assigned here rather than in the rootCmd literal: runCompute
	// reads rootCmd's flags, so referencing it from the initializer would
	// form an initialization cycle.
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCompute(os.Stdout, args)
	}

	// Persistent flags are available to this command and all subcommands.

	// --config flag: Allows the user to specify a custom configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultConfigFile,
		"Path to the configuration file",
	)

	// --verbose flag: Enables verbose/debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	// Run flags apply to the root command only.

	rootCmd.Flags().BoolVar(
		&summaryMode,
		"summary",
		false,
		"Print a single summary table instead of per-file sections",
	)

	rootCmd.Flags().StringVarP(
		&outputFile,
		"output",
		"o",
		"",
		"Report file path (overrides output_file from the configuration)",
	)

	rootCmd.Flags().BoolVar(
		&noSave,
		"no-save",
		false,
		"Print to the console only, do not write the report file",
	)
}
