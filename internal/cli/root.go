// Package cli implements the cobra-based CLI commands for ss7calc.
//
// The root command converts a single point code given on the command line.
// The batch and shell subcommands are defined in their own files. This file
// defines the root command, the global flags and the error/exit handling.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/ss7calc/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// csvOutput selects CSV records instead of the labelled text block.
	csvOutput bool

	// outputPath redirects results to a file instead of stdout.
	outputPath string

	// configPath points at an optional YAML/JSONC defaults file.
	configPath string

	// noHeader suppresses the banner (and the CSV column line).
	noHeader bool

	// ituFlag and ansiFlag tag point codes with a network type.
	ituFlag  bool
	ansiFlag bool

	// verbose enables detailed logging output for debugging.
	// When true, additional information about operations is printed to stderr.
	verbose bool
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// Run without a subcommand, it converts the point code given with --int,
// --545 or --383 and prints all representations.
func NewRootCommand() *cobra.Command {
	flags := &convertFlags{}

	rootCmd := &cobra.Command{
		Use:   "ss7calc",
		Short: "SS7 Signaling Point Code calculator",
		Long: `ss7calc converts SS7 Signaling Point Codes (SPC) between their decimal
value, the ITU 3-8-3 notation and the 5-4-5 notation.

Examples:
  ss7calc --int 1234
  ss7calc --545 30-0-30
  ss7calc --383 1-2-3 --ansi --csv
  ss7calc batch codes.txt --csv -o codes.csv
  ss7calc shell

For more information: http://en.wikipedia.org/wiki/Point_code`,

		Args: cobra.NoArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, flags)
		},
	}

	rootCmd.Flags().StringVarP(&flags.integer, "int", "i", "", "Set the point code as a decimal value")
	rootCmd.Flags().StringVarP(&flags.f545, "545", "5", "", "Set the point code in 5-4-5 format (A-B-C)")
	rootCmd.Flags().StringVarP(&flags.f383, "383", "3", "", "Set the point code in 3-8-3 format (A-B-C)")

	// PersistentFlags are inherited by all subcommands.
	rootCmd.PersistentFlags().BoolVarP(&ituFlag, "itu", "u", false, "Specify the point code as ITU")
	rootCmd.PersistentFlags().BoolVarP(&ansiFlag, "ansi", "a", false, "Specify the point code as ANSI")
	rootCmd.PersistentFlags().BoolVar(&csvOutput, "csv", false, "Output in CSV format")
	rootCmd.PersistentFlags().BoolVar(&noHeader, "no-header", false, "Do not print the banner or CSV column header")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Write results to a file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Defaults file (YAML or JSONC); also $SS7CALC_CONFIG")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Malformed flags are usage errors, not conversion failures.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return model.WrapCLIError(model.ExitUsage, "invalid arguments", err)
	})

	rootCmd.AddCommand(NewBatchCommand())
	rootCmd.AddCommand(NewShellCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// CLIError types carry their own exit codes; other errors default to
// exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(int(handleError(err)))
	}
}

// handleError prints err to stderr and returns the exit code to use.
func handleError(err error) model.ExitCode {
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(cliErr.Message, cliErr.Err)
		if cliErr.Code == model.ExitUsage {
			fmt.Fprintln(os.Stderr, "\tfor help use --help")
		}
		return cliErr.Code
	}

	printError(err.Error(), nil)
	return model.ExitGeneralError
}

// printError outputs an error message as "Error: <message>" on stderr.
func printError(message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}
