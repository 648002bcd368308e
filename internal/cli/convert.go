// Package cli: convert.go implements the root command's single conversion.
//
// Exactly one of --int, --545 or --383 provides the value. A grouped value
// tags the point code as ITU when neither the flags nor the config file name
// a network, as the grouped notations are ITU conventions.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/ss7calc/internal/model"
	"github.com/shinji-kodama/ss7calc/internal/pointcode"
)

// convertFlags holds the value flags of the root command.
// These are bound to cobra flags in NewRootCommand.
type convertFlags struct {
	integer string
	f545    string
	f383    string
}

// valueFlag describes the single value flag the user supplied.
type valueFlag struct {
	name   string
	format pointcode.InputFormat
	text   string
}

// selected returns the value flags that were actually given on the
// command line.
func (f *convertFlags) selected(cmd *cobra.Command) []valueFlag {
	candidates := []valueFlag{
		{"int", pointcode.InputInteger, f.integer},
		{"545", pointcode.Input545, f.f545},
		{"383", pointcode.Input383, f.f383},
	}

	var given []valueFlag
	for _, c := range candidates {
		if cmd.Flags().Changed(c.name) {
			given = append(given, c)
		}
	}
	return given
}

// runConvert is the main logic function for the root command.
func runConvert(cmd *cobra.Command, flags *convertFlags) error {
	// Step 1: Work out which value flag was used.
	given := flags.selected(cmd)
	switch len(given) {
	case 0:
		return model.NewCLIError(model.ExitUsage,
			"please set a value for the point code (use --int, --545 or --383)")
	case 1:
	default:
		return model.NewCLIError(model.ExitUsage,
			"--int, --545 and --383 are mutually exclusive")
	}
	value := given[0]

	// Step 2: Resolve defaults and global flags.
	s, err := loadSettings()
	if err != nil {
		return err
	}

	// Step 3: Parse the value into a point code.
	pc := pointcode.New()
	VerboseLog("Setting spc=%s (%s)", value.text, value.format)
	if err := pc.Set(value.format, value.text); err != nil {
		return model.WrapPointCodeError(fmt.Sprintf("invalid --%s value", value.name), err)
	}

	network := s.network
	if value.format != pointcode.InputInteger && network == pointcode.NetworkUnset {
		network = pointcode.NetworkITU
	}
	pc.SetNetworkType(network)

	// Step 4: Print the result.
	w, closeFn, err := openOutput(cmd)
	if err != nil {
		return err
	}
	return closeOutput(closeFn, printPointCode(w, pc, s))
}

// printPointCode writes the optional banner and the rendered point code.
func printPointCode(w io.Writer, pc *pointcode.PointCode, s *settings) error {
	if s.header {
		if _, err := io.WriteString(w, pointcode.Header(s.mode)); err != nil {
			return model.WrapCLIError(model.ExitIOError, "failed to write output", err)
		}
	}
	if err := pc.Write(w, s.mode); err != nil {
		return model.WrapCLIError(model.ExitIOError, "failed to write output", err)
	}
	return nil
}
