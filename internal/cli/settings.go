package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/ss7calc/internal/config"
	"github.com/shinji-kodama/ss7calc/internal/model"
	"github.com/shinji-kodama/ss7calc/internal/pointcode"
)

// settings is the effective configuration of one command run: the defaults
// file overlaid with command-line flags.
type settings struct {
	network  pointcode.NetworkType
	mode     pointcode.DisplayMode
	input    pointcode.InputFormat
	failFast bool
	header   bool
}

// loadSettings reads the defaults file (if any) and applies the global
// flags on top of it.
func loadSettings() (*settings, error) {
	if ituFlag && ansiFlag {
		return nil, model.NewCLIError(model.ExitUsage, "--itu and --ansi are mutually exclusive")
	}

	cfg := config.Default()
	if path := config.Resolve(configPath); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err // Load already returns CLIError
		}
		VerboseLog("Loaded config from %s", path)
		cfg = loaded
	}

	s := &settings{
		network:  cfg.NetworkType(),
		mode:     cfg.DisplayMode(),
		input:    cfg.Input(),
		failFast: cfg.FailFast,
		header:   cfg.ShowHeader(),
	}

	switch {
	case ansiFlag:
		s.network = pointcode.NetworkANSI
	case ituFlag:
		s.network = pointcode.NetworkITU
	}
	if csvOutput {
		s.mode = pointcode.DisplayCSV
	}
	if noHeader {
		s.header = false
	}
	return s, nil
}

// openOutput returns the writer results go to: the --output file when set,
// otherwise the command's stdout. The returned close function must always be
// called.
func openOutput(cmd *cobra.Command) (io.Writer, func() error, error) {
	if outputPath == "" || outputPath == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, model.WrapCLIError(model.ExitIOError,
			fmt.Sprintf("failed to create output file %s", outputPath), err)
	}
	VerboseLog("Writing results to %s", outputPath)
	return f, f.Close, nil
}

// closeOutput closes the output and converts a close failure into a
// CLIError unless an earlier error is already being returned.
func closeOutput(closeFn func() error, err error) error {
	if cerr := closeFn(); cerr != nil && err == nil {
		return model.WrapCLIError(model.ExitIOError, "failed to close output file", cerr)
	}
	return err
}
