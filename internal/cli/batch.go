// Package cli: batch.go implements the "ss7calc batch" command.
//
// The batch command converts a list of point codes, one per line, read from
// a file or from stdin. Invalid lines are reported on stderr and skipped
// unless --fail-fast is given; either way the command exits non-zero when
// any line failed.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/ss7calc/internal/batch"
	"github.com/shinji-kodama/ss7calc/internal/model"
	"github.com/shinji-kodama/ss7calc/internal/pointcode"
)

// batchFlags holds the flag values for the batch command.
type batchFlags struct {
	// inputFormat is the notation of each input line: int, 545 or 383.
	inputFormat string

	// failFast aborts at the first invalid line.
	failFast bool
}

// NewBatchCommand creates the "batch" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewBatchCommand() *cobra.Command {
	flags := &batchFlags{}

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Convert point codes read from a file or stdin, one per line",
		Long: `Convert a list of point codes, one per line.

Input is read from the given file, or from stdin when the file is omitted
or "-". Each line is trimmed before parsing; blank or invalid lines are
reported and skipped.

Examples:
  ss7calc batch codes.txt
  ss7calc batch --csv -o codes.csv codes.txt
  ss7calc batch --input-format 383 --fail-fast < itu.txt`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runBatch(cmd, path, flags)
		},
	}

	cmd.Flags().StringVar(&flags.inputFormat, "input-format", "int",
		"Notation of each input line: int, 545, 383")
	cmd.Flags().BoolVar(&flags.failFast, "fail-fast", false,
		"Stop at the first invalid line")

	return cmd
}

// runBatch is the main logic function for the batch command.
func runBatch(cmd *cobra.Command, path string, flags *batchFlags) error {
	// Step 1: Resolve defaults; explicit batch flags override the config.
	s, err := loadSettings()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("input-format") {
		f, err := pointcode.ParseInputFormat(flags.inputFormat)
		if err != nil {
			return model.WrapCLIError(model.ExitUsage, "invalid --input-format", err)
		}
		s.input = f
	}
	if cmd.Flags().Changed("fail-fast") {
		s.failFast = flags.failFast
	}

	// Step 2: Open the input.
	var in io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return model.WrapCLIError(model.ExitIOError,
				fmt.Sprintf("failed to open input file %s", path), err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}
	VerboseLog("Reading %s point codes from %s", s.input, path)

	// Step 3: Open the output.
	w, closeFn, err := openOutput(cmd)
	if err != nil {
		return err
	}

	// Step 4: Convert line by line.
	stderr := cmd.ErrOrStderr()
	res, err := batch.Process(cmd.Context(), in, w, batch.Options{
		Mode:     s.mode,
		Network:  s.network,
		Input:    s.input,
		Header:   s.header,
		FailFast: s.failFast,
		OnError: func(e batch.LineError) {
			// Log the error but continue processing the other lines.
			fmt.Fprintf(stderr, "Warning: %v\n", &e)
		},
	})
	err = closeOutput(closeFn, batchError(err))
	if err != nil {
		return err
	}

	VerboseLog("Converted %d of %d lines", res.Converted, res.Lines())
	if len(res.Failed) > 0 {
		return model.NewCLIError(model.ExitInvalidPointCode,
			fmt.Sprintf("%d of %d lines could not be converted", len(res.Failed), res.Lines()))
	}
	return nil
}

// batchError maps a batch.Process error to a CLIError.
func batchError(err error) error {
	if err == nil {
		return nil
	}
	var lineErr *batch.LineError
	if errors.As(err, &lineErr) {
		return model.WrapCLIError(model.ExitInvalidPointCode, "batch aborted", err)
	}
	return model.WrapCLIError(model.ExitIOError, "batch processing failed", err)
}
