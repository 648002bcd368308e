// Package shell provides the interactive point code calculator.
//
// The shell keeps one PointCode for the whole session. Each command either
// changes a setting (network type, display mode, input format) or sets a new
// value and prints its conversions immediately.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"github.com/shinji-kodama/ss7calc/internal/pointcode"
)

// Prompt is shown before every input line.
const Prompt = "ss7calc> "

// errExit is returned by Exec when the user asks to leave.
var errExit = errors.New("exit")

// lineReader is the part of *readline.Instance the loop uses. Close must
// unblock a pending Readline.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

// Shell is an interactive calculator session.
type Shell struct {
	pc    *pointcode.PointCode
	mode  pointcode.DisplayMode
	input pointcode.InputFormat
	out   io.Writer
}

// New creates a session writing to out. network and mode are the initial
// settings; input is the notation assumed for bare values.
func New(out io.Writer, network pointcode.NetworkType, mode pointcode.DisplayMode, input pointcode.InputFormat) *Shell {
	if input == "" {
		input = pointcode.InputInteger
	}
	pc := pointcode.New()
	pc.SetNetworkType(network)
	return &Shell{pc: pc, mode: mode, input: input, out: out}
}

// Run starts the read-eval-print loop on the terminal. It returns when the
// user types exit, sends EOF, or ctx is cancelled, including while a line is
// being read.
func (s *Shell) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          Prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}

	// Route output through readline so it does not clobber the prompt.
	s.out = rl.Stdout()
	s.printHelp()

	return s.loop(ctx, rl)
}

// loop reads and executes lines from lr until exit, EOF or cancellation.
// lr is closed when loop returns, or as soon as ctx is done.
func (s *Shell) loop(ctx context.Context, lr lineReader) error {
	var once sync.Once
	closeReader := func() { once.Do(func() { _ = lr.Close() }) }
	defer closeReader()

	stop := context.AfterFunc(ctx, closeReader)
	defer stop()

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := lr.Readline()
		if err != nil {
			if err == readline.ErrInterrupt && ctx.Err() == nil {
				continue
			}
			// io.EOF, or the reader was closed on cancellation.
			return nil
		}

		if err := s.Exec(line); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

// Exec runs a single shell command. Conversion errors are returned to the
// caller; the session stays usable afterwards.
func (s *Shell) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
		return nil
	case "exit", "quit", "q":
		return errExit
	case "itu":
		s.pc.SetNetworkType(pointcode.NetworkITU)
		fmt.Fprintf(s.out, "network: %s\n", s.pc.KindLabel())
		return nil
	case "ansi":
		s.pc.SetNetworkType(pointcode.NetworkANSI)
		fmt.Fprintf(s.out, "network: %s\n", s.pc.KindLabel())
		return nil
	case "unknown":
		s.pc.SetNetworkType(pointcode.NetworkUnset)
		fmt.Fprintf(s.out, "network: %s\n", s.pc.KindLabel())
		return nil
	case "csv":
		s.mode = pointcode.DisplayCSV
		fmt.Fprint(s.out, pointcode.CSVColumns+"\n")
		return nil
	case "text":
		s.mode = pointcode.DisplayText
		return nil
	case "format":
		if len(args) != 1 {
			return fmt.Errorf("usage: format int|545|383")
		}
		f, err := pointcode.ParseInputFormat(args[0])
		if err != nil {
			return err
		}
		s.input = f
		fmt.Fprintf(s.out, "input format: %s\n", f)
		return nil
	case "show":
		return s.show()
	case "int", "i":
		return s.convert(pointcode.InputInteger, args)
	}

	// "545" and "383" alone are plain values, not commands.
	if len(args) > 0 {
		if f, err := pointcode.ParseInputFormat(cmd); err == nil && f != pointcode.InputInteger {
			return s.convert(f, args)
		}
	}

	// A bare value uses the current input format; an A-B-C value with the
	// integer format is ambiguous, so it defaults to 3-8-3.
	if len(fields) == 1 {
		f := s.input
		if f == pointcode.InputInteger && strings.Contains(fields[0], "-") {
			f = pointcode.Input383
		}
		return s.convert(f, fields)
	}
	return fmt.Errorf("unknown command %q (type help)", fields[0])
}

func (s *Shell) convert(f pointcode.InputFormat, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s <value>", f)
	}
	if err := s.pc.Set(f, args[0]); err != nil {
		return err
	}
	return s.show()
}

func (s *Shell) show() error {
	if !s.pc.IsSet() {
		return fmt.Errorf("no point code set yet")
	}
	return s.pc.Write(s.out, s.mode)
}

func (s *Shell) printHelp() {
	fmt.Fprint(s.out, pointcode.Header(pointcode.DisplayText))
	fmt.Fprint(s.out, `Commands:
  int N          set the point code from a decimal value
  545 A-B-C      set the point code from 5-4-5 notation
  383 A-B-C      set the point code from 3-8-3 notation
  <value>        set using the current input format (A-B-C defaults to 3-8-3)
  format F       set the input format for bare values (int, 545, 383)
  itu | ansi     tag point codes with a network type
  unknown        clear the network type
  text | csv     choose the output format
  show           print the current point code again
  help           show this help
  exit           leave the shell
`)
}
