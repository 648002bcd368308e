// Package cli: shell.go implements the "ss7calc shell" command, an
// interactive calculator session.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/ss7calc/internal/model"
	"github.com/shinji-kodama/ss7calc/internal/shell"
)

// NewShellCommand creates the "shell" cobra command.
func NewShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive point code calculator",
		Long: `Start an interactive session. Type a point code to convert it, or
"help" for the list of commands.

The --itu/--ansi, --csv and --config flags set the initial session settings.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings()
			if err != nil {
				return err
			}
			sh := shell.New(cmd.OutOrStdout(), s.network, s.mode, s.input)
			if err := sh.Run(cmd.Context()); err != nil {
				return model.WrapCLIError(model.ExitGeneralError, "shell failed", err)
			}
			return nil
		},
	}
}
