package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/stepform/cmd/stepform/handlers"
)

// Run returns the command that starts the form wizard.
//
// Flags:
//
//	--input, -i: Fill the form from a YAML or JSON file instead of the UI
//	--ephemeral: Keep the draft in memory only
func Run() *cobra.Command {
	var (
		inputPath string
		ephemeral bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fill in the form",
		Long: `Fill in the form step by step.

The form has three steps:

  - Personal Information (name, email, phone)
  - Address Information (address lines, city, state, ZIP code)
  - Confirmation

Every change is saved as a draft. Quit at any time with ctrl+c and
run this command again to continue where you left off. The draft is
removed once the form is submitted.

Use --input to fill the form from a file (YAML or JSON, "-" for stdin).
Each step is validated in order and the form is submitted when all
steps pass.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Run(cmd.Context(), handlers.RunOptions{
				ConfigPath: configPath,
				InputPath:  inputPath,
				Ephemeral:  ephemeral,
			})
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Fill the form from a YAML or JSON file")
	cmd.Flags().BoolVar(&ephemeral, "ephemeral", false, "Keep the draft in memory only")

	return cmd
}
