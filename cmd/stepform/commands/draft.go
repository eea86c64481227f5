package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/stepform/cmd/stepform/handlers"
)

// Draft returns the command group for inspecting the saved draft.
func Draft() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Inspect or remove the saved draft",
	}

	cmd.AddCommand(draftShow())
	cmd.AddCommand(draftClear())

	return cmd
}

func draftShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved draft as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.DraftShow(cmd.Context(), configPath)
		},
	}
}

func draftClear() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the saved draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.DraftClear(cmd.Context(), configPath)
		},
	}
}
