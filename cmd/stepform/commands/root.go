// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// configPath is bound to the persistent --config flag.
var configPath string

// Root returns the root command for the stepform CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stepform",
		Short:         "Fill in a multi-step form from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: built-in defaults)")

	cmd.AddCommand(Run())
	cmd.AddCommand(Draft())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
