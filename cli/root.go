package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the foodinsta binary.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "foodinsta",
		Short:         "Food Insta: short food videos from local food partners",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewReelCommand())
	cmd.AddCommand(NewVideoCommand())
	cmd.AddCommand(NewRegisterCommand())
	cmd.AddCommand(NewLoginCommand())
	cmd.AddCommand(NewProfileCommand())
	cmd.AddCommand(NewUploadCommand())

	return cmd
}
