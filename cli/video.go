package cli

import (
	"fmt"

	"github.com/nikhilkumar92976/FOOD-INSTA/client"

	"github.com/spf13/cobra"
)

func NewVideoCommand() *cobra.Command {
	var api string

	cmd := &cobra.Command{
		Use:   "video <id>",
		Short: "Show a single food video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := client.New(api).GetFood(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", item.Name)
			if item.Description != "" {
				fmt.Fprintf(out, "  %s\n", item.Description)
			}
			fmt.Fprintf(out, "  %s\n", item.Video)
			return nil
		},
	}
	cmd.Flags().StringVar(&api, "api", defaultAPI, "API base URL")
	return cmd
}
