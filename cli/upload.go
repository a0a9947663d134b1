package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/nikhilkumar92976/FOOD-INSTA/client"

	"github.com/spf13/cobra"
)

type UploadOptions struct {
	API         string
	Token       string
	Name        string
	Description string
	File        string
}

func NewUploadCommand() *cobra.Command {
	opts := &UploadOptions{}

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Post a food video as a food partner",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Token == "" {
				return errors.New("--token is required (see: foodinsta login --partner)")
			}
			if opts.Name == "" || opts.Description == "" || opts.File == "" {
				return errors.New("--name, --description and --file are required")
			}

			f, err := os.Open(opts.File)
			if err != nil {
				return fmt.Errorf("open video: %w", err)
			}
			defer f.Close()

			item, err := client.New(opts.API).WithToken(opts.Token).CreateFood(cmd.Context(), client.NewFood{
				Name:        opts.Name,
				Description: opts.Description,
				Filename:    opts.File,
				Video:       f,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s (%s)\n  %s\n", item.Name, item.ID, item.Video)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.API, "api", defaultAPI, "API base URL")
	cmd.Flags().StringVar(&opts.Token, "token", "", "food partner session token")
	cmd.Flags().StringVar(&opts.Name, "name", "", "dish name")
	cmd.Flags().StringVar(&opts.Description, "description", "", "short description")
	cmd.Flags().StringVar(&opts.File, "file", "", "path to the video file")

	return cmd
}
