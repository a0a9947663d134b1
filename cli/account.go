package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/nikhilkumar92976/FOOD-INSTA/client"

	"github.com/spf13/cobra"
)

const defaultAPI = "http://localhost:3000"

type AccountOptions struct {
	API      string
	Partner  bool
	Name     string
	Email    string
	Password string
	Contact  string
	Address  string
}

// printSession shows who is logged in and the token for --token on later commands.
func printSession(out io.Writer, acct *client.Account, token string) {
	fmt.Fprintf(out, "Logged in as %s (%s)\n", acct.DisplayName(), acct.Email)
	fmt.Fprintf(out, "token: %s\n", token)
}

func NewRegisterCommand() *cobra.Command {
	opts := &AccountOptions{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a user or food partner account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Name == "" || opts.Email == "" || opts.Password == "" {
				return errors.New("--name, --email and --password are required")
			}
			api := client.New(opts.API)

			var (
				acct *client.Account
				err  error
			)
			if opts.Partner {
				if opts.Contact == "" || opts.Address == "" {
					return errors.New("--contact and --address are required for a food partner")
				}
				acct, err = api.RegisterFoodPartner(cmd.Context(), client.PartnerRegistration{
					Name:     opts.Name,
					Email:    opts.Email,
					Password: opts.Password,
					Contact:  opts.Contact,
					Address:  opts.Address,
				})
			} else {
				acct, err = api.RegisterUser(cmd.Context(), opts.Name, opts.Email, opts.Password)
			}
			if err != nil {
				return err
			}
			printSession(cmd.OutOrStdout(), acct, api.Token())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.API, "api", defaultAPI, "API base URL")
	cmd.Flags().BoolVar(&opts.Partner, "partner", false, "register a food partner instead of a user")
	cmd.Flags().StringVar(&opts.Name, "name", "", "full name, or business name for a partner")
	cmd.Flags().StringVar(&opts.Email, "email", "", "email address")
	cmd.Flags().StringVar(&opts.Password, "password", "", "password")
	cmd.Flags().StringVar(&opts.Contact, "contact", "", "partner contact number")
	cmd.Flags().StringVar(&opts.Address, "address", "", "partner address")

	return cmd
}

func NewLoginCommand() *cobra.Command {
	opts := &AccountOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Email == "" || opts.Password == "" {
				return errors.New("--email and --password are required")
			}
			api := client.New(opts.API)
			login := api.LoginUser
			if opts.Partner {
				login = api.LoginFoodPartner
			}
			acct, err := login(cmd.Context(), opts.Email, opts.Password)
			if err != nil {
				return err
			}
			printSession(cmd.OutOrStdout(), acct, api.Token())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.API, "api", defaultAPI, "API base URL")
	cmd.Flags().BoolVar(&opts.Partner, "partner", false, "log in as a food partner")
	cmd.Flags().StringVar(&opts.Email, "email", "", "email address")
	cmd.Flags().StringVar(&opts.Password, "password", "", "password")

	return cmd
}

func NewProfileCommand() *cobra.Command {
	var (
		apiURL  string
		token   string
		partner bool
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the account behind a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				return errors.New("--token is required")
			}
			api := client.New(apiURL).WithToken(token)
			profile := api.UserProfile
			if partner {
				profile = api.FoodPartnerProfile
			}
			acct, err := profile(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", acct.DisplayName())
			fmt.Fprintf(out, "  email:   %s\n", acct.Email)
			if acct.Contact != "" {
				fmt.Fprintf(out, "  contact: %s\n", acct.Contact)
			}
			if acct.Address != "" {
				fmt.Fprintf(out, "  address: %s\n", acct.Address)
			}
			if !acct.CreatedAt.IsZero() {
				fmt.Fprintf(out, "  joined:  %s\n", acct.CreatedAt.Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", defaultAPI, "API base URL")
	cmd.Flags().StringVar(&token, "token", "", "session token (bearer)")
	cmd.Flags().BoolVar(&partner, "partner", false, "the token belongs to a food partner")

	return cmd
}
