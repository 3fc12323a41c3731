package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/David2287/Client-App/internal/avclient"
)

func newAuthCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "auth [username]",
		Short: "Authenticate a user against the service",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClient(func(a *app, c *avclient.Client) error {
				var arg string
				if len(args) > 0 {
					arg = args[0]
				}
				username, err := resolveUsername(arg, a)
				if err != nil {
					return err
				}

				ok, err := c.Authenticate(username, password)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("authentication rejected for %s", username)
				}
				fmt.Printf("authenticated as %s\n", username)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password for the user")
	cmd.MarkFlagRequired("password")

	return cmd
}
