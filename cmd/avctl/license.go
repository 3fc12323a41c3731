package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/David2287/Client-App/internal/avclient"
)

func newLicenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "license",
		Short: "Check or activate the product license",
	}
	cmd.AddCommand(newLicenseCheckCmd())
	cmd.AddCommand(newLicenseActivateCmd())
	return cmd
}

func newLicenseCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [username]",
		Short: "Show the license state for a user",
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

				info, err := c.CheckLicense(username)
				if err != nil {
					return err
				}
				fmt.Printf("License for %s:\n", username)
				fmt.Printf("  Valid:   %v\n", info.IsValid)
				fmt.Printf("  Type:    %s\n", orDash(info.LicenseType))
				fmt.Printf("  Expires: %s\n", formatExpiry(info.ExpiresAt))
				if info.Message != "" {
					fmt.Printf("  Message: %s\n", info.Message)
				}
				return nil
			})
		},
	}
}

func newLicenseActivateCmd() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "activate [username]",
		Short: "Redeem an activation key",
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

				res, err := c.ActivateLicense(username, key)
				if err != nil {
					return err
				}
				if !res.Activated {
					return fmt.Errorf("activation failed: %s", orDash(res.Message))
				}
				fmt.Printf("activated; license expires %s\n", formatExpiry(res.ExpiresAt))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "activation key")
	cmd.MarkFlagRequired("key")

	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
