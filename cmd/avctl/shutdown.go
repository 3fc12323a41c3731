package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/David2287/Client-App/internal/avclient"
)

func newShutdownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shutdown",
		Short: "Ask the service to stop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClient(func(a *app, c *avclient.Client) error {
				ok, err := c.ShutdownService()
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("service refused to shut down")
				}
				fmt.Println("service shutting down")
				return nil
			})
		},
	}
}
