package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/David2287/Client-App/internal/avclient"
)

func newUpdatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "updates",
		Short: "Check for signature database updates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClient(func(a *app, c *avclient.Client) error {
				st, err := c.CheckUpdates()
				if err != nil {
					return err
				}
				if !st.UpdateAvailable {
					fmt.Printf("signature database is up to date (version %d)\n", st.CurrentVersion)
					return nil
				}
				fmt.Printf("update available: version %d -> %d (%d bytes)\n",
					st.CurrentVersion, st.LatestVersion, st.UpdateSize)
				if st.UpdateDescription != "" {
					fmt.Printf("  %s\n", st.UpdateDescription)
				}
				return nil
			})
		},
	}
}
