package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/David2287/Client-App/internal/avclient"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show service status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClient(func(a *app, c *avclient.Client) error {
				st, err := c.GetStatus()
				if err != nil {
					return err
				}
				fmt.Println("Antivirus service status:")
				fmt.Printf("  Running:              %v\n", st.IsRunning)
				fmt.Printf("  Real-time protection: %v\n", st.RealTimeProtection)
				fmt.Printf("  Auto scan:            %v\n", st.AutoScanEnabled)
				fmt.Printf("  Last scan:            %s\n", formatExpiry(st.LastScanTime))
				fmt.Printf("  Last update:          %s\n", formatExpiry(st.LastUpdateTime))
				fmt.Printf("  Database version:     %d\n", st.DatabaseVersion)
				fmt.Printf("  Threats blocked:      %d\n", st.TotalThreatsBlocked)
				return nil
			})
		},
	}
}
