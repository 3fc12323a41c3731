package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/David2287/Client-App/internal/avclient"
)

var scanTypes = map[string]bool{
	"file":   true,
	"folder": true,
	"drive":  true,
	"system": true,
}

func newScanCmd() *cobra.Command {
	var (
		scanType string
		deep     bool
	)

	cmd := &cobra.Command{
		Use:   "scan <path>",
		Short: "Start a scan of the given path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !scanTypes[scanType] {
				return fmt.Errorf("unknown scan type %q (file, folder, drive, system)", scanType)
			}
			return runClient(func(a *app, c *avclient.Client) error {
				id, err := c.StartScan(scanType, args[0], deep)
				if err != nil {
					return err
				}
				if id == "" {
					fmt.Println("scan started")
					return nil
				}
				fmt.Printf("scan started: %s\n", id)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&scanType, "type", "t", "folder", "scan type (file, folder, drive, system)")
	cmd.Flags().BoolVar(&deep, "deep", false, "deep scan (slower, inspects archives and packed files)")

	return cmd
}
