package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/David2287/Client-App/internal/avclient"
)

var scheduleNames = map[uint32]string{0: "disabled", 1: "daily", 2: "weekly"}

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read or change service settings",
	}
	cmd.AddCommand(newSettingsGetCmd())
	cmd.AddCommand(newSettingsSetCmd())
	return cmd
}

func newSettingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show current service settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClient(func(a *app, c *avclient.Client) error {
				s, err := c.GetSettings()
				if err != nil {
					return err
				}
				fmt.Println("Service settings:")
				fmt.Printf("  Real-time protection: %v\n", s.RealTimeProtection)
				fmt.Printf("  Scan on access:       %v\n", s.ScanOnAccess)
				fmt.Printf("  Scan archives:        %v\n", s.ScanArchives)
				fmt.Printf("  Auto update:          %v\n", s.AutoUpdate)
				fmt.Printf("  Scan schedule:        %s\n", scheduleName(s.ScanSchedule))
				fmt.Printf("  Scan time:            %02d:00\n", s.ScanTime)
				fmt.Printf("  Quarantine path:      %s\n", orDash(s.QuarantinePath))
				fmt.Printf("  Exclusions:           %s\n", orDash(strings.ReplaceAll(s.ExclusionPaths, ";", ", ")))
				return nil
			})
		},
	}
}

func newSettingsSetCmd() *cobra.Command {
	var (
		realTime       bool
		scanOnAccess   bool
		scanArchives   bool
		autoUpdate     bool
		schedule       uint32
		scanTime       uint32
		quarantinePath string
		exclusions     string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change service settings",
		Long: `Change one or more service settings. Settings not named by a flag
keep their current values: the command reads the live settings first,
applies the given flags, and writes the full document back.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().NFlag() == 0 {
				return fmt.Errorf("no settings flags given")
			}
			if cmd.Flags().Changed("schedule") && schedule > 2 {
				return fmt.Errorf("schedule must be 0 (disabled), 1 (daily) or 2 (weekly)")
			}
			if cmd.Flags().Changed("scan-time") && scanTime > 23 {
				return fmt.Errorf("scan-time must be an hour of day, 0-23")
			}

			return runClient(func(a *app, c *avclient.Client) error {
				s, err := c.GetSettings()
				if err != nil {
					return err
				}

				if cmd.Flags().Changed("real-time-protection") {
					s.RealTimeProtection = realTime
				}
				if cmd.Flags().Changed("scan-on-access") {
					s.ScanOnAccess = scanOnAccess
				}
				if cmd.Flags().Changed("scan-archives") {
					s.ScanArchives = scanArchives
				}
				if cmd.Flags().Changed("auto-update") {
					s.AutoUpdate = autoUpdate
				}
				if cmd.Flags().Changed("schedule") {
					s.ScanSchedule = schedule
				}
				if cmd.Flags().Changed("scan-time") {
					s.ScanTime = scanTime
				}
				if cmd.Flags().Changed("quarantine-path") {
					s.QuarantinePath = quarantinePath
				}
				if cmd.Flags().Changed("exclusions") {
					s.ExclusionPaths = exclusions
				}

				ok, err := c.UpdateSettings(s)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("service rejected the settings update")
				}
				fmt.Println("settings updated")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&realTime, "real-time-protection", true, "enable real-time protection")
	cmd.Flags().BoolVar(&scanOnAccess, "scan-on-access", true, "scan files when they are opened")
	cmd.Flags().BoolVar(&scanArchives, "scan-archives", false, "scan inside archives")
	cmd.Flags().BoolVar(&autoUpdate, "auto-update", true, "update signatures automatically")
	cmd.Flags().Uint32Var(&schedule, "schedule", 0, "scheduled scan: 0=disabled, 1=daily, 2=weekly")
	cmd.Flags().Uint32Var(&scanTime, "scan-time", 2, "hour of day for scheduled scans (0-23)")
	cmd.Flags().StringVar(&quarantinePath, "quarantine-path", "", "quarantine directory")
	cmd.Flags().StringVar(&exclusions, "exclusions", "", "semicolon-separated paths to exclude")

	return cmd
}

func scheduleName(v uint32) string {
	if name, ok := scheduleNames[v]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%d)", v)
}
