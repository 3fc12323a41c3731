package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/David2287/Client-App/internal/avclient"
	"github.com/David2287/Client-App/internal/config"
	"github.com/David2287/Client-App/internal/logging"
	"github.com/David2287/Client-App/internal/paths"
)

// Set via -ldflags at build time.
var (
	version   = "dev"
	gitSHA    = "unknown"
	buildTime = "unknown"
)

// Global flags.
var (
	cfgFile     string
	logLevel    string
	logFormat   string
	callTimeout string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avctl",
		Short: "Control CLI for the antivirus background service",
		Long: `avctl talks to the antivirus service over its named pipe: it can
authenticate a user, check or activate a license, start scans, show
running status, and read or write the service settings.

Each invocation opens one connection to the service, performs its
request/response exchanges, and exits.`,
		SilenceUsage: true,
	}

	// Global flags.
	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: "+paths.ConfigFile()+")")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (console, json)")
	cmd.PersistentFlags().StringVar(&callTimeout, "timeout", "", "per-call timeout, e.g. 10s")

	// Add subcommands.
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAuthCmd())
	cmd.AddCommand(newLicenseCmd())
	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newSettingsCmd())
	cmd.AddCommand(newUpdatesCmd())
	cmd.AddCommand(newShutdownCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("avctl version %s\n", version)
			fmt.Printf("  Git SHA:    %s\n", gitSHA)
			fmt.Printf("  Build Time: %s\n", buildTime)
		},
	}
}

type app struct {
	cfg *config.Config
	log zerolog.Logger
}

func loadApp() (*app, error) {
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	// Flags override file values.
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	if callTimeout != "" {
		if _, err := time.ParseDuration(callTimeout); err != nil {
			return nil, fmt.Errorf("bad --timeout: %w", err)
		}
		cfg.CallTimeout = callTimeout
	}

	return &app{cfg: cfg, log: logging.New("avctl", cfg.LogLevel, cfg.LogFormat)}, nil
}

// runClient connects to the service and runs fn under the configured
// call timeout. The pipe itself never times out; a dead service would
// otherwise block forever. On timeout the in-flight call is abandoned
// and the process exits shortly after.
func runClient(fn func(a *app, c *avclient.Client) error) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	client, err := avclient.New(avclient.WithLogger(a.log))
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		err := fn(a, client)
		client.Close()
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(a.cfg.Timeout()):
		return fmt.Errorf("service did not reply within %s", a.cfg.CallTimeout)
	}
}

// resolveUsername picks the username argument or the configured one.
func resolveUsername(arg string, a *app) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if a.cfg.Username != "" {
		return a.cfg.Username, nil
	}
	return "", fmt.Errorf("no username given and none configured in %s", paths.ConfigFile())
}

func formatExpiry(ts uint64) string {
	if ts == 0 {
		return "never"
	}
	return time.Unix(int64(ts), 0).Format(time.RFC1123)
}
