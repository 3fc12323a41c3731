package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/David2287/Client-App/internal/logging"
	"github.com/David2287/Client-App/internal/paths"
	"github.com/David2287/Client-App/internal/stubservice"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		socketPath string
		users      []string
		logLevel   string
		logFormat  string
	)

	cmd := &cobra.Command{
		Use:   "avstubd",
		Short: "Development stub of the antivirus service",
		Long: `avstubd answers the service pipe protocol from in-memory state so
avctl and the client library can be exercised without the real
privileged service. Unix sockets only; not for production use.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New("avstubd", logLevel, logFormat)

			srv := stubservice.New(socketPath, log)
			for _, spec := range users {
				name, pass, ok := strings.Cut(spec, ":")
				if !ok {
					return fmt.Errorf("bad --user %q, want name:password", spec)
				}
				srv.AddUser(name, pass)
			}

			if err := srv.Start(); err != nil {
				return err
			}

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop

			log.Info().Msg("shutting down")
			srv.Stop()
			return nil
		},
	}

	cmd.Flags().StringVar(&socketPath, "socket", paths.Endpoint(), "socket path to listen on")
	cmd.Flags().StringArrayVar(&users, "user", nil, "accepted credentials as name:password (repeatable)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&logFormat, "log-format", "console", "log format (console, json)")

	return cmd
}
