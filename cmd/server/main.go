package main

import (
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/physics-lab/internal/config"
)

func main() {
	os.Exit(execute(newRootCmd(), os.Stderr))
}

// execute runs the command tree and logs any returned error to errOut.
// It returns the process exit code.
func execute(root *cobra.Command, errOut io.Writer) int {
	cmd, err := root.ExecuteC()
	if err != nil {
		logger := slog.New(slog.NewJSONHandler(errOut, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
		logger.Error("command failed", "command", cmd.CommandPath(), "error", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "physics-lab",
		Short:         "Serve the interactive physics demo site",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(debug)
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging and per-request template reload")

	root.AddCommand(serveCmd(&debug), routesCmd())
	return root
}

func serveCmd(debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(*debug)
		},
	}
}

// loadConfig reads config.toml, its overlay, and the environment.
// The debug flag is applied last so it wins over every other source.
func loadConfig(debug bool) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	if debug {
		cfg.EnableDebug()
	}
	return cfg, nil
}

func serve(debug bool) error {
	cfg, err := loadConfig(debug)
	if err != nil {
		return err
	}

	srv, err := NewServer(cfg)
	if err != nil {
		return err
	}

	if err := srv.Start(); err != nil {
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	return srv.Shutdown(cfg.ShutdownTimeoutDuration())
}
