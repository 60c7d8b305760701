package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the minesweeper SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a difficulty menu and its own boards.
Finished games are kept in memory while the server runs and shared by the stats
screen of every session.

Flags override the server section of the configuration file.

Examples:
  minesweeper serve                           # Listen on the configured address
  minesweeper serve --ssh :2222               # Listen on port 2222
  minesweeper serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file, generated when missing (default from config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	srvCfg := appConfig.Server
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKey = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		if flagIdleTimeout <= 0 {
			return fmt.Errorf("--idle-timeout must be positive, got %d", flagIdleTimeout)
		}
		srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	base, err := runtimeConfig("", 80, 24)
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     srvCfg.Address,
		HostKeyPath: srvCfg.HostKey,
		IdleTimeout: srvCfg.IdleTimeout,
		Runtime:     base,
	}, store, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting minesweeper SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(context.Background()); err != nil {
		return err
	}

	if n, countErr := store.Count(); countErr == nil {
		logger.Info("server stopped", "games", n)
	}
	return nil
}
