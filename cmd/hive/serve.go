package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hive/internal/platform/tui"
	"github.com/vovakirdan/hive/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the hive SSH server",
	Long: `Start an SSH server that lets users connect and play puzzles.

Each SSH connection gets its own session with a puzzle picker.
Results are stored per-server, so all users share the same history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.hive/host_key

Examples:
  hive serve                           # Listen on :23234 with auto-generated key
  hive serve --ssh :2222               # Listen on port 2222
  hive serve --host-key ./my_host_key  # Use specific host key
  hive serve --db ./results.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) {
	a := mustSetup()
	if !cmd.Flags().Changed("log-level") {
		a.logger.SetLevel(log.InfoLevel)
	}

	cfg := tui.SSHServerConfigFrom(a.cfg)
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	var store *storage.Store
	if s, err := storage.Open(a.cfg.Storage.DBPath); err != nil {
		a.logger.Warn("serving without result history", "error", err)
	} else {
		store = s
		defer store.Close()
	}

	server, err := tui.NewSSHServer(cfg, a.catalog, store, a.logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting hive SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
