package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagServeGame   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the game over SSH",
	Long: `Host the game over SSH so others can play from their own terminals:

    ssh -p 2222 player@yourhost

Each connection gets its own session; the SSH user name goes on the
scoreboard.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":2222", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", defaultHostKeyPath(), "SSH host key path (created if missing)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 5*time.Minute, "drop sessions idle longer than this")
	serveCmd.Flags().StringVar(&flagServeGame, "game", "lander", "game to serve")
	rootCmd.AddCommand(serveCmd)
}

func defaultHostKeyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "host_key"
	}
	return filepath.Join(home, ".lander", "host_key")
}

func runServe(cmd *cobra.Command, args []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.ServeSSH(tui.SSHOptions{
		Addr:        flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: flagIdleTimeout,
		GameID:      flagServeGame,
		TickRate:    flagFPS,
		Seed:        flagSeed,
		Store:       store,
	})
}
