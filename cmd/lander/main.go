// Command lander is a terminal lunar landing simulator.
// Play locally, host sessions over SSH, and keep scores in a local
// SQLite database.
package main

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/storage"
)

var (
	flagFPS  int
	flagSeed int64
	flagDB   string
)

var rootCmd = &cobra.Command{
	Use:   "lander",
	Short: "Lunar landing simulator for the terminal",
	Long: `Guide a lander down onto a landing pad before the fuel runs out.

Touch down gently, upright and on the pad to score; the fuel left in the
tanks is your score. Play the side-view game or the full 3D descent.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "simulation ticks per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "terrain seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", defaultDBPath(), "path to the score database")
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "lander.db"
	}
	return filepath.Join(home, ".lander", "lander.db")
}

// openStore opens the score database, or returns nil when it is
// unavailable so a broken database never blocks playing.
func openStore() *storage.Store {
	store, err := storage.New(flagDB)
	if err != nil {
		log.Warn("scores will not be saved", "err", err)
		return nil
	}
	return store
}
