package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/games/lander"
	"github.com/vovakirdan/tui-lander/internal/platform/tui"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/sim"
)

var (
	flagConfig     string
	flagDifficulty string
	flagHeightmap  string
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a landing game in this terminal",
	Long: `Play a landing game. Defaults to the side-view "lander"; pass
"lander3d" for the full three-axis descent.

Controls: space/up thrust, left/right or a/d rotate, w/s pitch (3D),
enter launch, r retry, p pause, 1/2/3 difficulty, q quit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "path to a simulation config file")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "starting difficulty: easy, normal or hard")
	playCmd.Flags().StringVar(&flagHeightmap, "heightmap", "", "terrain heightmap file (3D only)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "name on the scoreboard")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "lander"
	if len(args) > 0 {
		gameID = args[0]
	}

	if flagHeightmap != "" {
		if _, err := sim.LoadHeightmap(flagHeightmap); err != nil {
			return err
		}
	}

	lander.SetConfigPath(flagConfig)
	lander.SetDifficultyPreset(config.DifficultyPreset(flagDifficulty))
	lander.SetHeightmapPath(flagHeightmap)

	game, err := registry.Get(gameID)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(tui.Options{
		Game:   game,
		Store:  store,
		Config: cfg,
		Player: flagPlayer,
	})
}
