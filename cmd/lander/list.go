package main

import (
	"fmt"

	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/tui-lander/internal/games/lander"
	"github.com/vovakirdan/tui-lander/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available games",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, id := range registry.List() {
			game, err := registry.Get(id)
			if err != nil {
				return err
			}
			fmt.Printf("%-12s %s\n", id, game.Title())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
