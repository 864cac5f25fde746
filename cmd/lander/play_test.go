package main

import (
	"path/filepath"
	"testing"
)

func TestPlayRejectsBadHeightmap(t *testing.T) {
	old := flagHeightmap
	flagHeightmap = filepath.Join(t.TempDir(), "missing.yaml")
	defer func() { flagHeightmap = old }()

	if err := runPlay(playCmd, []string{"lander3d"}); err == nil {
		t.Fatal("expected error for an unreadable heightmap")
	}
}
