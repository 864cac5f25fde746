package storage

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndTopScores(t *testing.T) {
	s := newTestStore(t)

	for _, score := range []int{100, 850, 420} {
		if err := s.SaveScore("lander", "", score); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	top, err := s.TopScores("lander", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("got %d entries, want 3", len(top))
	}
	if top[0].Score != 850 || top[1].Score != 420 || top[2].Score != 100 {
		t.Errorf("scores not descending: %d, %d, %d", top[0].Score, top[1].Score, top[2].Score)
	}
	if top[0].Player != "anonymous" {
		t.Errorf("empty player = %q, want anonymous", top[0].Player)
	}
}

func TestTopScoresIsolatedByGame(t *testing.T) {
	s := newTestStore(t)

	s.SaveScore("lander", "p1", 500)
	s.SaveScore("lander3d", "p1", 900)

	top, err := s.TopScores("lander", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(top) != 1 || top[0].Score != 500 {
		t.Errorf("got %+v, want one lander score of 500", top)
	}
}

func TestHighScore(t *testing.T) {
	s := newTestStore(t)

	if high, err := s.HighScore("lander"); err != nil || high != 0 {
		t.Errorf("HighScore on empty db = %d, %v, want 0, nil", high, err)
	}

	s.SaveScore("lander", "p1", 300)
	s.SaveScore("lander", "p1", 700)

	high, err := s.HighScore("lander")
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 700 {
		t.Errorf("HighScore = %d, want 700", high)
	}
}

func TestClearScores(t *testing.T) {
	s := newTestStore(t)

	s.SaveScore("lander", "p1", 100)
	s.SaveScore("lander", "p1", 200)
	s.SaveScore("lander3d", "p1", 300)

	n, err := s.ClearScores("lander")
	if err != nil {
		t.Fatalf("ClearScores: %v", err)
	}
	if n != 2 {
		t.Errorf("cleared %d rows, want 2", n)
	}

	if high, _ := s.HighScore("lander3d"); high != 300 {
		t.Error("ClearScores touched another game's scores")
	}
}

func TestGetGameStats(t *testing.T) {
	s := newTestStore(t)

	s.SaveScore("lander", "p1", 400)
	s.SaveScore("lander", "p1", 600)

	stats, err := s.GetGameStats("lander")
	if err != nil {
		t.Fatalf("GetGameStats: %v", err)
	}
	if stats.Plays != 2 || stats.HighScore != 600 || stats.AvgScore != 500 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestSaveAndRecentFlights(t *testing.T) {
	s := newTestStore(t)

	flights := []FlightEntry{
		{GameID: "lander", Outcome: "crashed", Score: 0, FuelUsed: 340.5, Duration: 22.1, Difficulty: "normal"},
		{GameID: "lander", Outcome: "landed", Score: 650, FuelUsed: 350.0, Duration: 31.7, Difficulty: "normal"},
		{GameID: "lander3d", Outcome: "landed", Score: 800, FuelUsed: 200.0, Duration: 28.0, Difficulty: "easy"},
	}
	for _, f := range flights {
		if err := s.SaveFlight(f); err != nil {
			t.Fatalf("SaveFlight: %v", err)
		}
	}

	recent, err := s.RecentFlights("lander", 10)
	if err != nil {
		t.Fatalf("RecentFlights: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d flights, want 2", len(recent))
	}
	// Newest first.
	if recent[0].Outcome != "landed" || recent[1].Outcome != "crashed" {
		t.Errorf("order = %s, %s", recent[0].Outcome, recent[1].Outcome)
	}
	if recent[0].FuelUsed != 350.0 {
		t.Errorf("FuelUsed = %v, want 350.0", recent[0].FuelUsed)
	}
}
