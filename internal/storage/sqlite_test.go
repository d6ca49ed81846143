package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndHighScore(t *testing.T) {
	s := openTestStore(t)

	hs, err := s.HighScore()
	if err != nil {
		t.Fatalf("HighScore on empty store: %v", err)
	}
	if hs != 0 {
		t.Errorf("empty high score = %d, want 0", hs)
	}

	for _, score := range []int{100, 350, 200} {
		if _, err := s.SaveScore(score, "normal"); err != nil {
			t.Fatalf("SaveScore(%d): %v", score, err)
		}
	}

	hs, err = s.HighScore()
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if hs != 350 {
		t.Errorf("high score = %d, want 350", hs)
	}
}

func TestTopScoresOrdering(t *testing.T) {
	s := openTestStore(t)

	for _, score := range []int{50, 300, 100, 200} {
		if _, err := s.SaveScore(score, "hard"); err != nil {
			t.Fatal(err)
		}
	}

	top, err := s.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("got %d entries, want 3", len(top))
	}
	want := []int{300, 200, 100}
	for i, e := range top {
		if e.Score != want[i] {
			t.Errorf("top[%d] = %d, want %d", i, e.Score, want[i])
		}
		if e.Difficulty != "hard" {
			t.Errorf("top[%d] difficulty = %q, want hard", i, e.Difficulty)
		}
	}
}

func TestClearScores(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.SaveScore(42, ""); err != nil {
		t.Fatal(err)
	}
	if err := s.ClearScores(); err != nil {
		t.Fatalf("ClearScores: %v", err)
	}

	top, err := s.TopScores(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 0 {
		t.Errorf("%d entries after clear, want 0", len(top))
	}
}

func TestGetStats(t *testing.T) {
	s := openTestStore(t)

	stats, err := s.GetStats()
	if err != nil {
		t.Fatalf("GetStats on empty store: %v", err)
	}
	if stats.RunCount != 0 || stats.HighScore != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	for _, score := range []int{100, 200, 300} {
		if _, err := s.SaveScore(score, "normal"); err != nil {
			t.Fatal(err)
		}
	}

	stats, err = s.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.RunCount != 3 {
		t.Errorf("run count = %d, want 3", stats.RunCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("high score = %d, want 300", stats.HighScore)
	}
	if stats.TotalScore != 600 {
		t.Errorf("total = %d, want 600", stats.TotalScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("avg = %v, want 200", stats.AvgScore)
	}
}

func TestRunRecorder(t *testing.T) {
	s := openTestStore(t)
	rec := NewRunRecorder(s, "easy")

	if err := rec.SaveScore(77); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}
	hs, err := rec.HighScore()
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if hs != 77 {
		t.Errorf("high score = %d, want 77", hs)
	}

	top, err := s.TopScores(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 1 || top[0].Difficulty != "easy" {
		t.Errorf("recorded entry = %+v, want difficulty easy", top)
	}
}
