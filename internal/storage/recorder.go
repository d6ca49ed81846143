package storage

import "github.com/hblok/starfighter/internal/game"

// RunRecorder adapts Store to the simulation's score persistence
// interface, stamping each saved run with the session's difficulty.
type RunRecorder struct {
	store      *Store
	difficulty string
}

// NewRunRecorder wraps a store for one play session.
func NewRunRecorder(s *Store, difficulty string) *RunRecorder {
	return &RunRecorder{store: s, difficulty: difficulty}
}

// HighScore implements game.ScoreStore.
func (r *RunRecorder) HighScore() (int, error) {
	return r.store.HighScore()
}

// SaveScore implements game.ScoreStore.
func (r *RunRecorder) SaveScore(score int) error {
	_, err := r.store.SaveScore(score, r.difficulty)
	return err
}

var _ game.ScoreStore = (*RunRecorder)(nil)
