package game

// Snapshot is a copy of the observable simulation state, used by tests
// and debugging tools. Slices and the effect map are copied, so holding a
// snapshot across frames is safe.
type Snapshot struct {
	Phase        Phase
	Score        int
	Lives        int
	HighScore    int
	NewHighScore bool // set when the finished run beat the previous best
	Elapsed      int  // frames
	Tier         int

	Player       Player
	Bullets      []Bullet
	EnemyBullets []Bullet
	Enemies      []Enemy
	PowerUps     []PowerUp
	Particles    []Particle
	Effects      map[PowerUpType]ActiveEffect
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:        g.phase,
		Score:        g.score,
		Lives:        g.lives,
		HighScore:    g.highScore,
		NewHighScore: g.newBest,
		Elapsed:      g.elapsed,
		Tier:         g.tier(),
		Player:       g.player,

		Bullets:      append([]Bullet(nil), g.bullets...),
		EnemyBullets: append([]Bullet(nil), g.enemyBullets...),
		Enemies:      append([]Enemy(nil), g.enemies...),
		PowerUps:     append([]PowerUp(nil), g.powerups...),
		Particles:    append([]Particle(nil), g.particles...),

		Effects: make(map[PowerUpType]ActiveEffect, len(g.effects)),
	}
	for t, eff := range g.effects {
		s.Effects[t] = *eff
	}
	return s
}

// PlayerBlinking reports whether spawn-protection blinking hides the ship
// this frame.
func (s *Snapshot) PlayerBlinking() bool {
	return s.Player.Invincible > 0 && (s.Elapsed/4)%2 == 0
}
