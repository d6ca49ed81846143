package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/hblok/starfighter/internal/config"
	"github.com/hblok/starfighter/internal/core"
	"github.com/hblok/starfighter/internal/registry"
)

func init() {
	registry.Register("starfighter", func() registry.Game {
		return New()
	})
}

// ScoreStore persists high scores. Persistence is best-effort: load
// failures surface as "no prior high score" and save failures are ignored.
type ScoreStore interface {
	HighScore() (int, error)
	SaveScore(score int) error
}

// Phase is the top-level state of the game.
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// Ghost is a decorative menu-screen enemy. Ghosts drift and wrap but
// never collide or shoot.
type Ghost struct {
	Pos    core.Vec
	Vel    core.Vec
	Radius float64
	Type   EnemyType
}

const menuGhostCount = 5

// Count of shield spark particles when a shield absorbs a hit.
const shieldSparkCount = 6

// Game is the simulation controller. It exclusively owns all entity
// collections and mutates them in a fixed per-frame order; rendering reads
// them between frames.
type Game struct {
	cfg config.Config
	rng *rand.Rand

	phase  Phase
	player Player

	bullets      []Bullet // player projectiles
	enemyBullets []Bullet
	enemies      []Enemy
	powerups     []PowerUp
	particles    []Particle
	effects      map[PowerUpType]*ActiveEffect

	score      int
	lives      int
	highScore  int
	newBest    bool // current run set a new high score
	elapsed    int  // frames in the current run
	spawnTimer int
	tickRate   int

	ghosts    []Ghost
	menuTicks int // frames spent on the menu, drives prompt animation
	store     ScoreStore
}

// New creates a game with the built-in tuning.
func New() *Game {
	return NewWithConfig(config.Default())
}

// NewWithConfig creates a game with explicit tuning. Reset must be called
// before the first Step.
func NewWithConfig(cfg config.Config) *Game {
	return &Game{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(1)),
		tickRate: 60,
		effects:  map[PowerUpType]*ActiveEffect{},
	}
}

// SetStore attaches high-score persistence. Without a store the high
// score starts at zero and is never saved.
func (g *Game) SetStore(s ScoreStore) {
	g.store = s
	if s != nil {
		if hs, err := s.HighScore(); err == nil {
			g.highScore = hs
		}
	}
}

// ID implements registry.Game.
func (g *Game) ID() string { return "starfighter" }

// Title implements registry.Game.
func (g *Game) Title() string { return "Starfighter" }

// Reset initializes the game into the menu phase. A zero seed picks a
// time-based one; any other value gives a deterministic run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	if rc.TickRate > 0 {
		g.tickRate = rc.TickRate
	}

	g.phase = PhaseMenu
	g.resetGhosts()
}

// Step advances the simulation by one fixed frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case PhaseMenu:
		g.updateGhosts()
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			g.startRun()
		}

	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.phase = PhasePaused
			break
		}
		g.stepPlaying(in)

	case PhasePaused:
		if in.Has(core.ActionPause) {
			g.phase = PhasePlaying
		}

	case PhaseGameOver:
		switch {
		case in.Has(core.ActionConfirm) || in.Has(core.ActionFire):
			g.startRun()
		case in.Has(core.ActionBack):
			g.phase = PhaseMenu
			g.resetGhosts()
		}
	}

	return core.StepResult{State: g.State()}
}

// State implements registry.Game.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}

// Phase returns the current top-level state.
func (g *Game) Phase() Phase { return g.phase }

// HighScore returns the best known score, including the current run.
func (g *Game) HighScore() int { return g.highScore }

// Lives returns the remaining lives of the current run.
func (g *Game) Lives() int { return g.lives }

// ElapsedSeconds returns the play time of the current run.
func (g *Game) ElapsedSeconds() float64 {
	return float64(g.elapsed) / float64(g.tickRate)
}

// startRun begins a fresh run from the menu or game-over screen.
func (g *Game) startRun() {
	g.player = NewPlayer(&g.cfg)
	g.bullets = g.bullets[:0]
	g.enemyBullets = g.enemyBullets[:0]
	g.enemies = g.enemies[:0]
	g.powerups = g.powerups[:0]
	g.particles = g.particles[:0]
	g.effects = map[PowerUpType]*ActiveEffect{}

	g.score = 0
	g.newBest = false
	g.lives = g.cfg.Gameplay.Lives
	g.elapsed = 0
	g.spawnTimer = g.cfg.Gameplay.SpawnInterval
	g.phase = PhasePlaying
}

// stepPlaying runs one frame of the live simulation. The order is load
// bearing: spawning sees post-move bullet positions, enemies may append to
// the enemy-bullet list, and collisions resolve against fully-updated
// entities.
func (g *Game) stepPlaying(in core.InputFrame) {
	g.elapsed++

	boosted := g.hasEffect(PowerSpeedBoost)
	g.player.Update(
		in.Has(core.ActionRotateLeft),
		in.Has(core.ActionRotateRight),
		in.Has(core.ActionThrust),
		&g.cfg, boosted)
	if in.Has(core.ActionFire) && g.canFire() {
		g.fire()
	}

	g.bullets = updateBullets(g.bullets, &g.cfg, g.enemies)
	g.enemyBullets = updateBullets(g.enemyBullets, &g.cfg, nil)

	g.runSpawner()

	for i := range g.enemies {
		g.enemies[i].Update(&g.cfg, g.player.Pos, g.rng, &g.enemyBullets)
	}

	alive := g.powerups[:0]
	for i := range g.powerups {
		if g.powerups[i].Update() {
			alive = append(alive, g.powerups[i])
		}
	}
	g.powerups = alive
	g.tickEffects()

	g.resolveCollisions()

	liveParticles := g.particles[:0]
	for i := range g.particles {
		if g.particles[i].Update(g.cfg.Particles.Friction) {
			liveParticles = append(liveParticles, g.particles[i])
		}
	}
	g.particles = liveParticles
}

// updateBullets advances each bullet and compacts out the dead ones.
func updateBullets(bullets []Bullet, cfg *config.Config, enemies []Enemy) []Bullet {
	alive := bullets[:0]
	for i := range bullets {
		if bullets[i].Update(cfg, enemies) {
			alive = append(alive, bullets[i])
		}
	}
	return alive
}

// hitPlayer resolves one point of incoming damage. An active shield
// absorbs it, granting a short invincibility window; otherwise a life is
// lost and the run either ends or the player respawns.
func (g *Game) hitPlayer() {
	if eff, ok := g.effects[PowerShield]; ok && eff.Hits > 0 {
		eff.Hits--
		if eff.Hits <= 0 {
			delete(g.effects, PowerShield)
		}
		g.player.Invincible = g.cfg.PowerUps.ShieldInvincibility
		g.spawnExplosion(g.player.Pos, shieldSparkCount, core.ColorCyan)
		return
	}

	g.lives--
	g.spawnExplosion(g.player.Pos, g.cfg.Particles.ExplosionPlayer, core.ColorBrightYellow)
	if g.lives <= 0 {
		g.endRun()
		return
	}
	g.player.Respawn(&g.cfg)
}

// endRun transitions to game over and persists a beaten high score.
// Save failures are deliberately ignored.
func (g *Game) endRun() {
	g.phase = PhaseGameOver
	if g.score > g.highScore {
		g.highScore = g.score
		g.newBest = true
		if g.store != nil {
			_ = g.store.SaveScore(g.score)
		}
	}
}

// spawnExplosion emits a radial particle burst at pos.
func (g *Game) spawnExplosion(pos core.Vec, count int, color core.Color) {
	pc := &g.cfg.Particles
	for i := 0; i < count; i++ {
		angle := g.rng.Float64() * 2 * math.Pi
		speed := pc.SpeedMin + g.rng.Float64()*(pc.SpeedMax-pc.SpeedMin)
		g.particles = append(g.particles, Particle{
			Pos:     pos,
			Vel:     core.Heading(angle).Scale(speed),
			Life:    pc.Lifetime,
			MaxLife: pc.Lifetime,
			Color:   color,
		})
	}
}

// resetGhosts populates the decorative menu backdrop.
func (g *Game) resetGhosts() {
	g.ghosts = g.ghosts[:0]
	types := []EnemyType{EnemyDrifter, EnemyGunner, EnemyKamikaze}
	for i := 0; i < menuGhostCount; i++ {
		g.ghosts = append(g.ghosts, Ghost{
			Pos: core.Vec{
				X: g.rng.Float64() * core.LogicalWidth,
				Y: g.rng.Float64() * core.LogicalHeight,
			},
			Vel: core.Vec{
				X: (g.rng.Float64() - 0.5) * 0.6,
				Y: (g.rng.Float64() - 0.5) * 0.6,
			},
			Radius: 10 + g.rng.Float64()*10,
			Type:   types[g.rng.Intn(len(types))],
		})
	}
}

// updateGhosts drifts the menu backdrop. No collisions, no gameplay.
func (g *Game) updateGhosts() {
	g.menuTicks++
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		gh.Pos = core.WrapPosition(gh.Pos.Add(gh.Vel), core.LogicalWidth, core.LogicalHeight)
	}
}
