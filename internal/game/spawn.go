package game

import (
	"math"

	"github.com/hblok/starfighter/internal/core"
)

// Weighted spawn pools per tier. Repeated entries encode weight: at tier 2
// a drifter is twice as likely as a gunner.
var tierPools = [][]EnemyType{
	{EnemyDrifter},
	{EnemyDrifter, EnemyDrifter, EnemyGunner},
	{EnemyDrifter, EnemyGunner, EnemyGunner, EnemyKamikaze},
	{EnemyDrifter, EnemyGunner, EnemyKamikaze, EnemyKamikaze, EnemyBoss},
}

// tier derives the difficulty tier (1-based) purely from elapsed playing
// time. Non-decreasing in time.
func (g *Game) tier() int {
	sec := float64(g.elapsed) / float64(g.tickRate)
	tier := 1
	for _, th := range g.cfg.Tiers.Thresholds {
		if sec >= th {
			tier++
		}
	}
	if tier > len(tierPools) {
		tier = len(tierPools)
	}
	return tier
}

// maxEnemies returns the simultaneous population cap for a tier.
func (g *Game) maxEnemies(tier int) int {
	caps := g.cfg.Tiers.MaxEnemies
	if tier < len(caps) {
		return caps[tier]
	}
	return caps[len(caps)-1]
}

// runSpawner counts down the spawn timer and, when it fires, adds one
// enemy of a tier-eligible type at a position safely away from the player.
func (g *Game) runSpawner() {
	g.spawnTimer--
	if g.spawnTimer > 0 {
		return
	}
	g.spawnTimer = g.cfg.Gameplay.SpawnInterval

	tier := g.tier()
	if len(g.enemies) >= g.maxEnemies(tier) {
		return
	}

	pool := tierPools[tier-1]
	t := pool[g.rng.Intn(len(pool))]
	g.enemies = append(g.enemies, g.newEnemy(t, g.safeSpawnPos(), tier))
}

// safeSpawnPos samples uniform arena positions until one is at least the
// safe radius from the player, with a bounded retry count and a fixed
// corner fallback.
func (g *Game) safeSpawnPos() core.Vec {
	for i := 0; i < 50; i++ {
		p := core.Vec{
			X: g.rng.Float64() * core.LogicalWidth,
			Y: g.rng.Float64() * core.LogicalHeight,
		}
		if core.Distance(p, g.player.Pos) >= g.cfg.Gameplay.SafeSpawnRadius {
			return p
		}
	}
	return core.Vec{}
}

// newEnemy builds an enemy of the given type at pos. Gunner HP scales with
// the spawn tier, and its score scales with HP.
func (g *Game) newEnemy(t EnemyType, pos core.Vec, tier int) Enemy {
	e := Enemy{
		Type:  t,
		Pos:   pos,
		Angle: core.NormalizeAngle(g.rng.Float64() * 2 * math.Pi),
	}

	switch t {
	case EnemyDrifter:
		dc := &g.cfg.Enemies.Drifter
		e.HP = dc.HP
		e.Radius = dc.Radius
		e.Score = dc.Score
		e.DropChance = dc.DropChance
		e.driftTimer = dc.DriftInterval

	case EnemyGunner:
		gc := &g.cfg.Enemies.Gunner
		switch {
		case tier >= 3:
			e.HP = 2 + g.rng.Intn(2)
		case tier >= 2:
			e.HP = 2
		default:
			e.HP = 1
		}
		e.Radius = gc.Radius
		e.Score = gc.ScoreBase + (e.HP-1)*gc.ScorePerHP
		e.DropChance = gc.DropChance
		e.fireTimer = gunnerFireRate(gc, g.rng)

	case EnemyKamikaze:
		kc := &g.cfg.Enemies.Kamikaze
		e.HP = kc.HP
		e.Radius = kc.Radius
		e.Score = kc.Score
		e.DropChance = kc.DropChance
		e.Angle = core.AngleTo(pos, g.player.Pos)
		e.Vel = core.Heading(e.Angle).Scale(kc.Speed)

	case EnemyBoss:
		bc := &g.cfg.Enemies.Boss
		e.HP = bc.HP
		e.Radius = bc.Radius
		e.Score = bc.Score
		e.DropChance = bc.DropChance
		e.fireTimer = bc.FireRate
	}

	e.MaxHP = e.HP
	return e
}
