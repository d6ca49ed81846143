package game

import (
	"sort"

	"github.com/hblok/starfighter/internal/core"
)

// resolveCollisions runs all four collision passes for the frame, in a
// fixed order: player bullets against enemies, player against enemies,
// enemy bullets against the player, then power-up pickups.
func (g *Game) resolveCollisions() {
	g.collideBulletsEnemies()
	g.collidePlayerEnemies()
	g.collideEnemyBulletsPlayer()
	g.collectPowerUps()
}

// collideBulletsEnemies applies player bullet hits. Each bullet damages
// at most one enemy per frame: piercing only means the bullet survives the
// hit to potentially strike a different enemy on a later frame. Removals
// are deferred to the end of the scan so indices stay stable.
func (g *Game) collideBulletsEnemies() {
	deadBullets := map[int]bool{}
	deadEnemies := map[int]bool{}

	for bi := range g.bullets {
		if deadBullets[bi] {
			continue
		}
		b := &g.bullets[bi]
		for ei := range g.enemies {
			if deadEnemies[ei] {
				continue
			}
			e := &g.enemies[ei]
			if !core.CirclesCollide(b.Pos, b.Radius, e.Pos, e.Radius) {
				continue
			}

			if !b.Pierces() {
				deadBullets[bi] = true
			}
			if e.TakeHit() {
				g.score += e.Score
				g.spawnExplosion(e.Pos, g.cfg.Particles.ExplosionEnemy, enemyColor(e.Type))
				g.dropFrom(e)
				deadEnemies[ei] = true
			}
			break
		}
	}

	g.bullets = removeIndices(g.bullets, deadBullets)
	g.enemies = removeIndices(g.enemies, deadEnemies)
}

// collidePlayerEnemies damages the player on the first overlapping enemy.
// A kamikaze is consumed by the contact (explosion, no score); every other
// type survives it.
func (g *Game) collidePlayerEnemies() {
	if g.player.Invincible > 0 {
		return
	}
	for ei := range g.enemies {
		e := &g.enemies[ei]
		if !core.CirclesCollide(g.player.Pos, g.player.Radius, e.Pos, e.Radius) {
			continue
		}
		if e.Type == EnemyKamikaze {
			g.spawnExplosion(e.Pos, g.cfg.Particles.ExplosionEnemy, enemyColor(e.Type))
			g.enemies = removeIndices(g.enemies, map[int]bool{ei: true})
		}
		g.hitPlayer()
		break
	}
}

// collideEnemyBulletsPlayer removes the first enemy bullet overlapping the
// player and damages the player. At most one hit per frame.
func (g *Game) collideEnemyBulletsPlayer() {
	if g.player.Invincible > 0 {
		return
	}
	for bi := range g.enemyBullets {
		b := &g.enemyBullets[bi]
		if !core.CirclesCollide(b.Pos, b.Radius, g.player.Pos, g.player.Radius) {
			continue
		}
		g.enemyBullets = removeIndices(g.enemyBullets, map[int]bool{bi: true})
		g.hitPlayer()
		break
	}
}

// collectPowerUps applies every overlapping pickup this frame; no
// early-stop, so simultaneous pickups all take effect.
func (g *Game) collectPowerUps() {
	collected := map[int]bool{}
	for pi := range g.powerups {
		p := &g.powerups[pi]
		if core.CirclesCollide(g.player.Pos, g.player.Radius, p.Pos, g.cfg.PowerUps.CollectRadius) {
			g.activate(p.Type)
			collected[pi] = true
		}
	}
	g.powerups = removeIndices(g.powerups, collected)
}

// dropFrom rolls power-up drops for a destroyed enemy. A boss rolls
// several, scattered around its position.
func (g *Game) dropFrom(e *Enemy) {
	if e.Type == EnemyBoss {
		for d := 0; d < g.cfg.Enemies.Boss.Drops; d++ {
			off := core.Vec{
				X: g.rng.Float64()*20 - 10,
				Y: g.rng.Float64()*20 - 10,
			}
			g.rollDrop(e.Pos.Add(off), e.DropChance)
		}
		return
	}
	g.rollDrop(e.Pos, e.DropChance)
}

// enemyColor maps a variant to its explosion and body color.
func enemyColor(t EnemyType) core.Color {
	switch t {
	case EnemyDrifter:
		return core.ColorRed
	case EnemyGunner:
		return core.ColorMagenta
	case EnemyKamikaze:
		return core.ColorYellow
	case EnemyBoss:
		return core.ColorBrightRed
	default:
		return core.ColorWhite
	}
}

// removeIndices compacts a slice by dropping the marked indices, applied
// in descending order with a bounds recheck. A frame can mark overlapping
// removals from different passes touching the same collection, so a stale
// index is treated as already removed rather than an error.
func removeIndices[T any](s []T, dead map[int]bool) []T {
	if len(dead) == 0 {
		return s
	}
	idx := make([]int, 0, len(dead))
	for i := range dead {
		idx = append(idx, i)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(idx)))
	for _, i := range idx {
		if i < 0 || i >= len(s) {
			continue
		}
		s = append(s[:i], s[i+1:]...)
	}
	return s
}
