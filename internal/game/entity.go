// Package game implements the starfighter simulation: a top-down
// space-combat arena with wrapping edges, four enemy variants, timed
// power-ups, and a frame-stepped update/collision pipeline. The package
// contains pure logic; the platform layer owns input devices, timing, and
// terminal output.
package game

import (
	"math"

	"github.com/hblok/starfighter/internal/config"
	"github.com/hblok/starfighter/internal/core"
)

// Player is the ship under user control. It is created once per run and
// repositioned on respawn, never destroyed while a run is in progress.
type Player struct {
	Pos          core.Vec
	Vel          core.Vec
	Angle        float64 // facing, radians
	Radius       float64
	Invincible   int // frames remaining
	FireCooldown int
	Thrusting    bool // engine fired this frame, for exhaust drawing
}

// NewPlayer returns a player at the arena center with a spawn
// invincibility window.
func NewPlayer(cfg *config.Config) Player {
	return Player{
		Pos:        core.Vec{X: core.LogicalWidth / 2, Y: core.LogicalHeight / 2},
		Radius:     cfg.Player.Radius,
		Invincible: cfg.Player.InvincibilityFrames,
	}
}

// Update advances the ship by one frame: rotation, thrust, friction,
// speed clamp, position integration with toroidal wrap, and timer decay.
// Speed boost scales both acceleration and the speed cap.
func (p *Player) Update(rotLeft, rotRight, thrust bool, cfg *config.Config, boosted bool) {
	if rotLeft {
		p.Angle -= cfg.Player.RotationSpeed
	}
	if rotRight {
		p.Angle += cfg.Player.RotationSpeed
	}
	p.Angle = core.NormalizeAngle(p.Angle)

	mult := 1.0
	if boosted {
		mult = cfg.Player.SpeedBoostMult
	}

	p.Thrusting = thrust
	if thrust {
		p.Vel = p.Vel.Add(core.Heading(p.Angle).Scale(cfg.Player.ThrustPower * mult))
	}

	p.Vel = p.Vel.ClampLen(cfg.Player.MaxSpeed * mult)
	p.Vel = p.Vel.Scale(cfg.Player.Friction)
	p.Pos = core.WrapPosition(p.Pos.Add(p.Vel), core.LogicalWidth, core.LogicalHeight)

	if p.Invincible > 0 {
		p.Invincible--
	}
	if p.FireCooldown > 0 {
		p.FireCooldown--
	}
}

// Respawn recenters the ship with zero velocity and a full invincibility
// window.
func (p *Player) Respawn(cfg *config.Config) {
	p.Pos = core.Vec{X: core.LogicalWidth / 2, Y: core.LogicalHeight / 2}
	p.Vel = core.Vec{}
	p.Invincible = cfg.Player.InvincibilityFrames
}

// Nose returns the muzzle position, a fixed offset ahead of the ship
// center along its facing.
func (p *Player) Nose() core.Vec {
	return p.Pos.Add(core.Heading(p.Angle).Scale(p.Radius + 2))
}

// BulletKind discriminates player projectile behavior.
type BulletKind uint8

const (
	BulletNormal BulletKind = iota
	BulletHoming            // steers toward the nearest enemy
	BulletBig               // large radius, pierces through hits
)

// Bullet is a projectile fired by the player or an enemy. Bullets do not
// wrap: leaving the logical space removes them, as does lifetime expiry.
type Bullet struct {
	Pos    core.Vec
	Vel    core.Vec
	Life   int // frames remaining
	Radius float64
	Kind   BulletKind
	Color  core.Color
}

// Pierces reports whether the bullet survives a hit instead of being
// consumed by it.
func (b *Bullet) Pierces() bool {
	return b.Kind == BulletBig
}

// Update advances the bullet one frame and reports whether it is still
// alive. Homing bullets first steer toward the nearest enemy, bounded by
// the per-frame steering limit, then renormalize to homing speed. With no
// enemies present a homing bullet continues on its current heading.
func (b *Bullet) Update(cfg *config.Config, enemies []Enemy) bool {
	if b.Kind == BulletHoming {
		if target, ok := nearestEnemy(b.Pos, enemies); ok {
			current := math.Atan2(b.Vel.Y, b.Vel.X)
			desired := core.AngleTo(b.Pos, target)
			diff := core.NormalizeAngle(desired - current)
			steer := cfg.Bullets.Homing.Steer
			if diff > steer {
				diff = steer
			} else if diff < -steer {
				diff = -steer
			}
			b.Vel = core.Heading(current + diff).Scale(cfg.Bullets.Homing.Speed)
		}
	}

	b.Pos = b.Pos.Add(b.Vel)
	b.Life--

	if b.Life <= 0 {
		return false
	}
	if b.Pos.X < 0 || b.Pos.X >= core.LogicalWidth || b.Pos.Y < 0 || b.Pos.Y >= core.LogicalHeight {
		return false
	}
	return true
}

// nearestEnemy returns the position of the closest enemy by Euclidean
// distance, or false if none exist.
func nearestEnemy(from core.Vec, enemies []Enemy) (core.Vec, bool) {
	if len(enemies) == 0 {
		return core.Vec{}, false
	}
	best := 0
	bestDist := core.Distance(from, enemies[0].Pos)
	for i := 1; i < len(enemies); i++ {
		if d := core.Distance(from, enemies[i].Pos); d < bestDist {
			best, bestDist = i, d
		}
	}
	return enemies[best].Pos, true
}

// PowerUp is a floating pickup dropped by a destroyed enemy. It drifts
// slowly, wraps at the edges, and expires if not collected.
type PowerUp struct {
	Pos    core.Vec
	Vel    core.Vec
	Type   PowerUpType
	Life   int // frames until expiry
	Radius float64
}

// Update advances the drop one frame and reports whether it is still alive.
func (p *PowerUp) Update() bool {
	p.Pos = core.WrapPosition(p.Pos.Add(p.Vel), core.LogicalWidth, core.LogicalHeight)
	p.Life--
	return p.Life > 0
}

// Particle is a short-lived explosion fragment. Purely decorative: it
// never collides with anything.
type Particle struct {
	Pos     core.Vec
	Vel     core.Vec
	Life    int
	MaxLife int
	Color   core.Color
}

// Update advances the particle one frame and reports whether it is still
// alive. Velocity decays by the particle friction factor.
func (p *Particle) Update(friction float64) bool {
	p.Vel = p.Vel.Scale(friction)
	p.Pos = core.WrapPosition(p.Pos.Add(p.Vel), core.LogicalWidth, core.LogicalHeight)
	p.Life--
	return p.Life > 0
}
