package game

import (
	"math/rand"

	"github.com/hblok/starfighter/internal/config"
	"github.com/hblok/starfighter/internal/core"
)

// EnemyType discriminates enemy AI behavior.
type EnemyType uint8

const (
	EnemyDrifter EnemyType = iota
	EnemyGunner
	EnemyKamikaze
	EnemyBoss
)

// String returns the enemy type name.
func (t EnemyType) String() string {
	switch t {
	case EnemyDrifter:
		return "drifter"
	case EnemyGunner:
		return "gunner"
	case EnemyKamikaze:
		return "kamikaze"
	case EnemyBoss:
		return "boss"
	default:
		return "unknown"
	}
}

const hitFlashFrames = 5

// Enemy is a single hostile ship. Behavior dispatches on Type; the struct
// carries the union of per-variant state (drift timer, fire timer) since
// each field is a few bytes and the flat layout keeps the per-frame update
// loop cache-friendly.
type Enemy struct {
	Type       EnemyType
	Pos        core.Vec
	Vel        core.Vec
	Angle      float64
	HP         int
	MaxHP      int
	Radius     float64
	Score      int
	DropChance float64
	HitFlash   int // frames of damage flash remaining, visual only

	driftTimer int // drifter: frames until next heading perturbation
	fireTimer  int // gunner/boss: frames until next shot
}

// TakeHit applies one point of damage and reports whether the enemy is
// destroyed.
func (e *Enemy) TakeHit() bool {
	e.HP--
	e.HitFlash = hitFlashFrames
	return e.HP <= 0
}

// Update advances the enemy one frame. Enemies read the player position to
// aim but never mutate it; shots are appended to out.
func (e *Enemy) Update(cfg *config.Config, playerPos core.Vec, rng *rand.Rand, out *[]Bullet) {
	switch e.Type {
	case EnemyDrifter:
		e.updateDrifter(cfg, rng)
	case EnemyGunner:
		e.updateGunner(cfg, playerPos, rng, out)
	case EnemyKamikaze:
		e.updateKamikaze(cfg, playerPos)
	case EnemyBoss:
		e.updateBoss(cfg, playerPos, rng, out)
	}

	e.Pos = core.WrapPosition(e.Pos.Add(e.Vel), core.LogicalWidth, core.LogicalHeight)
	if e.HitFlash > 0 {
		e.HitFlash--
	}
}

// updateDrifter holds a heading for a fixed interval, then perturbs it by
// a bounded random delta.
func (e *Enemy) updateDrifter(cfg *config.Config, rng *rand.Rand) {
	e.driftTimer--
	if e.driftTimer <= 0 {
		e.Angle = core.NormalizeAngle(e.Angle + (rng.Float64()-0.5))
		e.driftTimer = cfg.Enemies.Drifter.DriftInterval
	}
	e.Vel = core.Heading(e.Angle).Scale(cfg.Enemies.Drifter.Speed)
}

// updateGunner turns toward the player at a bounded rate, creeps along its
// facing, and periodically fires one aimed shot.
func (e *Enemy) updateGunner(cfg *config.Config, playerPos core.Vec, rng *rand.Rand, out *[]Bullet) {
	gc := &cfg.Enemies.Gunner
	e.turnToward(playerPos, gc.TurnRate)
	// Gunners mostly hold position, drifting slowly along their facing.
	e.Vel = core.Heading(e.Angle).Scale(gc.Speed * 0.3)

	e.fireTimer--
	if e.fireTimer <= 0 {
		*out = append(*out, Bullet{
			Pos:    e.Pos,
			Vel:    core.Heading(core.AngleTo(e.Pos, playerPos)).Scale(gc.BulletSpeed),
			Life:   gc.BulletLife,
			Radius: gc.BulletRadius,
			Color:  core.ColorRed,
		})
		e.fireTimer = gunnerFireRate(gc, rng)
	}
}

// updateKamikaze accelerates straight at the player, clamped to its max
// speed.
func (e *Enemy) updateKamikaze(cfg *config.Config, playerPos core.Vec) {
	kc := &cfg.Enemies.Kamikaze
	e.Angle = core.AngleTo(e.Pos, playerPos)
	e.Vel = e.Vel.Add(core.Heading(e.Angle).Scale(kc.Accel)).ClampLen(kc.MaxSpeed)
}

// updateBoss turns slowly toward the player, advances along its facing,
// and periodically fires a three-way aimed spread.
func (e *Enemy) updateBoss(cfg *config.Config, playerPos core.Vec, rng *rand.Rand, out *[]Bullet) {
	bc := &cfg.Enemies.Boss
	e.turnToward(playerPos, bc.TurnRate)
	e.Vel = core.Heading(e.Angle).Scale(bc.Speed)

	e.fireTimer--
	if e.fireTimer <= 0 {
		aim := core.AngleTo(e.Pos, playerPos)
		for _, da := range []float64{-bc.Spread, 0, bc.Spread} {
			*out = append(*out, Bullet{
				Pos:    e.Pos,
				Vel:    core.Heading(aim + da).Scale(bc.BulletSpeed),
				Life:   bc.BulletLife,
				Radius: bc.BulletRadius,
				Color:  core.ColorBrightRed,
			})
		}
		e.fireTimer = bc.FireRate
	}
}

// turnToward rotates the facing toward the target, bounded by maxTurn
// radians per frame.
func (e *Enemy) turnToward(target core.Vec, maxTurn float64) {
	diff := core.NormalizeAngle(core.AngleTo(e.Pos, target) - e.Angle)
	if diff > maxTurn {
		diff = maxTurn
	} else if diff < -maxTurn {
		diff = -maxTurn
	}
	e.Angle = core.NormalizeAngle(e.Angle + diff)
}

// gunnerFireRate draws a per-shot cadence from the configured range.
func gunnerFireRate(gc *config.GunnerConfig, rng *rand.Rand) int {
	if gc.FireRateMax <= gc.FireRateMin {
		return gc.FireRateMin
	}
	return gc.FireRateMin + rng.Intn(gc.FireRateMax-gc.FireRateMin+1)
}
