package game

import (
	"github.com/hblok/starfighter/internal/config"
	"github.com/hblok/starfighter/internal/core"
)

// PowerUpType identifies one of the six pickup effects.
type PowerUpType uint8

const (
	PowerShield PowerUpType = iota
	PowerRapidFire
	PowerSpreadShot
	PowerSpeedBoost
	PowerHoming
	PowerBigShot

	numPowerUpTypes
)

// String returns the effect name as shown in the HUD.
func (t PowerUpType) String() string {
	switch t {
	case PowerShield:
		return "SHIELD"
	case PowerRapidFire:
		return "RAPID"
	case PowerSpreadShot:
		return "SPREAD"
	case PowerSpeedBoost:
		return "SPEED"
	case PowerHoming:
		return "HOMING"
	case PowerBigShot:
		return "BIGSHOT"
	default:
		return "?"
	}
}

// Glyph returns the single-rune marker drawn for a floating drop.
func (t PowerUpType) Glyph() rune {
	switch t {
	case PowerShield:
		return 'S'
	case PowerRapidFire:
		return 'R'
	case PowerSpreadShot:
		return 'W'
	case PowerSpeedBoost:
		return 'F'
	case PowerHoming:
		return 'H'
	case PowerBigShot:
		return 'B'
	default:
		return '?'
	}
}

// Color returns the display color for the effect.
func (t PowerUpType) Color() core.Color {
	switch t {
	case PowerShield:
		return core.ColorCyan
	case PowerRapidFire:
		return core.ColorYellow
	case PowerSpreadShot:
		return core.ColorGreen
	case PowerSpeedBoost:
		return core.ColorBrightBlue
	case PowerHoming:
		return core.ColorMagenta
	case PowerBigShot:
		return core.ColorBrightRed
	default:
		return core.ColorDefault
	}
}

// Duration returns the effect duration in frames for this type.
func (t PowerUpType) Duration(cfg *config.Config) int {
	switch t {
	case PowerShield:
		return cfg.PowerUps.DurationShield
	case PowerRapidFire:
		return cfg.PowerUps.DurationRapidFire
	case PowerSpreadShot:
		return cfg.PowerUps.DurationSpreadShot
	case PowerSpeedBoost:
		return cfg.PowerUps.DurationSpeedBoost
	case PowerHoming:
		return cfg.PowerUps.DurationHoming
	case PowerBigShot:
		return cfg.PowerUps.DurationBigShot
	default:
		return 0
	}
}

// ActiveEffect tracks one running power-up: a countdown timer plus, for
// the shield, the remaining hit absorptions.
type ActiveEffect struct {
	Timer int
	Hits  int // shield only
}

// activate starts the effect for a picked-up drop. Picking up a type that
// is already active refreshes its timer to the full duration; it never
// stacks a second instance. A fresh shield also resets its absorption
// counter.
func (g *Game) activate(t PowerUpType) {
	eff, ok := g.effects[t]
	if !ok {
		eff = &ActiveEffect{}
		g.effects[t] = eff
	}
	eff.Timer = t.Duration(&g.cfg)
	if t == PowerShield {
		eff.Hits = g.cfg.PowerUps.ShieldHits
	}
}

// hasEffect reports whether the given effect is currently running.
func (g *Game) hasEffect(t PowerUpType) bool {
	_, ok := g.effects[t]
	return ok
}

// tickEffects decrements every active timer and drops entries that reach
// zero, ending their effect.
func (g *Game) tickEffects() {
	for t, eff := range g.effects {
		eff.Timer--
		if eff.Timer <= 0 {
			delete(g.effects, t)
		}
	}
}

// rollDrop spawns a power-up at the given position with probability
// chance. The type is a uniform draw over all six.
func (g *Game) rollDrop(pos core.Vec, chance float64) {
	if g.rng.Float64() >= chance {
		return
	}
	g.spawnPowerUp(pos)
}

// spawnPowerUp creates a drifting drop of a random type at pos.
func (g *Game) spawnPowerUp(pos core.Vec) {
	g.powerups = append(g.powerups, PowerUp{
		Pos: pos,
		Vel: core.Vec{
			X: (g.rng.Float64() - 0.5) * 0.6,
			Y: (g.rng.Float64() - 0.5) * 0.6,
		},
		Type:   PowerUpType(g.rng.Intn(int(numPowerUpTypes))),
		Life:   g.cfg.PowerUps.Lifetime,
		Radius: g.cfg.PowerUps.Radius,
	})
}
