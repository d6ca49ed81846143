package game

import (
	"github.com/hblok/starfighter/internal/core"
)

// canFire reports whether the player may shoot this frame. The cooldown
// gates everything; beyond that, each firing mode caps its own
// concurrently-alive bullet kind. Under rapid-fire the normal cap is
// raised.
func (g *Game) canFire() bool {
	if g.player.FireCooldown > 0 {
		return false
	}

	switch {
	case g.hasEffect(PowerHoming):
		return g.countBullets(BulletHoming) < g.cfg.Bullets.Homing.Max
	case g.hasEffect(PowerBigShot):
		return g.countBullets(BulletBig) < g.cfg.Bullets.BigShot.Max
	default:
		max := g.cfg.Bullets.Max
		if g.hasEffect(PowerRapidFire) {
			max = g.cfg.Firing.RapidMaxBullets
		}
		return len(g.bullets) < max
	}
}

// fire spawns bullet(s) from the ship's nose and starts the cooldown.
// Mode precedence when several power-ups are active: homing beats big-shot
// beats spread. Spread fires three bullets fanned around the facing.
func (g *Game) fire() {
	g.player.FireCooldown = g.cfg.Firing.CooldownNormal
	if g.hasEffect(PowerRapidFire) {
		g.player.FireCooldown = g.cfg.Firing.CooldownRapid
	}

	nose := g.player.Nose()
	angle := g.player.Angle

	switch {
	case g.hasEffect(PowerHoming):
		g.bullets = append(g.bullets, Bullet{
			Pos:    nose,
			Vel:    core.Heading(angle).Scale(g.cfg.Bullets.Homing.Speed),
			Life:   g.cfg.Bullets.Homing.Lifetime,
			Radius: g.cfg.Bullets.Homing.Radius,
			Kind:   BulletHoming,
			Color:  core.ColorMagenta,
		})
	case g.hasEffect(PowerBigShot):
		g.bullets = append(g.bullets, Bullet{
			Pos:    nose,
			Vel:    core.Heading(angle).Scale(g.cfg.Bullets.BigShot.Speed),
			Life:   g.cfg.Bullets.BigShot.Lifetime,
			Radius: g.cfg.Bullets.BigShot.Radius,
			Kind:   BulletBig,
			Color:  core.ColorBrightRed,
		})
	case g.hasEffect(PowerSpreadShot):
		for _, da := range []float64{-g.cfg.Firing.SpreadAngle, 0, g.cfg.Firing.SpreadAngle} {
			g.bullets = append(g.bullets, g.normalBullet(nose, angle+da))
		}
	default:
		g.bullets = append(g.bullets, g.normalBullet(nose, angle))
	}
}

func (g *Game) normalBullet(pos core.Vec, angle float64) Bullet {
	return Bullet{
		Pos:    pos,
		Vel:    core.Heading(angle).Scale(g.cfg.Bullets.Speed),
		Life:   g.cfg.Bullets.Lifetime,
		Radius: g.cfg.Bullets.Radius,
		Kind:   BulletNormal,
		Color:  core.ColorBrightYellow,
	}
}

// countBullets returns how many live player bullets have the given kind.
func (g *Game) countBullets(kind BulletKind) int {
	n := 0
	for i := range g.bullets {
		if g.bullets[i].Kind == kind {
			n++
		}
	}
	return n
}
