package game

import (
	"fmt"
	"math"

	"github.com/hblok/starfighter/internal/core"
)

// Render draws the current state into the screen buffer. The logical
// 640x480 space is projected onto whatever cell grid the platform
// provides.
func (g *Game) Render(dst *core.Screen) {
	switch g.phase {
	case PhaseMenu:
		g.renderMenu(dst)
	case PhasePlaying:
		g.renderArena(dst)
	case PhasePaused:
		g.renderArena(dst)
		dst.DrawTextCenteredColored(dst.Height()/2, "P A U S E D", core.ColorBrightYellow)
	case PhaseGameOver:
		g.renderArena(dst)
		g.renderGameOver(dst)
	}
}

// project maps a logical position to screen cell coordinates.
func project(p core.Vec, dst *core.Screen) (int, int) {
	x := int(p.X / core.LogicalWidth * float64(dst.Width()))
	y := int(p.Y / core.LogicalHeight * float64(dst.Height()))
	return x, y
}

func (g *Game) renderArena(dst *core.Screen) {
	for i := range g.particles {
		p := &g.particles[i]
		c := p.Color
		if p.Life < p.MaxLife/3 {
			c = core.ColorGray
		}
		x, y := project(p.Pos, dst)
		dst.SetCell(x, y, '.', c)
	}

	for i := range g.powerups {
		p := &g.powerups[i]
		x, y := project(p.Pos, dst)
		dst.SetCell(x, y, p.Type.Glyph(), p.Type.Color())
	}

	for i := range g.enemies {
		g.renderEnemy(dst, &g.enemies[i])
	}

	for i := range g.bullets {
		b := &g.bullets[i]
		x, y := project(b.Pos, dst)
		dst.SetCell(x, y, bulletGlyph(b.Kind), b.Color)
	}
	for i := range g.enemyBullets {
		b := &g.enemyBullets[i]
		x, y := project(b.Pos, dst)
		dst.SetCell(x, y, '·', b.Color)
	}

	g.renderPlayer(dst)
	g.renderHUD(dst)
}

func (g *Game) renderPlayer(dst *core.Screen) {
	// Spawn protection blinks the ship.
	if g.player.Invincible > 0 && (g.elapsed/4)%2 == 0 {
		return
	}
	x, y := project(g.player.Pos, dst)
	if g.player.Thrusting {
		ex, ey := project(g.player.Pos.Add(core.Heading(g.player.Angle).Scale(-g.player.Radius)), dst)
		if ex != x || ey != y {
			dst.SetCell(ex, ey, '·', core.ColorYellow)
		}
	}
	c := core.ColorBrightCyan
	if g.hasEffect(PowerShield) {
		c = core.ColorCyan
		dst.SetCell(x-1, y, '(', core.ColorCyan)
		dst.SetCell(x+1, y, ')', core.ColorCyan)
	}
	dst.SetCell(x, y, shipGlyph(g.player.Angle), c)
}

func (g *Game) renderEnemy(dst *core.Screen, e *Enemy) {
	c := enemyColor(e.Type)
	if e.HitFlash > 0 {
		c = core.ColorBrightWhite
	}
	x, y := project(e.Pos, dst)

	if e.Type == EnemyBoss {
		dst.SetCell(x-1, y, '[', c)
		dst.SetCell(x, y, '@', c)
		dst.SetCell(x+1, y, ']', c)
		// Health bar above the hull
		width := 5
		filled := e.HP * width / e.MaxHP
		for i := 0; i < width; i++ {
			bar := '░'
			if i < filled {
				bar = '█'
			}
			dst.SetCell(x-width/2+i, y-1, bar, core.ColorBrightRed)
		}
		return
	}

	dst.SetCell(x, y, enemyGlyph(e.Type), c)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE %d", g.score), core.ColorBrightWhite)
	dst.DrawTextColored(1, 1, fmt.Sprintf("HI %d", g.highScore), core.ColorGray)

	lives := ""
	for i := 0; i < g.lives; i++ {
		lives += "♥"
	}
	dst.DrawTextColored(dst.Width()-g.lives-1, 0, lives, core.ColorBrightRed)

	t := fmt.Sprintf("T%d %3.0fs", g.tier(), g.ElapsedSeconds())
	dst.DrawTextColored(dst.Width()/2-len(t)/2, 0, t, core.ColorGray)

	// Active effect readout with remaining seconds
	col := 1
	for t := PowerUpType(0); t < numPowerUpTypes; t++ {
		eff, ok := g.effects[t]
		if !ok {
			continue
		}
		label := fmt.Sprintf("%s %ds", t, eff.Timer/g.tickRate+1)
		if t == PowerShield {
			label = fmt.Sprintf("%s x%d", t, eff.Hits)
		}
		dst.DrawTextColored(col, dst.Height()-1, label, t.Color())
		col += len(label) + 2
	}
}

func (g *Game) renderMenu(dst *core.Screen) {
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		x, y := project(gh.Pos, dst)
		dst.SetCell(x, y, enemyGlyph(gh.Type), core.ColorGray)
	}

	mid := dst.Height() / 2
	dst.DrawTextCenteredColored(mid-2, "S T A R F I G H T E R", core.ColorBrightCyan)
	if (g.menuTicks/30)%2 == 0 {
		dst.DrawTextCenteredColored(mid, "press enter or space to launch", core.ColorWhite)
	}
	dst.DrawTextCenteredColored(mid+2, "arrows steer · space fires · p pauses", core.ColorGray)
	if g.highScore > 0 {
		dst.DrawTextCenteredColored(mid+4, fmt.Sprintf("high score %d", g.highScore), core.ColorYellow)
	}
}

func (g *Game) renderGameOver(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColored(mid-2, "G A M E  O V E R", core.ColorBrightRed)
	dst.DrawTextCenteredColored(mid, fmt.Sprintf("score %d", g.score), core.ColorBrightWhite)
	if g.newBest {
		dst.DrawTextCenteredColored(mid+1, "new high score!", core.ColorBrightYellow)
	} else {
		dst.DrawTextCenteredColored(mid+1, fmt.Sprintf("best %d", g.highScore), core.ColorGray)
	}
	dst.DrawTextCenteredColored(mid+3, "enter restarts · esc for menu", core.ColorGray)
}

// shipGlyph picks a directional rune for the player facing.
func shipGlyph(angle float64) rune {
	a := core.NormalizeAngle(angle)
	switch {
	case a >= -math.Pi/4 && a < math.Pi/4:
		return '>'
	case a >= math.Pi/4 && a < 3*math.Pi/4:
		return 'v'
	case a >= -3*math.Pi/4 && a < -math.Pi/4:
		return '^'
	default:
		return '<'
	}
}

func enemyGlyph(t EnemyType) rune {
	switch t {
	case EnemyDrifter:
		return 'o'
	case EnemyGunner:
		return 'M'
	case EnemyKamikaze:
		return 'x'
	case EnemyBoss:
		return '@'
	default:
		return '?'
	}
}

func bulletGlyph(k BulletKind) rune {
	switch k {
	case BulletHoming:
		return '◦'
	case BulletBig:
		return 'O'
	default:
		return '•'
	}
}
