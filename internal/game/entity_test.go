package game

import (
	"math"
	"testing"

	"github.com/hblok/starfighter/internal/config"
	"github.com/hblok/starfighter/internal/core"
)

func TestPlayerSpeedClamp(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(&cfg)

	for i := 0; i < 600; i++ {
		p.Update(false, false, true, &cfg, false)
		if sp := p.Vel.Len(); sp > cfg.Player.MaxSpeed+1e-9 {
			t.Fatalf("frame %d: speed %.3f over cap %.3f", i, sp, cfg.Player.MaxSpeed)
		}
	}

	// With speed boost the cap rises accordingly
	boostedCap := cfg.Player.MaxSpeed * cfg.Player.SpeedBoostMult
	for i := 0; i < 600; i++ {
		p.Update(false, false, true, &cfg, true)
		if sp := p.Vel.Len(); sp > boostedCap+1e-9 {
			t.Fatalf("boosted frame %d: speed %.3f over cap %.3f", i, sp, boostedCap)
		}
	}
}

func TestPlayerFrictionDecays(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(&cfg)
	p.Vel = core.Vec{X: 3}

	p.Update(false, false, false, &cfg, false)
	if p.Vel.X >= 3 {
		t.Errorf("friction did not slow the ship: vx = %v", p.Vel.X)
	}
}

func TestPlayerRespawn(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(&cfg)
	p.Pos = core.Vec{X: 10, Y: 10}
	p.Vel = core.Vec{X: 2, Y: 2}
	p.Invincible = 0

	p.Respawn(&cfg)

	center := core.Vec{X: core.LogicalWidth / 2, Y: core.LogicalHeight / 2}
	if p.Pos != center {
		t.Errorf("respawn position = %v, want %v", p.Pos, center)
	}
	if p.Vel != (core.Vec{}) {
		t.Errorf("respawn velocity = %v, want zero", p.Vel)
	}
	if p.Invincible != cfg.Player.InvincibilityFrames {
		t.Errorf("invincibility = %d, want %d", p.Invincible, cfg.Player.InvincibilityFrames)
	}
}

func TestBulletLifetime(t *testing.T) {
	cfg := config.Default()
	b := Bullet{Pos: core.Vec{X: 100, Y: 100}, Life: 5, Radius: 4}

	for i := 1; i <= 4; i++ {
		if !b.Update(&cfg, nil) {
			t.Fatalf("bullet died on update %d, want alive through 4", i)
		}
	}
	if b.Update(&cfg, nil) {
		t.Error("bullet should die on update 5")
	}
}

func TestBulletRemovedOffSpace(t *testing.T) {
	cfg := config.Default()
	b := Bullet{
		Pos:  core.Vec{X: core.LogicalWidth - 1, Y: 100},
		Vel:  core.Vec{X: 10},
		Life: 1000,
	}

	if b.Update(&cfg, nil) {
		t.Error("bullet leaving the space should be removed, not wrapped")
	}
}

func TestHomingSteersTowardNearest(t *testing.T) {
	cfg := config.Default()
	b := Bullet{
		Pos:  core.Vec{X: 100, Y: 100},
		Vel:  core.Vec{X: cfg.Bullets.Homing.Speed}, // heading right
		Life: 100,
		Kind: BulletHoming,
	}
	enemies := []Enemy{
		{Pos: core.Vec{X: 100, Y: 300}}, // below, far
		{Pos: core.Vec{X: 100, Y: 150}}, // below, near
	}

	before := math.Atan2(b.Vel.Y, b.Vel.X)
	b.Update(&cfg, enemies)
	after := math.Atan2(b.Vel.Y, b.Vel.X)

	turned := core.NormalizeAngle(after - before)
	if turned <= 0 {
		t.Errorf("homing bullet should turn downward, turned %.4f", turned)
	}
	if turned > cfg.Bullets.Homing.Steer+1e-9 {
		t.Errorf("turn %.4f exceeds steering limit %.4f", turned, cfg.Bullets.Homing.Steer)
	}
	if sp := b.Vel.Len(); math.Abs(sp-cfg.Bullets.Homing.Speed) > 1e-9 {
		t.Errorf("homing speed = %.4f, want %.4f", sp, cfg.Bullets.Homing.Speed)
	}
}

func TestHomingWithoutEnemiesHoldsHeading(t *testing.T) {
	cfg := config.Default()
	b := Bullet{
		Pos:  core.Vec{X: 100, Y: 100},
		Vel:  core.Vec{X: 2, Y: 1},
		Life: 100,
		Kind: BulletHoming,
	}
	vel := b.Vel
	b.Update(&cfg, nil)
	if b.Vel != vel {
		t.Errorf("velocity changed with no enemies: %v -> %v", b.Vel, vel)
	}
}

func TestPowerUpExpires(t *testing.T) {
	p := PowerUp{Pos: core.Vec{X: 50, Y: 50}, Life: 3}

	if !p.Update() || !p.Update() {
		t.Fatal("powerup died early")
	}
	if p.Update() {
		t.Error("powerup should expire at life 0")
	}
}

func TestParticleFadesOut(t *testing.T) {
	cfg := config.Default()
	p := Particle{Pos: core.Vec{X: 50, Y: 50}, Vel: core.Vec{X: 2}, Life: 2, MaxLife: 2}

	if !p.Update(cfg.Particles.Friction) {
		t.Fatal("particle died early")
	}
	if p.Vel.X >= 2 {
		t.Error("particle velocity should decay")
	}
	if p.Update(cfg.Particles.Friction) {
		t.Error("particle should die at life 0")
	}
}
