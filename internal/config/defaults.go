package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/starfighter.yaml
var defaultYAML []byte

// Default returns the built-in tuning. Values match the embedded YAML; this
// is the fallback if the embed somehow fails to parse.
func Default() Config {
	return Config{
		Gameplay: GameplayConfig{
			Lives:           3,
			SpawnInterval:   40,
			SafeSpawnRadius: 150,
		},
		Player: PlayerConfig{
			Friction:            0.98,
			RotationSpeed:       0.05,
			ThrustPower:         0.12,
			MaxSpeed:            5.0,
			Radius:              18,
			InvincibilityFrames: 120,
			SpeedBoostMult:      1.5,
		},
		Bullets: BulletConfig{
			Speed:    7.0,
			Lifetime: 60,
			Radius:   4,
			Max:      5,
			Homing: HomingConfig{
				Speed:    3.5,
				Steer:    0.06,
				Lifetime: 180,
				Radius:   5,
				Max:      2,
			},
			BigShot: BigShotConfig{
				Speed:    3.5,
				Radius:   12,
				Lifetime: 120,
				Max:      2,
			},
		},
		Firing: FiringConfig{
			CooldownNormal:  15,
			CooldownRapid:   5,
			RapidMaxBullets: 10,
			SpreadAngle:     0.17,
		},
		Enemies: EnemiesConfig{
			Drifter: DrifterConfig{
				Radius:        12,
				Speed:         0.8,
				HP:            1,
				Score:         100,
				DropChance:    0.20,
				DriftInterval: 120,
			},
			Gunner: GunnerConfig{
				Radius:       16,
				Speed:        0.5,
				TurnRate:     0.02,
				ScoreBase:    200,
				ScorePerHP:   50,
				DropChance:   0.35,
				BulletSpeed:  3.0,
				BulletRadius: 3,
				BulletLife:   300,
				FireRateMin:  120,
				FireRateMax:  180,
			},
			Kamikaze: KamikazeConfig{
				Radius:     10,
				Speed:      1.0,
				Accel:      0.04,
				MaxSpeed:   4.0,
				HP:         1,
				Score:      150,
				DropChance: 0.25,
			},
			Boss: BossConfig{
				Radius:       35,
				Speed:        0.3,
				TurnRate:     0.01,
				HP:           10,
				Score:        1000,
				DropChance:   1.0,
				Drops:        2,
				FireRate:     90,
				BulletSpeed:  2.5,
				BulletRadius: 4,
				BulletLife:   300,
				Spread:       0.2,
			},
		},
		Tiers: TierConfig{
			Thresholds: []float64{30, 60, 90},
			MaxEnemies: []int{0, 3, 5, 6, 8},
		},
		PowerUps: PowerUpConfig{
			Lifetime:      900,
			Radius:        10,
			CollectRadius: 20,

			DurationShield:     900,
			DurationRapidFire:  600,
			DurationSpreadShot: 600,
			DurationSpeedBoost: 600,
			DurationHoming:     600,
			DurationBigShot:    600,

			ShieldHits:          3,
			ShieldInvincibility: 30,
		},
		Particles: ParticleConfig{
			Lifetime:        40,
			SpeedMin:        1.0,
			SpeedMax:        4.0,
			Friction:        0.97,
			ExplosionEnemy:  10,
			ExplosionPlayer: 16,
		},
	}
}

// Normalize fills in zero-valued fields that would break the simulation,
// so a sparse user config file overrides only what it names.
func Normalize(cfg *Config) {
	def := Default()

	if cfg.Gameplay.Lives <= 0 {
		cfg.Gameplay.Lives = def.Gameplay.Lives
	}
	if cfg.Gameplay.SpawnInterval <= 0 {
		cfg.Gameplay.SpawnInterval = def.Gameplay.SpawnInterval
	}
	if cfg.Player.Friction <= 0 || cfg.Player.Friction > 1 {
		cfg.Player.Friction = def.Player.Friction
	}
	if cfg.Player.MaxSpeed <= 0 {
		cfg.Player.MaxSpeed = def.Player.MaxSpeed
	}
	if cfg.Player.Radius <= 0 {
		cfg.Player.Radius = def.Player.Radius
	}
	if cfg.Bullets.Speed <= 0 {
		cfg.Bullets.Speed = def.Bullets.Speed
	}
	if cfg.Firing.CooldownNormal <= 0 {
		cfg.Firing.CooldownNormal = def.Firing.CooldownNormal
	}
	if len(cfg.Tiers.Thresholds) == 0 {
		cfg.Tiers.Thresholds = def.Tiers.Thresholds
	}
	if len(cfg.Tiers.MaxEnemies) < len(cfg.Tiers.Thresholds)+2 {
		cfg.Tiers.MaxEnemies = def.Tiers.MaxEnemies
	}
	if cfg.Particles.Friction <= 0 || cfg.Particles.Friction > 1 {
		cfg.Particles.Friction = def.Particles.Friction
	}
}

// DisableProgression freezes the tier ladder at tier 1. Used by the
// "fixed" difficulty preset.
func DisableProgression(cfg *Config) {
	cfg.Tiers.Thresholds = []float64{math.Inf(1), math.Inf(1), math.Inf(1)}
}
