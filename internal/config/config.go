// Package config provides YAML-based tuning configuration for the
// starfighter simulation. Every gameplay constant lives here so the
// simulation core carries no magic numbers.
package config

// Config contains all tuning for a starfighter run. All positions, sizes,
// speeds, and radii are expressed in the logical coordinate space; frame
// counts assume the 60 Hz tick.
type Config struct {
	Gameplay  GameplayConfig `yaml:"gameplay"`
	Player    PlayerConfig   `yaml:"player"`
	Bullets   BulletConfig   `yaml:"bullets"`
	Firing    FiringConfig   `yaml:"firing"`
	Enemies   EnemiesConfig  `yaml:"enemies"`
	Tiers     TierConfig     `yaml:"tiers"`
	PowerUps  PowerUpConfig  `yaml:"powerups"`
	Particles ParticleConfig `yaml:"particles"`
}

// GameplayConfig defines run-level parameters.
type GameplayConfig struct {
	Lives           int     `yaml:"lives"`
	SpawnInterval   int     `yaml:"spawn_interval"`    // frames between spawn attempts
	SafeSpawnRadius float64 `yaml:"safe_spawn_radius"` // min distance from player for new enemies
}

// PlayerConfig defines the player ship physics.
type PlayerConfig struct {
	Friction           float64 `yaml:"friction"`       // multiplicative per-frame velocity decay
	RotationSpeed      float64 `yaml:"rotation_speed"` // radians per frame
	ThrustPower        float64 `yaml:"thrust_power"`
	MaxSpeed           float64 `yaml:"max_speed"`
	Radius             float64 `yaml:"radius"`
	InvincibilityFrames int    `yaml:"invincibility_frames"`
	SpeedBoostMult     float64 `yaml:"speed_boost_mult"`
}

// BulletConfig defines projectile parameters for all three player bullet kinds.
type BulletConfig struct {
	Speed    float64       `yaml:"speed"`
	Lifetime int           `yaml:"lifetime"` // frames
	Radius   float64       `yaml:"radius"`
	Max      int           `yaml:"max"` // concurrent normal bullets
	Homing   HomingConfig  `yaml:"homing"`
	BigShot  BigShotConfig `yaml:"bigshot"`
}

// HomingConfig defines homing bullet parameters.
type HomingConfig struct {
	Speed    float64 `yaml:"speed"`
	Steer    float64 `yaml:"steer"` // max per-frame steering, radians
	Lifetime int     `yaml:"lifetime"`
	Radius   float64 `yaml:"radius"`
	Max      int     `yaml:"max"`
}

// BigShotConfig defines big piercing bullet parameters.
type BigShotConfig struct {
	Speed    float64 `yaml:"speed"`
	Radius   float64 `yaml:"radius"`
	Lifetime int     `yaml:"lifetime"`
	Max      int     `yaml:"max"`
}

// FiringConfig defines fire cooldowns and the spread cone.
type FiringConfig struct {
	CooldownNormal  int     `yaml:"cooldown_normal"` // frames between shots
	CooldownRapid   int     `yaml:"cooldown_rapid"`
	RapidMaxBullets int     `yaml:"rapid_max_bullets"`
	SpreadAngle     float64 `yaml:"spread_angle"` // radians off-axis for spread shots
}

// EnemiesConfig groups per-variant enemy tuning.
type EnemiesConfig struct {
	Drifter  DrifterConfig  `yaml:"drifter"`
	Gunner   GunnerConfig   `yaml:"gunner"`
	Kamikaze KamikazeConfig `yaml:"kamikaze"`
	Boss     BossConfig     `yaml:"boss"`
}

// DrifterConfig tunes the random-walk drifter.
type DrifterConfig struct {
	Radius        float64 `yaml:"radius"`
	Speed         float64 `yaml:"speed"`
	HP            int     `yaml:"hp"`
	Score         int     `yaml:"score"`
	DropChance    float64 `yaml:"drop_chance"`
	DriftInterval int     `yaml:"drift_interval"` // frames between heading perturbations
}

// GunnerConfig tunes the aimed-shot gunner.
type GunnerConfig struct {
	Radius       float64 `yaml:"radius"`
	Speed        float64 `yaml:"speed"`
	TurnRate     float64 `yaml:"turn_rate"`
	ScoreBase    int     `yaml:"score_base"`
	ScorePerHP   int     `yaml:"score_per_hp"`
	DropChance   float64 `yaml:"drop_chance"`
	BulletSpeed  float64 `yaml:"bullet_speed"`
	BulletRadius float64 `yaml:"bullet_radius"`
	BulletLife   int     `yaml:"bullet_life"`
	FireRateMin  int     `yaml:"fire_rate_min"` // frames between shots, randomized per gunner
	FireRateMax  int     `yaml:"fire_rate_max"`
}

// KamikazeConfig tunes the ramming kamikaze.
type KamikazeConfig struct {
	Radius     float64 `yaml:"radius"`
	Speed      float64 `yaml:"speed"`
	Accel      float64 `yaml:"accel"`
	MaxSpeed   float64 `yaml:"max_speed"`
	HP         int     `yaml:"hp"`
	Score      int     `yaml:"score"`
	DropChance float64 `yaml:"drop_chance"`
}

// BossConfig tunes the spread-firing boss.
type BossConfig struct {
	Radius       float64 `yaml:"radius"`
	Speed        float64 `yaml:"speed"`
	TurnRate     float64 `yaml:"turn_rate"`
	HP           int     `yaml:"hp"`
	Score        int     `yaml:"score"`
	DropChance   float64 `yaml:"drop_chance"`
	Drops        int     `yaml:"drops"` // power-ups dropped on death
	FireRate     int     `yaml:"fire_rate"`
	BulletSpeed  float64 `yaml:"bullet_speed"`
	BulletRadius float64 `yaml:"bullet_radius"`
	BulletLife   int     `yaml:"bullet_life"`
	Spread       float64 `yaml:"spread"` // radians between spread bullets
}

// TierConfig defines time-based difficulty progression. Thresholds are in
// seconds of play time; MaxEnemies is indexed by tier (1-based, entry 0 unused).
type TierConfig struct {
	Thresholds []float64 `yaml:"thresholds"`
	MaxEnemies []int     `yaml:"max_enemies"`
}

// PowerUpConfig tunes power-up drops and effect durations (frames).
type PowerUpConfig struct {
	Lifetime      int     `yaml:"lifetime"` // frames a drop floats before expiring
	Radius        float64 `yaml:"radius"`
	CollectRadius float64 `yaml:"collect_radius"`

	DurationShield     int `yaml:"duration_shield"`
	DurationRapidFire  int `yaml:"duration_rapidfire"`
	DurationSpreadShot int `yaml:"duration_spreadshot"`
	DurationSpeedBoost int `yaml:"duration_speedboost"`
	DurationHoming     int `yaml:"duration_homing"`
	DurationBigShot    int `yaml:"duration_bigshot"`

	ShieldHits          int `yaml:"shield_hits"`
	ShieldInvincibility int `yaml:"shield_invincibility"` // frames after absorbing a hit
}

// ParticleConfig tunes explosion particles.
type ParticleConfig struct {
	Lifetime       int     `yaml:"lifetime"`
	SpeedMin       float64 `yaml:"speed_min"`
	SpeedMax       float64 `yaml:"speed_max"`
	Friction       float64 `yaml:"friction"`
	ExplosionEnemy  int    `yaml:"explosion_enemy"`  // burst size for enemy deaths
	ExplosionPlayer int    `yaml:"explosion_player"` // burst size for player deaths
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
