// Package config provides YAML-based gameplay configuration loading and
// difficulty presets for the arcade.
package config

// RocksConfig contains all gameplay tuning for Big Space Rocks.
type RocksConfig struct {
	World      WorldConfig      `yaml:"world"`
	Ship       ShipConfig       `yaml:"ship"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Field      FieldConfig      `yaml:"field"`
	Aliens     AlienConfig      `yaml:"aliens"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
}

// WorldConfig defines the toroidal arena extents in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines ship handling parameters.
type ShipConfig struct {
	Scale        float64 `yaml:"scale"`         // Draw scale of the hull
	TurnRate     float64 `yaml:"turn_rate"`     // Radians per second
	Accel        float64 `yaml:"accel"`         // Thrust acceleration, units per second
	Drag         float64 `yaml:"drag"`          // Multiplicative velocity damping per frame
	Recoil       float64 `yaml:"recoil"`        // Velocity kick opposite each shot
	RespawnGrace float64 `yaml:"respawn_grace"` // Seconds between death and respawn
}

// ProjectileConfig defines projectile parameters.
type ProjectileConfig struct {
	Speed          float64 `yaml:"speed"`            // Units per frame
	Lifetime       float64 `yaml:"lifetime"`         // Seconds before expiry
	Grace          float64 `yaml:"grace"`            // Self-hit protection window, seconds
	ShipKillRadius float64 `yaml:"ship_kill_radius"` // Proximity that kills the ship
	MuzzleOffset   float64 `yaml:"muzzle_offset"`    // Spawn distance ahead of the firer
}

// FieldConfig defines rock-field generation parameters.
type FieldConfig struct {
	BaseCount    int     `yaml:"base_count"`    // Rocks in the first wave
	MaxCount     int     `yaml:"max_count"`     // Wave size cap
	ScoreDivisor int     `yaml:"score_divisor"` // Extra rock per this many points
	SafeRadius   float64 `yaml:"safe_radius"`   // Spawn exclusion radius around center
}

// AlienConfig defines score thresholds for saucer spawns.
type AlienConfig struct {
	BigEvery   int `yaml:"big_every"`   // Big saucer per score multiple
	SmallEvery int `yaml:"small_every"` // Small saucer per score multiple
}

// GameplayConfig defines session-level parameters.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}
