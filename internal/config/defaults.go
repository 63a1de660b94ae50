package config

import (
	_ "embed"
)

//go:embed defaults/rocks.yaml
var defaultRocksYAML []byte

// DefaultRocksConfig returns the default gameplay configuration.
// The numbers mirror the embedded defaults/rocks.yaml; this is the fallback
// of last resort if the embedded document fails to parse.
func DefaultRocksConfig() RocksConfig {
	return RocksConfig{
		World: WorldConfig{
			Width:  1280,
			Height: 960,
		},
		Ship: ShipConfig{
			Scale:        25,
			TurnRate:     5.0,
			Accel:        14.0,
			Drag:         0.985,
			Recoil:       0.5,
			RespawnGrace: 3.0,
		},
		Projectile: ProjectileConfig{
			Speed:          10.0,
			Lifetime:       2.0,
			Grace:          0.15,
			ShipKillRadius: 24,
			MuzzleOffset:   30,
		},
		Field: FieldConfig{
			BaseCount:    10,
			MaxCount:     24,
			ScoreDivisor: 2000,
			SafeRadius:   250,
		},
		Aliens: AlienConfig{
			BigEvery:   5000,
			SmallEvery: 8000,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
	}
}
