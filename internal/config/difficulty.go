package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyRocksPreset modifies the config based on a difficulty preset.
// Unknown presets (including the empty string) leave the config unchanged.
func ApplyRocksPreset(cfg *RocksConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Field.BaseCount = 8
		cfg.Aliens.BigEvery = 6000
		cfg.Aliens.SmallEvery = 10000
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Field.BaseCount = 12
		cfg.Aliens.BigEvery = 4000
		cfg.Aliens.SmallEvery = 6500
	}
}
