package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a flag value to a preset. Unknown or empty values
// mean normal.
func ParseDifficulty(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return DifficultyNormal
	}
}

// ApplyMatch3Preset adjusts a resolved variant for a difficulty preset.
// Easy grants half again as many moves and one item fewer; hard takes a
// third of the moves away and adds one item if the config has a spare.
// Unlimited variants keep no move limit.
func ApplyMatch3Preset(v *VariantConfig, preset DifficultyPreset, available int) {
	switch preset {
	case DifficultyEasy:
		if v.MoveLimit > 0 {
			v.MoveLimit += v.MoveLimit / 2
		}
		if v.Items > 3 {
			v.Items--
		}
	case DifficultyHard:
		if v.MoveLimit > 0 {
			v.MoveLimit = max(1, v.MoveLimit-v.MoveLimit/3)
		}
		if v.Items < available {
			v.Items++
		}
	}
}
