package config

// ApplyT2048Preset modifies the config based on a difficulty preset.
// Normal leaves the config as loaded.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.Spawn4Chance = 0.05
		cfg.Timing.ComboWindowMS = 3000
		scalePowerUps(cfg, 1)
	case DifficultyHard:
		cfg.Board.Spawn4Chance = 0.25
		cfg.Timing.ComboWindowMS = 1500
		scalePowerUps(cfg, -1)
	}
}

// scalePowerUps shifts every power-up's uses by delta, never below zero.
func scalePowerUps(cfg *T2048Config, delta int) {
	for id, p := range cfg.PowerUps {
		p.Uses = max(p.Uses+delta, 0)
		cfg.PowerUps[id] = p
	}
}
