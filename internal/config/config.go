// Package config provides YAML-based configuration loading for the
// term2048 application: default variant selection, board parameter
// overrides, and UI settings.
package config

// GameConfig is the top-level application configuration.
type GameConfig struct {
	DefaultVariant string      `yaml:"default_variant"`
	Board          BoardConfig `yaml:"board"`
	UI             UIConfig    `yaml:"ui"`
}

// BoardConfig overrides variant board parameters. Zero values leave the
// selected variant's parameter untouched.
type BoardConfig struct {
	Size            int     `yaml:"size"`             // Board dimension, minimum 2
	WinTarget       int     `yaml:"win_target"`       // Tile value that wins the game
	FourProbability float64 `yaml:"four_probability"` // Chance of spawning 4 instead of 2
}

// UIConfig defines presentation-layer settings.
type UIConfig struct {
	TickRate int `yaml:"tick_rate"` // Simulation ticks per second
}
