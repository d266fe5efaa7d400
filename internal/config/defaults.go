package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default application configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		DefaultVariant: "classic",
		Board:          BoardConfig{}, // Zeros: keep the variant's parameters
		UI: UIConfig{
			TickRate: 30,
		},
	}
}

// GetDefaultYAML returns the embedded default configuration file.
func GetDefaultYAML() []byte {
	return defaultGameYAML
}
