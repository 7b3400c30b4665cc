package config

import (
	_ "embed"
	"fmt"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Theme: ThemeConfig{
			Player:      SpriteConfig{Glyph: "<#=O>", Color: "cyan"},
			Enemy:       SpriteConfig{Glyph: "X", Color: "red"},
			Bullet:      SpriteConfig{Glyph: ">", Color: "yellow"},
			Bonus:       SpriteConfig{Glyph: "$", Color: "magenta"},
			MenuColor:   "yellow",
			StatusColor: "default",
		},
		Keys: KeysConfig{
			Up:    []string{"up", "w"},
			Down:  []string{"down", "s"},
			Fire:  []string{" "},
			Start: []string{"1"},
			Quit:  []string{"2"},
		},
	}
}

// DefaultTheme returns the resolved built-in theme.
func DefaultTheme() Theme {
	th, err := DefaultConfig().ResolveTheme()
	if err != nil {
		panic(fmt.Sprintf("config: built-in theme is invalid: %v", err))
	}
	return th
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultConfigYAML
}
