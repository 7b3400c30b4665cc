// Package config provides YAML/TOML configuration loading for the game's
// presentation layer: entity glyphs, colors and key bindings.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-gradius/internal/core"
)

// Config is the on-disk configuration file layout.
type Config struct {
	Theme ThemeConfig `yaml:"theme" toml:"theme"`
	Keys  KeysConfig  `yaml:"keys" toml:"keys"`
}

// ThemeConfig defines how each entity kind and the menu text look.
type ThemeConfig struct {
	Player      SpriteConfig `yaml:"player" toml:"player"`
	Enemy       SpriteConfig `yaml:"enemy" toml:"enemy"`
	Bullet      SpriteConfig `yaml:"bullet" toml:"bullet"`
	Bonus       SpriteConfig `yaml:"bonus" toml:"bonus"`
	MenuColor   string       `yaml:"menu_color" toml:"menu_color"`
	StatusColor string       `yaml:"status_color" toml:"status_color"`
}

// SpriteConfig is the glyph and color name of one entity kind.
type SpriteConfig struct {
	Glyph string `yaml:"glyph" toml:"glyph"`
	Color string `yaml:"color" toml:"color"`
}

// KeysConfig lists the Bubble Tea key names bound to each action.
type KeysConfig struct {
	Up    []string `yaml:"up" toml:"up"`
	Down  []string `yaml:"down" toml:"down"`
	Fire  []string `yaml:"fire" toml:"fire"`
	Start []string `yaml:"start" toml:"start"`
	Quit  []string `yaml:"quit" toml:"quit"`
}

// Sprite is a resolved glyph and color.
type Sprite struct {
	Glyph string
	Color core.Color
}

// Rune returns the first rune of the glyph, for single-cell sprites.
func (s Sprite) Rune() rune {
	r, _ := utf8.DecodeRuneInString(s.Glyph)
	return r
}

// Theme is a validated ThemeConfig with colors parsed.
type Theme struct {
	Player Sprite
	Enemy  Sprite
	Bullet Sprite
	Bonus  Sprite
	Menu   core.Color
	Status core.Color
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// ResolveTheme validates the theme section and resolves color names.
// Enemy, bullet and bonus glyphs must be exactly one character; the player
// sprite may be several characters wide.
func (c Config) ResolveTheme() (Theme, error) {
	var th Theme
	var err error

	if th.Player, err = resolveSprite("player", c.Theme.Player, false); err != nil {
		return Theme{}, err
	}
	if th.Enemy, err = resolveSprite("enemy", c.Theme.Enemy, true); err != nil {
		return Theme{}, err
	}
	if th.Bullet, err = resolveSprite("bullet", c.Theme.Bullet, true); err != nil {
		return Theme{}, err
	}
	if th.Bonus, err = resolveSprite("bonus", c.Theme.Bonus, true); err != nil {
		return Theme{}, err
	}
	if th.Menu, err = resolveColor("menu_color", c.Theme.MenuColor); err != nil {
		return Theme{}, err
	}
	if th.Status, err = resolveColor("status_color", c.Theme.StatusColor); err != nil {
		return Theme{}, err
	}
	return th, nil
}

// Validate checks that the configuration can be used as-is.
func (c Config) Validate() error {
	if _, err := c.ResolveTheme(); err != nil {
		return err
	}

	bindings := map[string][]string{
		"up":    c.Keys.Up,
		"down":  c.Keys.Down,
		"fire":  c.Keys.Fire,
		"start": c.Keys.Start,
		"quit":  c.Keys.Quit,
	}
	for name, keys := range bindings {
		if len(keys) == 0 {
			return fmt.Errorf("%w: keys.%s has no bindings", ErrInvalidConfig, name)
		}
	}
	return nil
}

func resolveSprite(name string, sc SpriteConfig, single bool) (Sprite, error) {
	n := utf8.RuneCountInString(sc.Glyph)
	if n == 0 {
		return Sprite{}, fmt.Errorf("%w: theme.%s.glyph is empty", ErrInvalidConfig, name)
	}
	if single && n != 1 {
		return Sprite{}, fmt.Errorf("%w: theme.%s.glyph must be a single character, got %q", ErrInvalidConfig, name, sc.Glyph)
	}
	color, err := resolveColor("theme."+name+".color", sc.Color)
	if err != nil {
		return Sprite{}, err
	}
	return Sprite{Glyph: sc.Glyph, Color: color}, nil
}

func resolveColor(field, name string) (core.Color, error) {
	if name == "" {
		return core.ColorDefault, nil
	}
	color, ok := core.ParseColor(name)
	if !ok {
		return core.ColorDefault, fmt.Errorf("%w: %s: unknown color %q", ErrInvalidConfig, field, name)
	}
	return color, nil
}
