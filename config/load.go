package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the layout of a YAML override file. Apply decodes into
// copies of the package globals, so keys missing from the file keep their
// defaults. A preset listed under items.presets replaces the whole preset
// for that kind.
type fileConfig struct {
	Screen   *Config         `yaml:"screen"`
	Items    *ItemConfig     `yaml:"items"`
	Fireball *FireballConfig `yaml:"fireball"`
	Coin     *CoinConfig     `yaml:"coin"`
	Launcher *LauncherConfig `yaml:"launcher"`
	Camera   *CameraConfig   `yaml:"camera"`
	Debug    *DebugConfig    `yaml:"debug"`
}

// Load applies the overrides in the YAML file at path.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Apply(data)
}

// Apply applies YAML overrides held in memory. Nothing changes unless the
// whole file decodes and validates.
func Apply(data []byte) error {
	screen := *C
	items := Items
	items.Presets = make(map[ItemKind]ItemPreset, len(Items.Presets))
	for k, v := range Items.Presets {
		items.Presets[k] = v
	}
	fireball, coin, launcher, camera, debug := Fireball, Coin, Launcher, Camera, Debug

	fc := fileConfig{
		Screen:   &screen,
		Items:    &items,
		Fireball: &fireball,
		Coin:     &coin,
		Launcher: &launcher,
		Camera:   &camera,
		Debug:    &debug,
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if err := fc.validate(); err != nil {
		return err
	}

	*C = screen
	Items, Fireball, Coin, Launcher, Camera, Debug = items, fireball, coin, launcher, camera, debug
	return nil
}

func (fc *fileConfig) validate() error {
	for kind := range fc.Items.Presets {
		if _, err := ParseItemKind(string(kind)); err != nil {
			return fmt.Errorf("items.presets: %w", err)
		}
	}
	if fc.Fireball.MaxActive < 0 {
		return fmt.Errorf("fireball.maxActive must not be negative, got %d", fc.Fireball.MaxActive)
	}
	return nil
}
