package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshot restores the package globals after a test mutates them.
func snapshot(t *testing.T) {
	t.Helper()
	screen := *C
	items := Items
	presets := make(map[ItemKind]ItemPreset, len(Items.Presets))
	for k, v := range Items.Presets {
		presets[k] = v
	}
	fireball, coin, launcher, camera, debug := Fireball, Coin, Launcher, Camera, Debug
	t.Cleanup(func() {
		*C = screen
		Items = items
		Items.Presets = presets
		Fireball, Coin, Launcher, Camera, Debug = fireball, coin, launcher, camera, debug
	})
}

func TestApplyOverridesOnlyListedKeys(t *testing.T) {
	snapshot(t)

	err := Apply([]byte(`
screen:
  width: 1024
fireball:
  maxActive: 3
items:
  presets:
    starman:
      speed: 4
      animated: true
debug:
  drawGeometry: true
`))
	require.NoError(t, err)

	assert.Equal(t, 1024, C.Width)
	assert.Equal(t, 600, C.Height)
	assert.Equal(t, 3, Fireball.MaxActive)
	assert.Equal(t, 5.0, Fireball.Speed)
	assert.Equal(t, ItemPreset{Speed: 4, Animated: true}, Items.Presets[StarMan])
	assert.Equal(t, 2.0, Items.Presets[Mushroom].Speed)
	assert.True(t, Debug.DrawGeometry)
}

func TestApplyRejectsUnknownItemKind(t *testing.T) {
	snapshot(t)

	err := Apply([]byte("items:\n  presets:\n    goomba:\n      speed: 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goomba")
}

func TestApplyRejectedFileKeepsDefaults(t *testing.T) {
	snapshot(t)

	err := Apply([]byte(`
screen:
  width: 1024
fireball:
  speed: 99
  maxActive: -1
items:
  presets:
    mushroom:
      speed: 7
`))
	require.Error(t, err)

	assert.Equal(t, 800, C.Width)
	assert.Equal(t, 5.0, Fireball.Speed)
	assert.Equal(t, 2, Fireball.MaxActive)
	assert.Equal(t, 2.0, Items.Presets[Mushroom].Speed)
}

func TestLoadMissingFile(t *testing.T) {
	err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFromDisk(t *testing.T) {
	snapshot(t)

	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  jumpInterval: 500\n"), 0o644))
	require.NoError(t, Load(path))
	assert.Equal(t, int64(500), Items.JumpInterval)
	assert.Equal(t, 2.0, Items.RiseStep)
}

func TestParseItemKind(t *testing.T) {
	k, err := ParseItemKind("1-up")
	require.NoError(t, err)
	assert.Equal(t, ExtraLife, k)

	_, err = ParseItemKind("koopa")
	assert.Error(t, err)
}
