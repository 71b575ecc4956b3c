package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// ItemPreset is the per-kind configuration of a power-up.
type ItemPreset struct {
	Speed    float64 `yaml:"speed"`    // horizontal pixels per tick, also the fall rate
	Animated bool    `yaml:"animated"` // cycle through all frames instead of showing the first
}

// ItemConfig contains power-up physics configuration
type ItemConfig struct {
	RiseStep       float64                 `yaml:"riseStep"`       // pixels per tick while leaving a block
	Gravity        float64                 `yaml:"gravity"`        // added to the jump speed every tick
	JumpMultiplier float64                 `yaml:"jumpMultiplier"` // jump impulse = speed * multiplier
	JumpInterval   int64                   `yaml:"jumpInterval"`   // ms between StarMan hops
	FrameDelay     int64                   `yaml:"frameDelay"`     // ms per animation frame
	Presets        map[ItemKind]ItemPreset `yaml:"presets"`
}

// FireballConfig contains fireball projectile configuration
type FireballConfig struct {
	Speed        float64 `yaml:"speed"`        // horizontal pixels per tick, also the launch vertical speed
	Gravity      float64 `yaml:"gravity"`      // added to the vertical speed when airborne
	MaxActive    int     `yaml:"maxActive"`    // live fireballs per launcher
	Size         int     `yaml:"size"`         // sprite and collision size in pixels
	FrameDelay   int64   `yaml:"frameDelay"`   // ms per flight frame
	ExplodeDelay int64   `yaml:"explodeDelay"` // ms per explosion frame
}

// CoinConfig contains collectible coin configuration
type CoinConfig struct {
	Points     int   `yaml:"points"`
	FrameDelay int64 `yaml:"frameDelay"`
}

// LauncherConfig contains the sandbox launcher stand-in configuration
type LauncherConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	WalkSpeed float64 `yaml:"walkSpeed"`
	FallSpeed float64 `yaml:"fallSpeed"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"followSmoothing"` // How fast camera follows the launcher (0.0-1.0)
}

// Config holds general game configuration
type Config struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TickMillis int64  `yaml:"tickMillis"` // clock step per update at 60 TPS
	Title      string `yaml:"title"`
	Level      string `yaml:"level"` // embedded TMX to load
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawGeometry bool `yaml:"drawGeometry"` // outline floors and obstacles
	ShowStats    bool `yaml:"showStats"`
}

// Global configuration instances
var C *Config
var Items ItemConfig
var Fireball FireballConfig
var Coin CoinConfig
var Launcher LauncherConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Brown     = color.RGBA{R: 150, G: 75, B: 0, A: 255}
	Blue      = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	SkyBlue   = color.RGBA{R: 92, G: 148, B: 252, A: 255}
	DarkGreen = color.RGBA{R: 0, G: 120, B: 40, A: 255}
)

func init() {
	C = &Config{
		Width:      800,
		Height:     600,
		TickMillis: 16,
		Title:      "fireflower",
		Level:      "levels/world1.tmx",
	}

	Items = ItemConfig{
		RiseStep:       2,
		Gravity:        1,
		JumpMultiplier: 5,
		JumpInterval:   1000,
		FrameDelay:     150,
		Presets: map[ItemKind]ItemPreset{
			Mushroom:   {Speed: 2, Animated: false},
			ExtraLife:  {Speed: 2, Animated: false},
			FireFlower: {Speed: 0, Animated: true},
			StarMan:    {Speed: 2, Animated: true},
		},
	}

	Fireball = FireballConfig{
		Speed:        5,
		Gravity:      2,
		MaxActive:    2,
		Size:         16,
		FrameDelay:   150,
		ExplodeDelay: 150,
	}

	Coin = CoinConfig{
		Points:     100,
		FrameDelay: 150,
	}

	Launcher = LauncherConfig{
		Width:     16,
		Height:    32,
		WalkSpeed: 3,
		FallSpeed: 4,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}
}
