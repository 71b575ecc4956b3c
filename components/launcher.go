package components

import (
	"github.com/yohamta/donburi"
)

// LauncherData marks the actor fireballs are thrown from.
type LauncherData struct {
	FacingRight bool
	WantsFire   bool // set by input, consumed by the fireball controller
	Score       int
	Collected   []string // item kinds picked up, in order
}

var Launcher = donburi.NewComponentType[LauncherData]()
