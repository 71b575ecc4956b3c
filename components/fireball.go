package components

import (
	"github.com/automoto/fireflower/assets/animations"
	"github.com/yohamta/donburi"
)

type FireballState int

const (
	FireballFlying FireballState = iota
	FireballExploding
	FireballRemoved
)

func (s FireballState) String() string {
	switch s {
	case FireballFlying:
		return "flying"
	case FireballExploding:
		return "exploding"
	case FireballRemoved:
		return "removed"
	}
	return "unknown"
}

type FireballData struct {
	Owner   *donburi.Entry
	State   FireballState
	SpeedX  float64
	SpeedY  float64
	Flight  *animations.Animator
	Explode *animations.Animator
}

// Flying reports whether the fireball can still move and hit things.
func (f *FireballData) Flying() bool {
	return f.State == FireballFlying
}

// Detonate switches to the explosion. A fireball never returns to flight.
func (f *FireballData) Detonate() {
	if f.State == FireballFlying {
		f.State = FireballExploding
	}
}

var Fireball = donburi.NewComponentType[FireballData]()
