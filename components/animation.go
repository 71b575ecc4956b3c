package components

import (
	"github.com/automoto/fireflower/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData drives the sprite of animated collectibles. Static items
// carry a nil Animator and keep their first frame.
type AnimationData struct {
	Animator *animations.Animator
}

// Step advances the animator and copies the current frame to the sprite.
func (a *AnimationData) Step(sprite *SpriteData) {
	if a.Animator == nil {
		return
	}
	a.Animator.Advance()
	sprite.Image = a.Animator.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()

type ClockData struct {
	*animations.TickClock
}

var Clock = donburi.NewComponentType[ClockData]()
