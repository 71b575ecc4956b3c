package factory

import (
	"fmt"

	"github.com/automoto/fireflower/archetypes"
	"github.com/automoto/fireflower/assets/animations"
	"github.com/automoto/fireflower/components"
	"github.com/automoto/fireflower/config"
	"github.com/automoto/fireflower/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFireball spawns a flying fireball with its top-left corner at x, y.
// A negative speed throws it to the left. The vertical speed starts equal to
// the horizontal one, so a left throw first arcs upward.
func CreateFireball(ecs *ecs.ECS, owner *donburi.Entry, x, y, speed float64, flight, explode []*ebiten.Image) (*donburi.Entry, error) {
	clock := clockOf(ecs)
	flightAnim, err := animations.NewAnimator(clock, flight, config.Fireball.FrameDelay, true)
	if err != nil {
		return nil, fmt.Errorf("create fireball flight: %w", err)
	}
	explodeAnim, err := animations.NewAnimator(clock, explode, config.Fireball.ExplodeDelay, false)
	if err != nil {
		return nil, fmt.Errorf("create fireball explosion: %w", err)
	}

	f := archetypes.Fireball.Spawn(ecs)

	bounds := flight[0].Bounds()
	obj := resolv.NewObject(x, y, float64(bounds.Dx()), float64(bounds.Dy()), tags.ResolvFireball)
	attachObject(ecs, f, obj)

	components.Fireball.SetValue(f, components.FireballData{
		Owner:   owner,
		State:   components.FireballFlying,
		SpeedX:  speed,
		SpeedY:  speed,
		Flight:  flightAnim,
		Explode: explodeAnim,
	})
	components.Sprite.SetValue(f, components.SpriteData{
		Image: flightAnim.Frame(),
		FlipX: speed < 0,
	})

	return f, nil
}
