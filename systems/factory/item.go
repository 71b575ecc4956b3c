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

// CreateItem spawns a power-up with its top-left corner at x, y. The collision
// box takes the size of the first frame. When riseFrom is non-nil the item
// emerges from that block before normal physics apply.
func CreateItem(ecs *ecs.ECS, kind config.ItemKind, x, y float64, frames []*ebiten.Image, riseFrom *resolv.Object) (*donburi.Entry, error) {
	preset, ok := config.Items.Presets[kind]
	if !ok {
		return nil, fmt.Errorf("create item: no preset for %q", kind)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("create item %s: %w", kind, animations.ErrNoFrames)
	}

	clock := clockOf(ecs)
	var animator *animations.Animator
	if preset.Animated {
		var err error
		animator, err = animations.NewAnimator(clock, frames, config.Items.FrameDelay, true)
		if err != nil {
			return nil, fmt.Errorf("create item %s: %w", kind, err)
		}
	}

	item := archetypes.Item.Spawn(ecs)

	bounds := frames[0].Bounds()
	obj := resolv.NewObject(x, y, float64(bounds.Dx()), float64(bounds.Dy()), tags.ResolvItem)
	attachObject(ecs, item, obj)

	components.Item.SetValue(item, components.ItemData{
		Kind:     kind,
		SpeedX:   preset.Speed,
		RiseFrom: riseFrom,
		LastJump: clock.Millis(),
	})
	components.Sprite.SetValue(item, components.SpriteData{Image: frames[0]})
	components.Animation.SetValue(item, components.AnimationData{Animator: animator})

	return item, nil
}

// CreateItemInBlock spawns a power-up hidden inside block, bottom-aligned
// with it, so that it rises out of the block's top.
func CreateItemInBlock(ecs *ecs.ECS, kind config.ItemKind, block *resolv.Object, frames []*ebiten.Image) (*donburi.Entry, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("create item %s: %w", kind, animations.ErrNoFrames)
	}
	h := float64(frames[0].Bounds().Dy())
	return CreateItem(ecs, kind, block.X, block.Y+block.H-h, frames, block)
}
