package systems

import (
	"github.com/automoto/fireflower/components"
	cfg "github.com/automoto/fireflower/config"
	"github.com/automoto/fireflower/systems/factory"
	"github.com/automoto/fireflower/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BumpBlock releases the power-up held by a question block. The item rises
// out of the block's top. It returns nil when the block is already empty.
func BumpBlock(ecs *ecs.ECS, block *donburi.Entry, frames func(cfg.ItemKind) []*ebiten.Image) (*donburi.Entry, error) {
	q := components.QuestionBlock.Get(block)
	if q.Empty {
		return nil, nil
	}

	obj := components.Object.Get(block)
	item, err := factory.CreateItemInBlock(ecs, q.Contents, obj.Object, frames(q.Contents))
	if err != nil {
		return nil, err
	}
	q.Empty = true
	return item, nil
}

// BlockAbove returns the nearest non-empty question block directly over the
// actor's head, if any.
func BlockAbove(ecs *ecs.ECS, actor *donburi.Entry) (*donburi.Entry, bool) {
	r := components.Object.Get(actor).Rect()

	var best *donburi.Entry
	bestBottom := 0.0
	tags.QuestionBlock.Each(ecs.World, func(e *donburi.Entry) {
		if components.QuestionBlock.Get(e).Empty {
			return
		}
		b := components.Object.Get(e).Rect()
		if b.Right() <= r.Left() || b.Left() >= r.Right() || b.Bottom() > r.Top() {
			return
		}
		if best == nil || b.Bottom() > bestBottom {
			best, bestBottom = e, b.Bottom()
		}
	})
	return best, best != nil
}
