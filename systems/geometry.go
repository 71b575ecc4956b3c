package systems

import (
	"github.com/automoto/fireflower/assets/animations"
	"github.com/automoto/fireflower/components"
	"github.com/automoto/fireflower/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// geometry is a per-tick snapshot of the level's static rectangles.
type geometry struct {
	obstacles []gamemath.Rect
	floors    []gamemath.Rect
}

func levelGeometry(w donburi.World) geometry {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return geometry{}
	}
	level := components.Level.Get(levelEntry)

	geo := geometry{
		obstacles: make([]gamemath.Rect, len(level.Obstacles)),
		floors:    make([]gamemath.Rect, len(level.Floors)),
	}
	for i, o := range level.Obstacles {
		geo.obstacles[i] = components.RectOf(o)
	}
	for i, f := range level.Floors {
		geo.floors[i] = components.RectOf(f)
	}
	return geo
}

func worldClock(w donburi.World) *animations.TickClock {
	return components.Clock.Get(components.Clock.MustFirst(w)).TickClock
}

// UpdateClock advances the simulation clock by one tick. It runs before
// every other system.
func UpdateClock(ecs *ecs.ECS) {
	if e, ok := components.Clock.First(ecs.World); ok {
		components.Clock.Get(e).Tick()
	}
}
