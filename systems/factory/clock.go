package factory

import (
	"github.com/automoto/fireflower/archetypes"
	"github.com/automoto/fireflower/assets/animations"
	"github.com/automoto/fireflower/components"
	"github.com/yohamta/donburi/ecs"
)

// CreateClock adds the simulation clock shared by every animator.
func CreateClock(ecs *ecs.ECS, stepMillis int64) *animations.TickClock {
	e := archetypes.Clock.Spawn(ecs)
	clock := animations.NewTickClock(stepMillis)
	components.Clock.Set(e, &components.ClockData{TickClock: clock})
	return clock
}

// clockOf returns the world clock. Entities with animations cannot be
// created before it.
func clockOf(ecs *ecs.ECS) *animations.TickClock {
	return components.Clock.Get(components.Clock.MustFirst(ecs.World)).TickClock
}
