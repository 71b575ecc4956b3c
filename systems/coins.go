package systems

import (
	"github.com/automoto/fireflower/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCoins spins the coins.
func UpdateCoins(ecs *ecs.ECS) {
	components.Coin.Each(ecs.World, func(e *donburi.Entry) {
		components.Animation.Get(e).Step(components.Sprite.Get(e))
	})
}
