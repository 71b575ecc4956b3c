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

func CreateCoin(ecs *ecs.ECS, x, y float64, frames []*ebiten.Image) (*donburi.Entry, error) {
	animator, err := animations.NewAnimator(clockOf(ecs), frames, config.Coin.FrameDelay, true)
	if err != nil {
		return nil, fmt.Errorf("create coin: %w", err)
	}

	coin := archetypes.Coin.Spawn(ecs)

	bounds := frames[0].Bounds()
	obj := resolv.NewObject(x, y, float64(bounds.Dx()), float64(bounds.Dy()), tags.ResolvCoin)
	attachObject(ecs, coin, obj)

	components.Coin.SetValue(coin, components.CoinData{Points: config.Coin.Points})
	components.Sprite.SetValue(coin, components.SpriteData{Image: animator.Frame()})
	components.Animation.SetValue(coin, components.AnimationData{Animator: animator})

	return coin, nil
}
