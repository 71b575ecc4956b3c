package archetypes

import (
	"github.com/automoto/fireflower/components"
	cfg "github.com/automoto/fireflower/config"
	"github.com/automoto/fireflower/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Floor = newArchetype(
		tags.Floor,
		components.Object,
	)
	Block = newArchetype(
		tags.Block,
		components.Object,
	)
	QuestionBlock = newArchetype(
		tags.Block,
		tags.QuestionBlock,
		components.QuestionBlock,
		components.Object,
	)
	Launcher = newArchetype(
		tags.Launcher,
		components.Launcher,
		components.Object,
	)
	Goomba = newArchetype(
		tags.Goomba,
		components.Enemy,
		components.Object,
	)
	Koopa = newArchetype(
		tags.Koopa,
		components.Enemy,
		components.Object,
	)
	Item = newArchetype(
		tags.Item,
		components.Item,
		components.Object,
		components.Sprite,
		components.Animation,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Coin,
		components.Object,
		components.Sprite,
		components.Animation,
	)
	Fireball = newArchetype(
		tags.Fireball,
		components.Fireball,
		components.Object,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Clock = newArchetype(
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
