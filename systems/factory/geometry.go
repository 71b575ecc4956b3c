package factory

import (
	"github.com/automoto/fireflower/archetypes"
	"github.com/automoto/fireflower/components"
	"github.com/automoto/fireflower/config"
	"github.com/automoto/fireflower/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFloor adds a ground segment. Items rest on floors and fall through
// the gaps between them.
func CreateFloor(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	floor := archetypes.Floor.Spawn(ecs)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvFloor)
	attachObject(ecs, floor, obj)
	registerGeometry(ecs, func(l *components.LevelData) { l.Floors = append(l.Floors, obj) })
	return floor
}

// CreateBlock adds a solid obstacle such as a brick or a pipe.
func CreateBlock(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	block := archetypes.Block.Spawn(ecs)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	attachObject(ecs, block, obj)
	registerGeometry(ecs, func(l *components.LevelData) { l.Obstacles = append(l.Obstacles, obj) })
	return block
}

// CreateQuestionBlock adds an obstacle holding a power-up.
func CreateQuestionBlock(ecs *ecs.ECS, x, y, w, h float64, contents config.ItemKind) *donburi.Entry {
	block := archetypes.QuestionBlock.Spawn(ecs)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	attachObject(ecs, block, obj)
	components.QuestionBlock.SetValue(block, components.QuestionBlockData{Contents: contents})
	registerGeometry(ecs, func(l *components.LevelData) { l.Obstacles = append(l.Obstacles, obj) })
	return block
}

func registerGeometry(ecs *ecs.ECS, add func(l *components.LevelData)) {
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		add(components.Level.Get(levelEntry))
	}
}
