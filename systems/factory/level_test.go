package factory

import (
	"testing"

	"github.com/automoto/fireflower/components"
	"github.com/automoto/fireflower/config"
	"github.com/automoto/fireflower/shared/leveldata"
	"github.com/automoto/fireflower/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func count(w donburi.World, c donburi.IComponentType) int {
	n := 0
	donburi.NewQuery(filter.Contains(c)).Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestCreateLevel(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 512, 256, 16, 16)

	data := &leveldata.LevelData{
		Name:   "test",
		Width:  512,
		Height: 256,
		Floors: []leveldata.Box{{X: 0, Y: 200, W: 256, H: 16}, {X: 300, Y: 200, W: 200, H: 16}},
		Obstacles: []leveldata.Box{
			{X: 100, Y: 150, W: 16, H: 16},
		},
		QBlocks: []leveldata.QBlock{
			{Box: leveldata.Box{X: 120, Y: 150, W: 16, H: 16}, Item: "mushroom"},
			{Box: leveldata.Box{X: 136, Y: 150, W: 16, H: 16}},
		},
		EnemySpawns: []leveldata.EnemySpawn{
			{X: 50, Y: 184, Type: "goomba"},
			{X: 70, Y: 176, Type: "koopa"},
			{X: 90, Y: 184, Type: "boo"},
		},
	}

	entry, err := CreateLevel(e, data)
	require.NoError(t, err)
	level := components.Level.Get(entry)

	assert.Len(t, level.Floors, 2)
	assert.Len(t, level.Obstacles, 3, "blocks and question blocks are obstacles")
	assert.Equal(t, 512, level.Width)

	assert.Equal(t, 1, count(e.World, tags.QuestionBlock))
	assert.Equal(t, 2, count(e.World, tags.Goomba), "unknown types become goombas")
	assert.Equal(t, 1, count(e.World, tags.Koopa))

	q, ok := tags.QuestionBlock.First(e.World)
	require.True(t, ok)
	assert.Equal(t, config.Mushroom, components.QuestionBlock.Get(q).Contents)

	for _, f := range level.Floors {
		assert.NotNil(t, f.Space, "geometry joins the space")
	}
}

func TestCreateLevelRejectsUnknownItem(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	_, err := CreateLevel(e, &leveldata.LevelData{
		Name:    "bad",
		QBlocks: []leveldata.QBlock{{Item: "cape"}},
	})
	assert.Error(t, err)
}

func TestDestroyRemovesFromSpace(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 512, 256, 16, 16)
	goomba := CreateGoomba(e, 10, 10)
	obj := components.Object.Get(goomba).Object
	space := obj.Space
	require.NotNil(t, space)

	Destroy(e, goomba)
	assert.False(t, goomba.Valid())
	assert.NotContains(t, space.Objects(), obj)

	Destroy(e, goomba)
}
