package factory

import (
	"fmt"

	"github.com/automoto/fireflower/archetypes"
	"github.com/automoto/fireflower/components"
	"github.com/automoto/fireflower/config"
	"github.com/automoto/fireflower/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel adds the level entity and builds its floors, obstacles,
// question blocks and enemies. The space must already exist for the
// geometry to take part in broad-phase queries.
func CreateLevel(ecs *ecs.ECS, data *leveldata.LevelData) (*donburi.Entry, error) {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Map:    data,
		Width:  data.Width,
		Height: data.Height,
	})

	for _, f := range data.Floors {
		CreateFloor(ecs, f.X, f.Y, f.W, f.H)
	}
	for _, o := range data.Obstacles {
		CreateBlock(ecs, o.X, o.Y, o.W, o.H)
	}
	for _, q := range data.QBlocks {
		if q.Item == "" {
			CreateBlock(ecs, q.X, q.Y, q.W, q.H)
			continue
		}
		kind, err := config.ParseItemKind(q.Item)
		if err != nil {
			return nil, fmt.Errorf("level %s: question block at %.0f,%.0f: %w", data.Name, q.X, q.Y, err)
		}
		CreateQuestionBlock(ecs, q.X, q.Y, q.W, q.H, kind)
	}
	for _, s := range data.EnemySpawns {
		CreateEnemy(ecs, s.X, s.Y, s.Type)
	}

	return level, nil
}
