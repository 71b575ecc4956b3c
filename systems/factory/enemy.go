package factory

import (
	"github.com/automoto/fireflower/archetypes"
	"github.com/automoto/fireflower/components"
	"github.com/automoto/fireflower/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const enemySize = 16

func CreateGoomba(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	goomba := archetypes.Goomba.Spawn(ecs)
	obj := resolv.NewObject(x, y, enemySize, enemySize, tags.ResolvEnemy, tags.ResolvGoomba)
	attachObject(ecs, goomba, obj)
	components.Enemy.SetValue(goomba, components.EnemyData{Kind: components.Goomba})
	return goomba
}

func CreateKoopa(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	koopa := archetypes.Koopa.Spawn(ecs)
	obj := resolv.NewObject(x, y, enemySize, enemySize*1.5, tags.ResolvEnemy, tags.ResolvKoopa)
	attachObject(ecs, koopa, obj)
	components.Enemy.SetValue(koopa, components.EnemyData{Kind: components.Koopa})
	return koopa
}

// CreateEnemy spawns by level type name; anything but "koopa" is a goomba.
func CreateEnemy(ecs *ecs.ECS, x, y float64, enemyType string) *donburi.Entry {
	if enemyType == components.Koopa.String() {
		return CreateKoopa(ecs, x, y)
	}
	return CreateGoomba(ecs, x, y)
}
