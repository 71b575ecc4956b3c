package components

import (
	"github.com/yohamta/donburi"
)

type EnemyKind int

const (
	Goomba EnemyKind = iota
	Koopa
)

func (k EnemyKind) String() string {
	if k == Koopa {
		return "koopa"
	}
	return "goomba"
}

type EnemyData struct {
	Kind EnemyKind
}

var Enemy = donburi.NewComponentType[EnemyData]()
