package components

import (
	"github.com/automoto/fireflower/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// LevelData owns the static geometry of the loaded level. Simulation
// systems read Obstacles and Floors every tick and never modify them; the
// slices are valid until the level is replaced.
type LevelData struct {
	Map       *leveldata.LevelData
	Obstacles []*resolv.Object
	Floors    []*resolv.Object
	Width     int
	Height    int
}

var Level = donburi.NewComponentType[LevelData]()
