// Package leveldata parses TMX level files into plain geometry and spawn
// data. It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// Layer names used by the level files.
const (
	LayerFloors       = "walls"
	LayerBlocks       = "blocks"
	LayerQBlocks      = "q-blocks"
	LayerPipes        = "pipes"
	LayerCoins        = "coins"
	LayerEnemySpawns  = "enemy-spawns"
	LayerPlayerSpawns = "player"
)

// LevelData holds everything the simulation needs from one TMX file.
type LevelData struct {
	Name        string
	Floors      []Box
	Obstacles   []Box
	QBlocks     []QBlock
	Coins       []Spawn
	EnemySpawns []EnemySpawn
	PlayerSpawn *Spawn
	Width       int
	Height      int
}

// Box is an axis-aligned rectangle in level coordinates.
type Box struct {
	X, Y, W, H float64
}

// QBlock is a question block; Item is empty for a plain coin block.
type QBlock struct {
	Box
	Item string
}

type Spawn struct {
	X, Y float64
	Name string
}

// EnemySpawn places a goomba or a koopa.
type EnemySpawn struct {
	X, Y float64
	Type string
}
