package tags

import "github.com/yohamta/donburi"

var (
	Launcher      = donburi.NewTag().SetName("Launcher")
	Floor         = donburi.NewTag().SetName("Floor")
	Block         = donburi.NewTag().SetName("Block")
	QuestionBlock = donburi.NewTag().SetName("QuestionBlock")
	Item          = donburi.NewTag().SetName("Item")
	Coin          = donburi.NewTag().SetName("Coin")
	Fireball      = donburi.NewTag().SetName("Fireball")
	Goomba        = donburi.NewTag().SetName("Goomba")
	Koopa         = donburi.NewTag().SetName("Koopa")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvFloor    = "floor"
	ResolvLauncher = "Launcher"
	ResolvEnemy    = "Enemy"
	ResolvGoomba   = "Goomba"
	ResolvKoopa    = "Koopa"
	ResolvItem     = "Item"
	ResolvCoin     = "Coin"
	ResolvFireball = "Fireball"
)
