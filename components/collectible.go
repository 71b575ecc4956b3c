package components

import (
	"github.com/automoto/fireflower/config"
	"github.com/yohamta/donburi"
)

type CoinData struct {
	Points int
}

var Coin = donburi.NewComponentType[CoinData]()

// QuestionBlockData is the power-up held by a question block. Empty once
// the block has been bumped.
type QuestionBlockData struct {
	Contents config.ItemKind
	Empty    bool
}

var QuestionBlock = donburi.NewComponentType[QuestionBlockData]()
