package components

import (
	"github.com/automoto/fireflower/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ItemData struct {
	Kind      config.ItemKind
	SpeedX    float64 // signed horizontal drift, negated on every bounce
	JumpSpeed float64 // vertical impulse, decays toward zero

	// RiseFrom is the block the item is emerging from. While set, only the
	// rise step runs.
	RiseFrom *resolv.Object

	LastJump int64 // ms timestamp of the last StarMan hop
}

// Rising reports whether the item is still emerging from its block.
func (i *ItemData) Rising() bool {
	return i.RiseFrom != nil
}

var Item = donburi.NewComponentType[ItemData]()
