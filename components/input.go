package components

import (
	cfg "github.com/automoto/fireflower/config"
	"github.com/yohamta/donburi"
)

// InputData holds double-buffered action state for edge detection.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

// JustPressed reports a press that started this tick.
func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
