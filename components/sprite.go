package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is the image drawn at the entity's collision box this tick.
type SpriteData struct {
	Image *ebiten.Image
	FlipX bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
