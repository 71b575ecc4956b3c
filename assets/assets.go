package assets

import (
	"embed"
	"fmt"
	"image/color"

	"github.com/automoto/fireflower/config"
	"github.com/automoto/fireflower/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Sprite set keys that are not item kinds.
const (
	SpriteFireball        = "fireball"
	SpriteFireballExplode = "fireball-explode"
	SpriteCoin            = "coin"
)

type shape int

const (
	shapeBox shape = iota
	shapeDisc
	shapeRing
)

type spriteDef struct {
	Width, Height int
	Shape         shape
	Colors        []color.RGBA // one frame per color
}

// The game ships without artwork; every frame is drawn from these
// definitions the first time it is requested.
var spriteDefs = map[string]spriteDef{
	config.Mushroom.String():   {16, 16, shapeDisc, []color.RGBA{config.Red}},
	config.ExtraLife.String():  {16, 16, shapeDisc, []color.RGBA{config.Green}},
	config.FireFlower.String(): {16, 16, shapeBox, []color.RGBA{config.Orange, config.Red, config.Yellow, config.White}},
	config.StarMan.String():    {16, 16, shapeDisc, []color.RGBA{config.Yellow, config.Orange, config.White, config.Orange}},
	SpriteCoin:                 {16, 16, shapeDisc, []color.RGBA{config.Yellow, config.Orange, config.Brown, config.Orange}},
	SpriteFireball:             {8, 8, shapeDisc, []color.RGBA{config.Orange, config.Red, config.Yellow, config.Red}},
	SpriteFireballExplode:      {16, 16, shapeRing, []color.RGBA{config.Yellow, config.Orange, config.Red}},
}

type SpriteLoader struct {
	cache map[string][]*ebiten.Image
}

func NewSpriteLoader() *SpriteLoader {
	return &SpriteLoader{
		cache: make(map[string][]*ebiten.Image),
	}
}

var spriteLoader = NewSpriteLoader()

// MustGetFrames returns the cached frames of a sprite set, drawing them on
// first use. It panics on an unknown key.
func (l *SpriteLoader) MustGetFrames(key string) []*ebiten.Image {
	if frames, ok := l.cache[key]; ok {
		return frames
	}

	def, ok := spriteDefs[key]
	if !ok {
		panic(fmt.Sprintf("no sprite definition for %q", key))
	}

	frames := make([]*ebiten.Image, len(def.Colors))
	for i, c := range def.Colors {
		frames[i] = drawFrame(def, c)
	}
	l.cache[key] = frames

	return frames
}

func drawFrame(def spriteDef, c color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(def.Width, def.Height)
	w, h := float32(def.Width), float32(def.Height)
	switch def.Shape {
	case shapeBox:
		img.Fill(c)
	case shapeDisc:
		vector.DrawFilledCircle(img, w/2, h/2, min(w, h)/2, c, true)
	case shapeRing:
		vector.StrokeCircle(img, w/2, h/2, min(w, h)/2-1, 2, c, true)
	}
	return img
}

// ItemFrames returns the frames of a power-up. Static items use only the
// first frame.
func ItemFrames(kind config.ItemKind) []*ebiten.Image {
	return spriteLoader.MustGetFrames(kind.String())
}

// FireballFrames returns the flight loop and the explosion sequence, scaled
// to the configured fireball size.
func FireballFrames() (flight, explode []*ebiten.Image) {
	return scaled(spriteLoader.MustGetFrames(SpriteFireball)),
		scaled(spriteLoader.MustGetFrames(SpriteFireballExplode))
}

func CoinFrames() []*ebiten.Image {
	return spriteLoader.MustGetFrames(SpriteCoin)
}

func scaled(frames []*ebiten.Image) []*ebiten.Image {
	size := config.Fireball.Size
	out := make([]*ebiten.Image, len(frames))
	for i, f := range frames {
		if f.Bounds().Dx() == size && f.Bounds().Dy() == size {
			out[i] = f
			continue
		}
		img := ebiten.NewImage(size, size)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(size)/float64(f.Bounds().Dx()), float64(size)/float64(f.Bounds().Dy()))
		img.DrawImage(f, op)
		out[i] = img
	}
	return out
}

// LoadLevel parses an embedded TMX level.
func LoadLevel(path string) (*leveldata.LevelData, error) {
	return leveldata.Load(assetFS, path)
}
