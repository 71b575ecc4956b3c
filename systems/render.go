package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/fireflower/components"
	cfg "github.com/automoto/fireflower/config"
	"github.com/automoto/fireflower/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// view maps world coordinates to the screen and culls what lies outside it.
// A small padding is used to prevent sprites from popping in/out at the edges.
type view struct {
	offX, offY             float64
	minX, maxX, minY, maxY float64
}

func newView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	padding := 64.0
	return view{
		offX: width/2 - camera.Position.X,
		offY: height/2 - camera.Position.Y,
		minX: camera.Position.X - width/2 - padding,
		maxX: camera.Position.X + width/2 + padding,
		minY: camera.Position.Y - height/2 - padding,
		maxY: camera.Position.Y + height/2 + padding,
	}, true
}

func (v view) visible(o *components.ObjectData) bool {
	return !(o.X+o.W < v.minX || o.X > v.maxX || o.Y+o.H < v.minY || o.Y > v.maxY)
}

func (v view) fillRect(screen *ebiten.Image, o *components.ObjectData, c color.Color) {
	if !v.visible(o) {
		return
	}
	vector.DrawFilledRect(screen, float32(o.X+v.offX), float32(o.Y+v.offY), float32(o.W), float32(o.H), c, false)
}

func (v view) strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.StrokeRect(screen, float32(x+v.offX), float32(y+v.offY), float32(w), float32(h), 1, c, false)
}

// DrawLevel renders floors, blocks and question blocks as flat rectangles.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.SkyBlue)
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	tags.Floor.Each(ecs.World, func(e *donburi.Entry) {
		v.fillRect(screen, components.Object.Get(e), cfg.DarkGreen)
	})
	tags.Block.Each(ecs.World, func(e *donburi.Entry) {
		c := cfg.Brown
		if e.HasComponent(components.QuestionBlock) && !components.QuestionBlock.Get(e).Empty {
			c = cfg.Yellow
		}
		v.fillRect(screen, components.Object.Get(e), c)
	})

	if cfg.Debug.DrawGeometry {
		levelEntry, ok := components.Level.First(ecs.World)
		if !ok {
			return
		}
		level := components.Level.Get(levelEntry)
		for _, o := range level.Obstacles {
			v.strokeRect(screen, o.X, o.Y, o.W, o.H, cfg.Red)
		}
		for _, o := range level.Floors {
			v.strokeRect(screen, o.X, o.Y, o.W, o.H, cfg.Blue)
		}
	}
}

// DrawActors renders the launcher and the enemies, which carry no sprites.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	tags.Goomba.Each(ecs.World, func(e *donburi.Entry) {
		v.fillRect(screen, components.Object.Get(e), cfg.Brown)
	})
	tags.Koopa.Each(ecs.World, func(e *donburi.Entry) {
		v.fillRect(screen, components.Object.Get(e), cfg.Green)
	})
	tags.Launcher.Each(ecs.World, func(e *donburi.Entry) {
		v.fillRect(screen, components.Object.Get(e), cfg.Red)
	})
}

// DrawSprites renders every entity with a sprite at its collision box,
// mirrored when the sprite is flipped.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil || !v.visible(o) {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		if sprite.FlipX {
			drawOp.GeoM.Scale(-1, 1)
			drawOp.GeoM.Translate(float64(sprite.Image.Bounds().Dx()), 0)
		}
		drawOp.GeoM.Translate(o.X+v.offX, o.Y+v.offY)

		screen.DrawImage(sprite.Image, drawOp)
	})
}

// DrawDebug prints the launcher's score and live entity counts.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowStats {
		return
	}
	launcherEntry, ok := tags.Launcher.First(ecs.World)
	if !ok {
		return
	}
	launcher := components.Launcher.Get(launcherEntry)

	msg := fmt.Sprintf("TPS: %0.1f\nScore: %d\nFireballs: %d  Items: %d\nCollected: %v",
		ebiten.ActualTPS(),
		launcher.Score,
		donburi.NewQuery(filter.Contains(tags.Fireball)).Count(ecs.World),
		donburi.NewQuery(filter.Contains(tags.Item)).Count(ecs.World),
		launcher.Collected,
	)
	ebitenutil.DebugPrint(screen, msg)
}
