package systems

import (
	"fmt"

	"github.com/automoto/fireflower/assets/animations"
	"github.com/automoto/fireflower/components"
	cfg "github.com/automoto/fireflower/config"
	"github.com/automoto/fireflower/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FireballController throws fireballs from a launcher, caps how many can be
// live at once and removes the ones that leave the area around it.
type FireballController struct {
	ecs       *ecs.ECS
	Origin    *donburi.Entry
	MaxActive int

	flight  []*ebiten.Image
	explode []*ebiten.Image
}

func NewFireballController(ecs *ecs.ECS, origin *donburi.Entry, flight, explode []*ebiten.Image) (*FireballController, error) {
	if len(flight) == 0 || len(explode) == 0 {
		return nil, fmt.Errorf("fireball controller: %w", animations.ErrNoFrames)
	}
	return &FireballController{
		ecs:       ecs,
		Origin:    origin,
		MaxActive: cfg.Fireball.MaxActive,
		flight:    flight,
		explode:   explode,
	}, nil
}

// Fireballs returns the live fireballs thrown from the origin, exploding
// ones included.
func (c *FireballController) Fireballs() []*donburi.Entry {
	var out []*donburi.Entry
	components.Fireball.Each(c.ecs.World, func(e *donburi.Entry) {
		if components.Fireball.Get(e).Owner == c.Origin {
			out = append(out, e)
		}
	})
	return out
}

func (c *FireballController) Active() int {
	return len(c.Fireballs())
}

// Launch throws a fireball from the origin's leading top corner. It returns
// false without spawning anything when the cap is reached.
func (c *FireballController) Launch(facingRight bool) bool {
	if c.Active() >= c.MaxActive {
		return false
	}

	origin := components.Object.Get(c.Origin).Rect()
	x, speed := origin.Right(), cfg.Fireball.Speed
	if !facingRight {
		x, speed = origin.Left(), -cfg.Fireball.Speed
	}

	if _, err := factory.CreateFireball(c.ecs, c.Origin, x, origin.Top(), speed, c.flight, c.explode); err != nil {
		// Frames were validated by NewFireballController.
		panic(err)
	}
	return true
}

// Update steps the origin's fireballs, then culls those more than a screen
// away from it.
func (c *FireballController) Update() {
	updateFireballs(c.ecs, c.Origin)

	origin := components.Object.Get(c.Origin)
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)

	var toRemove []*donburi.Entry
	for _, e := range c.Fireballs() {
		fb := components.Object.Get(e)
		if fb.X < origin.X-w || fb.X > origin.X+w || fb.Y < origin.Y-h || fb.Y > origin.Y+h {
			toRemove = append(toRemove, e)
		}
	}
	for _, e := range toRemove {
		factory.Destroy(c.ecs, e)
	}
}

// Run is the controller's system: it serves a pending fire request from the
// launcher, then updates.
func (c *FireballController) Run(_ *ecs.ECS) {
	if c.Origin.Valid() {
		launcher := components.Launcher.Get(c.Origin)
		if launcher.WantsFire {
			c.Launch(launcher.FacingRight)
			launcher.WantsFire = false
		}
		c.Update()
	}
}
