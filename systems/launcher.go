package systems

import (
	"log"
	"math"

	"github.com/automoto/fireflower/assets"
	"github.com/automoto/fireflower/components"
	cfg "github.com/automoto/fireflower/config"
	"github.com/automoto/fireflower/shared/gamemath"
	"github.com/automoto/fireflower/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLauncher drives the launcher stand-in from input: walking, facing,
// fire requests, block bumps and pickups. Must run AFTER UpdateInput.
func UpdateLauncher(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Launcher.Each(ecs.World, func(e *donburi.Entry) {
		launcher := components.Launcher.Get(e)
		obj := components.Object.Get(e)

		dx := 0.0
		if input.Pressed(cfg.ActionMoveLeft) {
			dx -= cfg.Launcher.WalkSpeed
			launcher.FacingRight = false
		}
		if input.Pressed(cfg.ActionMoveRight) {
			dx += cfg.Launcher.WalkSpeed
			launcher.FacingRight = true
		}
		moveLauncher(obj, dx)

		if input.JustPressed(cfg.ActionFire) {
			launcher.WantsFire = true
		}
		if input.JustPressed(cfg.ActionBumpBlock) {
			if block, ok := BlockAbove(ecs, e); ok {
				if _, err := BumpBlock(ecs, block, assets.ItemFrames); err != nil {
					log.Printf("bump block: %v", err)
				}
			}
		}

		PickUp(ecs, e)
	})
}

// PickUp collects the items and coins touching the launcher.
func PickUp(ecs *ecs.ECS, e *donburi.Entry) {
	launcher := components.Launcher.Get(e)
	for _, kind := range CollectItems(ecs, e) {
		launcher.Collected = append(launcher.Collected, kind.String())
	}
	launcher.Score += CollectCoins(ecs, e)
}

// moveLauncher walks the launcher and lets it fall until it lands on
// something solid. The space only narrows the candidates; contact is decided
// on the exact boxes.
func moveLauncher(obj *components.ObjectData, dx float64) {
	if dx != 0 && len(blockers(obj, dx, 0)) == 0 {
		obj.X += dx
	}

	dy := cfg.Launcher.FallSpeed
	if below := blockers(obj, 0, dy); len(below) > 0 {
		top := math.Inf(1)
		for _, r := range below {
			top = math.Min(top, r.Top())
		}
		obj.SetBottom(math.Max(top, obj.Bottom()))
	} else {
		obj.Y += dy
	}
	obj.Update()
}

// blockers returns the solid boxes obj would overlap after moving by dx, dy.
func blockers(obj *components.ObjectData, dx, dy float64) []gamemath.Rect {
	check := obj.Check(dx, dy, tags.ResolvSolid, tags.ResolvFloor)
	if check == nil {
		return nil
	}
	next := obj.Rect().Translate(dx, dy)
	var hits []gamemath.Rect
	for _, o := range check.Objects {
		if r := components.RectOf(o); next.Overlaps(r) {
			hits = append(hits, r)
		}
	}
	return hits
}
