package systems

import (
	"errors"
	"math"

	"github.com/automoto/fireflower/components"
	cfg "github.com/automoto/fireflower/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrNoRiseAnchor is returned when a rise step runs on an item that has no
// block to rise from.
var ErrNoRiseAnchor = errors.New("cannot rise: item has no source block")

type itemHook func(item *components.ItemData, obj *components.ObjectData, geo geometry, now int64)

// itemHooks run before the shared item physics.
var itemHooks = map[cfg.ItemKind]itemHook{
	cfg.StarMan: starManHop,
}

func UpdateItems(ecs *ecs.ECS) {
	geo := levelGeometry(ecs.World)
	now := worldClock(ecs.World).Millis()

	components.Item.Each(ecs.World, func(e *donburi.Entry) {
		item := components.Item.Get(e)
		obj := components.Object.Get(e)

		components.Animation.Get(e).Step(components.Sprite.Get(e))

		if item.Rising() {
			if err := RiseItem(item, obj); err != nil {
				panic(err)
			}
			obj.Update()
			return
		}

		if hook, ok := itemHooks[item.Kind]; ok {
			hook(item, obj, geo, now)
		}
		moveItem(item, obj, geo)

		obj.Update()
	})
}

// RiseItem moves the item one step out of its source block and clears the
// anchor once the item's bottom has reached the block's top.
func RiseItem(item *components.ItemData, obj *components.ObjectData) error {
	if item.RiseFrom == nil {
		return ErrNoRiseAnchor
	}
	top := item.RiseFrom.Y
	if obj.Bottom() > top {
		obj.Y -= cfg.Items.RiseStep
	}
	if obj.Bottom() <= top {
		item.RiseFrom = nil
	}
	return nil
}

func moveItem(item *components.ItemData, obj *components.ObjectData, geo geometry) {
	if item.JumpSpeed != 0 {
		obj.Y += item.JumpSpeed
		item.JumpSpeed += cfg.Items.Gravity
	}
	obj.X += item.SpeedX
	bounceItem(item, obj, geo)
	dropItem(item, obj, geo)
}

// bounceItem turns the item around when it runs into the side of an
// obstacle or a floor segment.
func bounceItem(item *components.ItemData, obj *components.ObjectData, geo geometry) {
	r := obj.Rect()
	for _, o := range geo.obstacles {
		if r.ContainsAny(o.SidePoints()) {
			flipItem(item, obj)
			return
		}
	}
	for _, f := range geo.floors {
		// Edge-aligned contact below the floor's top is missed by the
		// point samples.
		touching := (r.Left() == f.Right() || r.Right() == f.Left()) && r.Top() > f.Top()
		if touching || r.ContainsAny(f.SidePoints()) {
			flipItem(item, obj)
			return
		}
	}
}

// flipItem reverses the drift and pushes the item one step away so the same
// contact does not fire again next tick.
func flipItem(item *components.ItemData, obj *components.ObjectData) {
	item.SpeedX = -item.SpeedX
	obj.X += item.SpeedX
}

// dropItem lets the item fall through gaps in the floor. The fall rate is
// the item's horizontal speed.
func dropItem(item *components.ItemData, obj *components.ObjectData, geo geometry) {
	r := obj.Rect()
	cx := r.CenterX()
	for _, f := range geo.floors {
		if r.Bottom() == f.Top() && f.Left() < cx && cx < f.Right() {
			return
		}
	}
	for _, o := range geo.obstacles {
		if r.ContainsAny(o.TopPoints()) {
			return
		}
	}
	obj.Y += math.Abs(item.SpeedX)
}

// itemOnFloor snaps the item onto the floor it is standing on or has sunk
// into, and reports whether there was one.
func itemOnFloor(obj *components.ObjectData, geo geometry) bool {
	r := obj.Rect()
	cx := r.CenterX()
	for _, f := range geo.floors {
		if r.Bottom() >= f.Top() && f.Left() < cx && cx < f.Right() {
			obj.SetBottom(f.Top())
			return true
		}
	}
	return false
}

// starManHop makes a grounded StarMan jump once per interval.
func starManHop(item *components.ItemData, obj *components.ObjectData, geo geometry, now int64) {
	if !itemOnFloor(obj, geo) {
		return
	}
	elapsed := now - item.LastJump
	if elapsed < 0 {
		elapsed = -elapsed
	}
	if elapsed > cfg.Items.JumpInterval {
		item.JumpSpeed = -math.Abs(item.SpeedX) * cfg.Items.JumpMultiplier
		item.LastJump = now
	}
}
