package systems

import (
	"math"

	"github.com/automoto/fireflower/components"
	cfg "github.com/automoto/fireflower/config"
	"github.com/automoto/fireflower/systems/factory"
	"github.com/automoto/fireflower/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// updateFireballs steps the fireballs thrown by owner, or all of them when
// owner is nil. Killed enemies and finished fireballs are removed after the
// pass.
func updateFireballs(ecs *ecs.ECS, owner *donburi.Entry) {
	geo := levelGeometry(ecs.World)
	killed := make(map[donburi.Entity]*donburi.Entry)
	var toRemove []*donburi.Entry

	components.Fireball.Each(ecs.World, func(e *donburi.Entry) {
		fb := components.Fireball.Get(e)
		if owner != nil && fb.Owner != owner {
			return
		}
		obj := components.Object.Get(e)
		sprite := components.Sprite.Get(e)

		switch fb.State {
		case components.FireballFlying:
			obj.X += fb.SpeedX
			applyFireballGravity(fb, obj, geo)
			fb.Flight.Advance()
			sprite.Image = fb.Flight.Frame()
			obj.Update()

			checkFireballWalls(fb, obj, geo)
			checkFireballEnemies(ecs, fb, obj, killed)
		case components.FireballExploding:
			if fb.Explode.Done() {
				fb.State = components.FireballRemoved
				toRemove = append(toRemove, e)
				return
			}
			fb.Explode.Advance()
			sprite.Image = fb.Explode.Frame()
		case components.FireballRemoved:
			toRemove = append(toRemove, e)
		}
	})

	for _, enemy := range killed {
		factory.Destroy(ecs, enemy)
	}
	for _, e := range toRemove {
		factory.Destroy(ecs, e)
	}
}

// applyFireballGravity bounces the fireball off anything it lands on and
// otherwise accelerates it downward.
func applyFireballGravity(fb *components.FireballData, obj *components.ObjectData, geo geometry) {
	r := obj.Rect()
	grounded := false
	for _, o := range geo.obstacles {
		if r.ContainsAny(o.TopPoints()) {
			grounded = true
			break
		}
	}
	if !grounded {
		// Unlike items, any floor counts regardless of horizontal span.
		for _, f := range geo.floors {
			if r.Bottom() >= f.Top() {
				grounded = true
				break
			}
		}
	}

	if grounded {
		fb.SpeedY = -math.Abs(fb.SpeedY)
	} else {
		fb.SpeedY += cfg.Fireball.Gravity
	}
	obj.Y += fb.SpeedY
}

func checkFireballWalls(fb *components.FireballData, obj *components.ObjectData, geo geometry) {
	r := obj.Rect()
	for _, o := range geo.obstacles {
		if r.ContainsAny(o.SidePoints()) {
			fb.Detonate()
			return
		}
	}
	for _, f := range geo.floors {
		if r.ContainsAny(f.SidePoints()) {
			fb.Detonate()
			return
		}
	}
}

// checkFireballEnemies kills the first enemy the fireball overlaps. Goombas
// are checked before koopas; enemies already killed this pass are skipped.
func checkFireballEnemies(ecs *ecs.ECS, fb *components.FireballData, obj *components.ObjectData, killed map[donburi.Entity]*donburi.Entry) {
	r := obj.Rect()
	for _, enemy := range enemiesNear(ecs, obj) {
		if _, dead := killed[enemy.Entity()]; dead {
			continue
		}
		if r.Overlaps(components.Object.Get(enemy).Rect()) {
			killed[enemy.Entity()] = enemy
			fb.Detonate()
			return
		}
	}
}

// enemiesNear returns the enemies sharing space cells with obj, goombas
// first. Without a space every enemy is returned.
func enemiesNear(ecs *ecs.ECS, obj *components.ObjectData) []*donburi.Entry {
	var enemies []*donburi.Entry

	if obj.Space == nil {
		tags.Goomba.Each(ecs.World, func(e *donburi.Entry) { enemies = append(enemies, e) })
		tags.Koopa.Each(ecs.World, func(e *donburi.Entry) { enemies = append(enemies, e) })
		return enemies
	}

	check := obj.Check(0, 0, tags.ResolvGoomba, tags.ResolvKoopa)
	if check == nil {
		return nil
	}
	for _, tag := range []string{tags.ResolvGoomba, tags.ResolvKoopa} {
		for _, o := range check.ObjectsByTags(tag) {
			if e, ok := o.Data.(*donburi.Entry); ok && e != nil && e.Valid() {
				enemies = append(enemies, e)
			}
		}
	}
	return enemies
}
