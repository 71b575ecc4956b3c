package systems

import (
	"github.com/automoto/fireflower/components"
	cfg "github.com/automoto/fireflower/config"
	"github.com/automoto/fireflower/systems/factory"
	"github.com/automoto/fireflower/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// CollectItems removes every power-up overlapping the collector and returns
// their kinds.
func CollectItems(ecs *ecs.ECS, collector *donburi.Entry) []cfg.ItemKind {
	var kinds []cfg.ItemKind
	for _, e := range overlapping(ecs, collector, tags.Item, tags.ResolvItem) {
		kinds = append(kinds, components.Item.Get(e).Kind)
		factory.Destroy(ecs, e)
	}
	return kinds
}

// CollectCoins removes every coin overlapping the collector and returns the
// points they were worth.
func CollectCoins(ecs *ecs.ECS, collector *donburi.Entry) int {
	points := 0
	for _, e := range overlapping(ecs, collector, tags.Coin, tags.ResolvCoin) {
		points += components.Coin.Get(e).Points
		factory.Destroy(ecs, e)
	}
	return points
}

// overlapping gathers the tagged entries whose boxes overlap the
// collector's. The space narrows the search when there is one.
func overlapping(ecs *ecs.ECS, collector *donburi.Entry, tag donburi.IComponentType, resolvTag string) []*donburi.Entry {
	obj := components.Object.Get(collector)
	r := obj.Rect()

	var candidates []*donburi.Entry
	if obj.Space != nil {
		if check := obj.Check(0, 0, resolvTag); check != nil {
			for _, o := range check.ObjectsByTags(resolvTag) {
				if e, ok := o.Data.(*donburi.Entry); ok && e != nil && e.Valid() {
					candidates = append(candidates, e)
				}
			}
		}
	} else {
		donburi.NewQuery(filter.Contains(tag)).Each(ecs.World, func(e *donburi.Entry) {
			candidates = append(candidates, e)
		})
	}

	var hits []*donburi.Entry
	seen := make(map[donburi.Entity]struct{}, len(candidates))
	for _, e := range candidates {
		if _, dup := seen[e.Entity()]; dup {
			continue
		}
		seen[e.Entity()] = struct{}{}
		if r.Overlaps(components.Object.Get(e).Rect()) {
			hits = append(hits, e)
		}
	}
	return hits
}
