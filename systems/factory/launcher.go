package factory

import (
	"github.com/automoto/fireflower/archetypes"
	"github.com/automoto/fireflower/components"
	"github.com/automoto/fireflower/config"
	"github.com/automoto/fireflower/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLauncher adds the actor fireballs are thrown from.
func CreateLauncher(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	launcher := archetypes.Launcher.Spawn(ecs)
	obj := resolv.NewObject(x, y, config.Launcher.Width, config.Launcher.Height, tags.ResolvLauncher)
	attachObject(ecs, launcher, obj)
	components.Launcher.SetValue(launcher, components.LauncherData{FacingRight: true})
	return launcher
}
