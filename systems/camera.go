package systems

import (
	"math"

	"github.com/automoto/fireflower/components"
	"github.com/automoto/fireflower/config"
	"github.com/automoto/fireflower/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	launcherEntry, ok := tags.Launcher.First(e.World)
	if !ok {
		return
	}
	r := components.Object.Get(launcherEntry).Rect()

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	targetX := r.X + r.W/2
	targetY := r.Y + r.H/2

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)

	// Keep the level filling the screen; a level smaller than the screen is centred.
	targetX = clampCamera(targetX, screenWidth, float64(level.Width))
	targetY = clampCamera(targetY, screenHeight, float64(level.Height))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

func clampCamera(target, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, target))
}
