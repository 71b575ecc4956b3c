package systems

import (
	"testing"

	"github.com/automoto/fireflower/assets/animations"
	"github.com/automoto/fireflower/components"
	"github.com/automoto/fireflower/shared/leveldata"
	"github.com/automoto/fireflower/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld builds a world with a clock and an empty level. With a space,
// broad-phase queries go through resolv.
func newTestWorld(t *testing.T, withSpace bool) (*ecs.ECS, *animations.TickClock) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	clock := factory.CreateClock(e, 16)
	if withSpace {
		factory.CreateSpace(e, 2048, 1024, 16, 16)
	}
	_, err := factory.CreateLevel(e, &leveldata.LevelData{Name: "test", Width: 2048, Height: 1024})
	require.NoError(t, err)
	return e, clock
}

func testFrames(n int) []*ebiten.Image {
	frames := make([]*ebiten.Image, n)
	for i := range frames {
		frames[i] = ebiten.NewImage(16, 16)
	}
	return frames
}

func objectOf(e *donburi.Entry) *components.ObjectData {
	return components.Object.Get(e)
}
