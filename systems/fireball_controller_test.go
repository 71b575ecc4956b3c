package systems

import (
	"testing"

	"github.com/automoto/fireflower/assets/animations"
	"github.com/automoto/fireflower/components"
	cfg "github.com/automoto/fireflower/config"
	"github.com/automoto/fireflower/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestController(t *testing.T) (*ecs.ECS, *donburi.Entry, *FireballController) {
	t.Helper()
	e, _ := newTestWorld(t, true)
	launcher := factory.CreateLauncher(e, 100, 200)
	c, err := NewFireballController(e, launcher, testFrames(2), testFrames(3))
	require.NoError(t, err)
	return e, launcher, c
}

func TestNewFireballControllerNeedsFrames(t *testing.T) {
	e, _ := newTestWorld(t, false)
	launcher := factory.CreateLauncher(e, 0, 0)

	_, err := NewFireballController(e, launcher, nil, testFrames(1))
	assert.ErrorIs(t, err, animations.ErrNoFrames)
}

func TestLaunchSpawnsAtLeadingEdge(t *testing.T) {
	tests := []struct {
		name        string
		facingRight bool
		wantX       float64
		wantSpeed   float64
	}{
		{"right", true, 116, 5},
		{"left", false, 100, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, c := newTestController(t)

			require.True(t, c.Launch(tt.facingRight))
			fireballs := c.Fireballs()
			require.Len(t, fireballs, 1)

			obj := objectOf(fireballs[0])
			fb := components.Fireball.Get(fireballs[0])
			assert.Equal(t, tt.wantX, obj.X)
			assert.Equal(t, 200.0, obj.Y)
			assert.Equal(t, tt.wantSpeed, fb.SpeedX)
			assert.Equal(t, tt.wantSpeed, fb.SpeedY, "vertical speed starts at the signed throw speed")
			assert.Equal(t, !tt.facingRight, components.Sprite.Get(fireballs[0]).FlipX)
			assert.True(t, fb.Flying())
		})
	}
}

func TestLaunchCapacity(t *testing.T) {
	_, _, c := newTestController(t)

	assert.True(t, c.Launch(true))
	assert.True(t, c.Launch(false))
	assert.False(t, c.Launch(true))
	assert.Equal(t, 2, c.Active())
}

func TestLaunchCapacityCountsExploding(t *testing.T) {
	_, _, c := newTestController(t)

	require.True(t, c.Launch(true))
	require.True(t, c.Launch(true))
	components.Fireball.Get(c.Fireballs()[0]).Detonate()

	assert.False(t, c.Launch(true))
}

func TestControllerIgnoresOtherOwners(t *testing.T) {
	e, _, c := newTestController(t)
	_, err := factory.CreateFireball(e, nil, 0, 0, 5, testFrames(1), testFrames(1))
	require.NoError(t, err)

	assert.Equal(t, 0, c.Active())
	assert.True(t, c.Launch(true))
}

func TestControllerCullsDistantFireballs(t *testing.T) {
	_, launcher, c := newTestController(t)
	require.True(t, c.Launch(true))

	c.Update()
	assert.Equal(t, 1, c.Active(), "still near the launcher")

	objectOf(launcher).X += float64(cfg.C.Width) * 2
	c.Update()
	assert.Equal(t, 0, c.Active())
	assert.True(t, c.Launch(true), "culling frees capacity")
}

func TestControllerCullsVertically(t *testing.T) {
	_, launcher, c := newTestController(t)
	require.True(t, c.Launch(true))

	objectOf(launcher).Y -= float64(cfg.C.Height) * 2
	c.Update()
	assert.Equal(t, 0, c.Active())
}

func TestLeftThrowArcsUpward(t *testing.T) {
	_, _, c := newTestController(t)
	require.True(t, c.Launch(false))
	fb := c.Fireballs()[0]

	c.Update()
	// -5 plus one tick of gravity.
	assert.Equal(t, 197.0, objectOf(fb).Y)
	assert.Equal(t, -3.0, components.Fireball.Get(fb).SpeedY)
}

func TestControllerRunServesFireRequest(t *testing.T) {
	e, launcher, c := newTestController(t)
	data := components.Launcher.Get(launcher)
	data.WantsFire = true
	data.FacingRight = false

	c.Run(e)

	assert.False(t, data.WantsFire)
	require.Equal(t, 1, c.Active())
	assert.Equal(t, -5.0, components.Fireball.Get(c.Fireballs()[0]).SpeedX)
}
