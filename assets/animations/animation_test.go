package animations

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrames(n int) []*ebiten.Image {
	frames := make([]*ebiten.Image, n)
	for i := range frames {
		frames[i] = ebiten.NewImage(16, 16)
	}
	return frames
}

func TestNewAnimatorRejectsEmptyFrames(t *testing.T) {
	a, err := NewAnimator(NewTickClock(16), nil, 150, true)
	require.ErrorIs(t, err, ErrNoFrames)
	assert.Nil(t, a)

	assert.Panics(t, func() {
		MustNewAnimator(NewTickClock(16), []*ebiten.Image{}, 150, false)
	})
}

func TestAnimatorWaitsForDelay(t *testing.T) {
	clock := NewTickClock(16)
	frames := testFrames(3)
	a := MustNewAnimator(clock, frames, 150, true)

	clock.Advance(150)
	a.Advance()
	assert.Equal(t, 0, a.Index(), "elapsed must exceed the delay")

	clock.Advance(1)
	a.Advance()
	assert.Equal(t, 1, a.Index())
	assert.Same(t, frames[1], a.Frame())
}

func TestRepeatingAnimatorWrapsAndIsAlwaysDone(t *testing.T) {
	clock := NewTickClock(16)
	a := MustNewAnimator(clock, testFrames(3), 100, true)
	assert.True(t, a.Done())

	for i := 0; i < 3; i++ {
		clock.Advance(101)
		a.Advance()
	}
	assert.Equal(t, 0, a.Index())
	assert.True(t, a.Done())
}

func TestOneShotAnimatorFinishesOnLastFrame(t *testing.T) {
	clock := NewTickClock(16)
	frames := testFrames(4)
	a := MustNewAnimator(clock, frames, 100, false)

	for i := 0; i < len(frames)-1; i++ {
		require.False(t, a.Done())
		clock.Advance(101)
		a.Advance()
	}
	assert.Equal(t, 3, a.Index())
	assert.False(t, a.Done(), "last frame still has to be shown")

	clock.Advance(101)
	a.Advance()
	assert.True(t, a.Done())
	assert.Same(t, frames[3], a.Frame())

	clock.Advance(500)
	a.Advance()
	assert.Equal(t, 3, a.Index())
}

func TestRestartKeepsDone(t *testing.T) {
	clock := NewTickClock(16)
	a := MustNewAnimator(clock, testFrames(2), 10, false)
	for i := 0; i < 2; i++ {
		clock.Advance(11)
		a.Advance()
	}
	require.True(t, a.Done())

	a.Restart()
	assert.Equal(t, 0, a.Index())
	assert.True(t, a.Done())
}

func TestTickClock(t *testing.T) {
	c := NewTickClock(16)
	c.Tick()
	c.Tick()
	c.Advance(4)
	assert.Equal(t, int64(36), c.Millis())
}
