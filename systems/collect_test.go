package systems

import (
	"testing"

	"github.com/automoto/fireflower/components"
	cfg "github.com/automoto/fireflower/config"
	"github.com/automoto/fireflower/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectItems(t *testing.T) {
	for _, withSpace := range []bool{false, true} {
		e, _ := newTestWorld(t, withSpace)
		launcher := factory.CreateLauncher(e, 100, 100)

		near, err := factory.CreateItem(e, cfg.ExtraLife, 108, 110, testFrames(1), nil)
		require.NoError(t, err)
		far, err := factory.CreateItem(e, cfg.Mushroom, 400, 110, testFrames(1), nil)
		require.NoError(t, err)

		kinds := CollectItems(e, launcher)
		assert.Equal(t, []cfg.ItemKind{cfg.ExtraLife}, kinds)
		assert.False(t, near.Valid())
		assert.True(t, far.Valid())
	}
}

func TestCollectCoins(t *testing.T) {
	e, _ := newTestWorld(t, true)
	launcher := factory.CreateLauncher(e, 100, 100)
	for _, x := range []float64{96, 110, 300} {
		_, err := factory.CreateCoin(e, x, 100, testFrames(2))
		require.NoError(t, err)
	}

	assert.Equal(t, 2*cfg.Coin.Points, CollectCoins(e, launcher))
	assert.Equal(t, 0, CollectCoins(e, launcher))
}

func TestPickUpRecordsScore(t *testing.T) {
	e, _ := newTestWorld(t, true)
	launcher := factory.CreateLauncher(e, 100, 100)
	_, err := factory.CreateItem(e, cfg.StarMan, 100, 100, testFrames(2), nil)
	require.NoError(t, err)
	_, err = factory.CreateCoin(e, 100, 116, testFrames(1))
	require.NoError(t, err)

	PickUp(e, launcher)

	data := components.Launcher.Get(launcher)
	assert.Equal(t, []string{"starman"}, data.Collected)
	assert.Equal(t, cfg.Coin.Points, data.Score)
}

func TestBumpBlockReleasesItemOnce(t *testing.T) {
	e, _ := newTestWorld(t, false)
	block := factory.CreateQuestionBlock(e, 0, 100, 16, 16, cfg.Mushroom)
	frames := func(cfg.ItemKind) []*ebiten.Image { return testFrames(1) }

	item, err := BumpBlock(e, block, frames)
	require.NoError(t, err)
	require.NotNil(t, item)

	data := components.Item.Get(item)
	assert.Equal(t, cfg.Mushroom, data.Kind)
	assert.Same(t, objectOf(block).Object, data.RiseFrom)
	assert.True(t, components.QuestionBlock.Get(block).Empty)

	again, err := BumpBlock(e, block, frames)
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestBumpBlockMissingFrames(t *testing.T) {
	e, _ := newTestWorld(t, false)
	block := factory.CreateQuestionBlock(e, 0, 100, 16, 16, cfg.StarMan)

	_, err := BumpBlock(e, block, func(cfg.ItemKind) []*ebiten.Image { return nil })
	assert.Error(t, err)
	assert.False(t, components.QuestionBlock.Get(block).Empty)
}

func TestBlockAbove(t *testing.T) {
	e, _ := newTestWorld(t, false)
	launcher := factory.CreateLauncher(e, 0, 120)
	high := factory.CreateQuestionBlock(e, 0, 40, 16, 16, cfg.Mushroom)
	low := factory.CreateQuestionBlock(e, 4, 100, 16, 16, cfg.FireFlower)
	factory.CreateQuestionBlock(e, 100, 100, 16, 16, cfg.StarMan)

	got, ok := BlockAbove(e, launcher)
	require.True(t, ok)
	assert.Equal(t, low.Entity(), got.Entity(), "nearest block wins")

	components.QuestionBlock.Get(low).Empty = true
	got, ok = BlockAbove(e, launcher)
	require.True(t, ok)
	assert.Equal(t, high.Entity(), got.Entity())

	components.QuestionBlock.Get(high).Empty = true
	_, ok = BlockAbove(e, launcher)
	assert.False(t, ok)
}

func TestUpdateCoinsSpins(t *testing.T) {
	e, clock := newTestWorld(t, false)
	frames := testFrames(3)
	coin, err := factory.CreateCoin(e, 0, 0, frames)
	require.NoError(t, err)

	clock.Advance(cfg.Coin.FrameDelay + 1)
	UpdateCoins(e)
	assert.Same(t, frames[1], components.Sprite.Get(coin).Image)
}

func TestMoveLauncherLandsAndWalks(t *testing.T) {
	e, _ := newTestWorld(t, true)
	factory.CreateFloor(e, 0, 100, 200, 16)
	factory.CreateBlock(e, 40, 68, 16, 32)
	launcher := factory.CreateLauncher(e, 10, 60)
	obj := objectOf(launcher)

	moveLauncher(obj, 0)
	assert.Equal(t, 64.0, obj.Y)
	moveLauncher(obj, 0)
	assert.Equal(t, 100.0, obj.Bottom(), "snapped onto the floor")
	moveLauncher(obj, 0)
	assert.Equal(t, 100.0, obj.Bottom())

	for i := 0; i < 10; i++ {
		moveLauncher(obj, cfg.Launcher.WalkSpeed)
	}
	assert.Equal(t, 22.0, obj.X, "stopped short of the block")
}

func TestClampCamera(t *testing.T) {
	assert.Equal(t, 400.0, clampCamera(10, 800, 1600))
	assert.Equal(t, 1200.0, clampCamera(1500, 800, 1600))
	assert.Equal(t, 700.0, clampCamera(700, 800, 1600))
	assert.Equal(t, 300.0, clampCamera(700, 800, 600))
}
