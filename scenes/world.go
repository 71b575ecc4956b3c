package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/fireflower/assets"
	cfg "github.com/automoto/fireflower/config"
	"github.com/automoto/fireflower/systems"
	"github.com/automoto/fireflower/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SandboxScene runs one level with a launcher stand-in that throws
// fireballs and bumps question blocks.
type SandboxScene struct {
	ecs        *ecs.ECS
	controller *systems.FireballController
}

// NewSandboxScene builds the world for the level at path inside the
// embedded assets.
func NewSandboxScene(path string) (*SandboxScene, error) {
	data, err := assets.LoadLevel(path)
	if err != nil {
		return nil, err
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	factory.CreateClock(ecs, cfg.C.TickMillis)
	factory.CreateSpace(ecs, data.Width, data.Height, 16, 16)
	factory.CreateCamera(ecs)

	if _, err := factory.CreateLevel(ecs, data); err != nil {
		return nil, err
	}

	coinFrames := assets.CoinFrames()
	for _, c := range data.Coins {
		if _, err := factory.CreateCoin(ecs, c.X, c.Y, coinFrames); err != nil {
			return nil, err
		}
	}

	if data.PlayerSpawn == nil {
		return nil, fmt.Errorf("level %s: no player spawn", data.Name)
	}
	launcher := factory.CreateLauncher(ecs, data.PlayerSpawn.X, data.PlayerSpawn.Y)

	flight, explode := assets.FireballFrames()
	controller, err := systems.NewFireballController(ecs, launcher, flight, explode)
	if err != nil {
		return nil, err
	}

	// Clock first; input before the launcher; the controller after anything
	// that can move enemies or request a launch.
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateLauncher)
	ecs.AddSystem(systems.UpdateItems)
	ecs.AddSystem(systems.UpdateCoins)
	ecs.AddSystem(controller.Run)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawActors)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	log.Printf("loaded level %s: %d floors, %d obstacles, %d question blocks, %d enemies",
		data.Name, len(data.Floors), len(data.Obstacles), len(data.QBlocks), len(data.EnemySpawns))

	return &SandboxScene{ecs: ecs, controller: controller}, nil
}

func (s *SandboxScene) Update() {
	s.ecs.Update()
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	s.ecs.Draw(screen)
}
