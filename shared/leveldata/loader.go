package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// DefaultEnemyType is used when an enemy spawn has no e_type property.
const DefaultEnemyType = "goomba"

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case LayerFloors:
			for _, o := range og.Objects {
				data.Floors = append(data.Floors, boxOf(o))
			}
		case LayerBlocks, LayerPipes:
			for _, o := range og.Objects {
				data.Obstacles = append(data.Obstacles, boxOf(o))
			}
		case LayerQBlocks:
			for _, o := range og.Objects {
				data.QBlocks = append(data.QBlocks, QBlock{
					Box:  boxOf(o),
					Item: o.Properties.GetString("item"),
				})
			}
		case LayerCoins:
			for _, o := range og.Objects {
				data.Coins = append(data.Coins, Spawn{X: o.X, Y: o.Y, Name: o.Name})
			}
		case LayerEnemySpawns:
			for _, o := range og.Objects {
				enemyType := o.Properties.GetString("e_type")
				if enemyType == "" {
					enemyType = DefaultEnemyType
				}
				data.EnemySpawns = append(data.EnemySpawns, EnemySpawn{
					X:    o.X,
					Y:    o.Y,
					Type: enemyType,
				})
			}
		case LayerPlayerSpawns:
			for _, o := range og.Objects {
				if data.PlayerSpawn == nil || o.Name == "player" {
					data.PlayerSpawn = &Spawn{X: o.X, Y: o.Y, Name: o.Name}
				}
			}
		}
	}

	// Spawn left-to-right so enemy order is stable across loads
	sort.SliceStable(data.EnemySpawns, func(i, j int) bool {
		return data.EnemySpawns[i].X < data.EnemySpawns[j].X
	})

	return data, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*LevelData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		data, err := Load(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

func boxOf(o *tiled.Object) Box {
	return Box{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}
