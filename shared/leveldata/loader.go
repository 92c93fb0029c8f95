package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names recognised in TMX files.
const (
	GroupGround       = "Ground"
	GroupPlayerSpawn  = "PlayerSpawn"
	GroupEnemies      = "Enemies"
	GroupCollectibles = "Collectibles"
)

// Collectible kinds accepted in the Collectibles group.
const (
	KindCoin    = "coin"
	KindPowerUp = "powerup"
	KindLife    = "life"
)

// Load parses a TMX file. It takes an fs.FS so callers can pass an embed.FS
// or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupGround:
			for _, o := range og.Objects {
				level.Ground = append(level.Ground, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case GroupEnemies:
			for _, o := range og.Objects {
				level.Enemies = append(level.Enemies, EnemySpawn{
					X:         o.X,
					Y:         o.Y,
					Name:      o.Name,
					MaxHealth: o.Properties.GetInt("maxHealth"),
				})
			}
		case GroupCollectibles:
			for _, o := range og.Objects {
				kind, err := collectibleKind(o)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: object %d: %w", tmxPath, o.ID, err)
				}
				level.Collectibles = append(level.Collectibles, CollectibleSpawn{
					X:          o.X,
					Y:          o.Y,
					Kind:       kind,
					ScoreValue: o.Properties.GetInt("scoreValue"),
				})
			}
		}
	}

	// Sort spawns by index, then left-to-right
	sort.Slice(level.PlayerSpawns, func(i, j int) bool {
		return level.PlayerSpawns[i].Index < level.PlayerSpawns[j].Index ||
			(level.PlayerSpawns[i].Index == level.PlayerSpawns[j].Index && level.PlayerSpawns[i].X < level.PlayerSpawns[j].X)
	})

	return level, nil
}

func collectibleKind(o *tiled.Object) (string, error) {
	kind := o.Class
	if kind == "" {
		kind = o.Type //nolint:staticcheck // TMX uses type= attribute
	}
	if kind == "" {
		kind = o.Properties.GetString("kind")
	}
	kind = strings.ToLower(kind)

	switch kind {
	case KindCoin, KindPowerUp, KindLife:
		return kind, nil
	case "":
		return KindCoin, nil
	default:
		return "", fmt.Errorf("unknown collectible kind %q", kind)
	}
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
