package factory

import (
	"fmt"
	"math"

	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MapOptions builds loader options from the map configuration.
func MapOptions() assets.MapOptions {
	return assets.MapOptions{
		Scale:           cfg.Map.Scale,
		CollisionLayer:  cfg.Map.CollisionLayer,
		SpawnLayer:      cfg.Map.SpawnLayer,
		PlayerSpawnName: cfg.Map.PlayerSpawnName,
	}
}

// LoadMap loads a map from the current asset source.
func LoadMap(mapPath string) (*assets.Map, error) {
	return assets.NewMapLoader(assets.FS(), MapOptions()).LoadMap(mapPath)
}

// CreateLevel loads the map at mapPath and creates the level entity, the
// collision space and a wall for every collision rectangle.
func CreateLevel(ecs *ecs.ECS, mapPath string) (*donburi.Entry, error) {
	m, err := LoadMap(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create level: %w", err)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		CurrentMap: m,
		Path:       mapPath,
	})

	CreateSpace(ecs, int(math.Ceil(m.Width)), int(math.Ceil(m.Height)), cfg.Map.CellSize, cfg.Map.CellSize)
	for _, r := range m.Solids {
		CreateWall(ecs, r)
	}

	return level, nil
}

// ReplaceMap swaps the level's map and rebuilds the collision space and its
// walls. Objects of non-wall entities are moved into the new space.
func ReplaceMap(ecs *ecs.ECS, level *donburi.Entry, m *assets.Map) {
	levelData := components.Level.Get(level)
	if old := levelData.CurrentMap; old != nil && old.Background != nil && old.Background != m.Background {
		old.Background.Deallocate()
	}
	levelData.CurrentMap = m

	RemoveWalls(ecs)
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		ecs.World.Remove(spaceEntry.Entity())
	}
	spaceEntry := CreateSpace(ecs, int(math.Ceil(m.Width)), int(math.Ceil(m.Height)), cfg.Map.CellSize, cfg.Map.CellSize)
	space := components.Space.Get(spaceEntry)

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		if obj := components.Object.Get(e).Object; obj != nil {
			if obj.Space != nil {
				obj.Space.Remove(obj)
			}
			space.Add(obj)
		}
	})
	for _, r := range m.Solids {
		CreateWall(ecs, r)
	}
}
