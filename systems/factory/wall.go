package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates a solid collision rectangle from a map collision object.
func CreateWall(ecs *ecs.ECS, r assets.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.Width, r.Height, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}

// RemoveWalls deletes every wall entity and its collision object.
func RemoveWalls(ecs *ecs.ECS) {
	var walls []*donburi.Entry
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		walls = append(walls, e)
	})

	spaceEntry, hasSpace := components.Space.First(ecs.World)
	for _, e := range walls {
		if hasSpace {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
		}
		ecs.World.Remove(e.Entity())
	}
}
