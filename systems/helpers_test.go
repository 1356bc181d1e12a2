package systems

import (
	"testing"

	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/systems/factory"
	"github.com/automoto/overworld/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	return ecs.NewECS(donburi.NewWorld())
}

// newTestPlayer builds a player without loading its sheet.
func newTestPlayer(e *ecs.ECS, x, y float64) *donburi.Entry {
	entry := archetypes.Player.Spawn(e)

	w, h := float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(x-w/2, y-h, w, h, tags.ResolvPlayer)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Player.SetValue(entry, components.PlayerData{
		Creature: factory.DefaultCreature(),
		Speed:    cfg.Player.Speed,
	})
	components.Transform.SetValue(entry, components.TransformData{
		Position: dmath.Vec2{X: x, Y: y},
		Depth:    cfg.Player.Depth,
	})
	components.Animation.SetValue(entry, *animations.NewAnimation(animations.South))
	components.Sprite.SetValue(entry, components.SpriteData{
		Frames:      make([]*ebiten.Image, 16),
		FrameWidth:  cfg.Player.FrameWidth,
		FrameHeight: cfg.Player.FrameHeight,
	})
	return entry
}

// hold replaces this frame's input with the given actions held.
func hold(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}
