package factory

import (
	"log"

	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// DefaultCreature is the creature the player starts as.
func DefaultCreature() assets.OverworldSprite {
	return assets.OverworldSprite{
		Dex:   cfg.Player.Dex,
		Form:  cfg.Player.Form,
		Shiny: assets.ShinynessOf(cfg.Player.Shiny),
	}
}

// CreatePlayer creates the player standing at x, y (the feet) facing the
// given direction. A missing sheet is logged and leaves the player invisible.
func CreatePlayer(ecs *ecs.ECS, x, y float64, creature assets.OverworldSprite, facing animations.Direction) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(x-w/2, y-h, w, h, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Player.SetValue(player, components.PlayerData{
		Creature: creature,
		Speed:    cfg.Player.Speed,
	})
	components.Transform.SetValue(player, components.TransformData{
		Position: math.Vec2{X: x, Y: y},
		Depth:    cfg.Player.Depth,
	})

	anim := animations.NewAnimation(facing)
	components.Animation.SetValue(player, *anim)

	sprite := components.SpriteData{Index: anim.First}
	if err := LoadCreatureSprite(&sprite, creature); err != nil {
		log.Printf("Warning: %v", err)
	}
	components.Sprite.SetValue(player, sprite)

	return player
}
