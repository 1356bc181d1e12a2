package factory

import (
	"fmt"

	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
)

// LoadCreatureSprite cuts a creature's walking sheet into the sprite's frames.
// On error the sprite keeps its previous frames.
func LoadCreatureSprite(sprite *components.SpriteData, creature assets.OverworldSprite) error {
	frames, err := assets.LoadCreatureFrames(
		creature,
		cfg.Animation.SheetColumns,
		cfg.Animation.SheetRows,
		cfg.Player.FrameWidth,
		cfg.Player.FrameHeight,
	)
	if err != nil {
		return fmt.Errorf("failed to load sheet for #%03d: %w", creature.Dex, err)
	}

	sprite.Frames = frames
	sprite.FrameWidth = cfg.Player.FrameWidth
	sprite.FrameHeight = cfg.Player.FrameHeight
	sprite.Sheet = creature
	if sprite.Index >= len(frames) {
		sprite.Index = 0
	}
	return nil
}
