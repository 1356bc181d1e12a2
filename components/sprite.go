package components

import (
	"github.com/automoto/overworld/assets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is a sheet cut into frames and the frame on display.
type SpriteData struct {
	Frames      []*ebiten.Image
	Index       int
	FrameWidth  int
	FrameHeight int
	Sheet       assets.OverworldSprite
}

// Current returns the displayed frame, or nil when the sheet is not loaded.
func (s *SpriteData) Current() *ebiten.Image {
	if s.Index < 0 || s.Index >= len(s.Frames) {
		return nil
	}
	return s.Frames[s.Index]
}

var Sprite = donburi.NewComponentType[SpriteData]()
