package assets

import (
	"fmt"
	"path"
)

// Shinyness selects the palette variant of a creature asset.
type Shinyness int

const (
	Normal Shinyness = iota
	Shiny
)

// Marker is the filename infix for the variant.
func (s Shinyness) Marker() string {
	if s == Shiny {
		return "s"
	}
	return ""
}

// ShinynessOf converts a shiny flag.
func ShinynessOf(shiny bool) Shinyness {
	if shiny {
		return Shiny
	}
	return Normal
}

// BattleSide selects which pose of a battle sprite is used.
type BattleSide int

const (
	Front BattleSide = iota
	Back
)

// Marker is the filename infix for the side. Front is unmarked.
func (b BattleSide) Marker() string {
	if b == Back {
		return "b"
	}
	return ""
}

// Asset is a request for one creature asset. Path resolves it to a
// slash-separated path relative to the asset root.
type Asset interface {
	Prefix() string
	Filename() string
}

// OverworldSprite is the 4x4 walking sheet of a creature.
type OverworldSprite struct {
	Dex   int
	Form  int
	Shiny Shinyness
}

// BattleSprite is the front or back battle image of a creature.
type BattleSprite struct {
	Dex   int
	Form  int
	Shiny Shinyness
	Side  BattleSide
}

// BattleCry is the sound a creature makes when it enters battle.
type BattleCry struct {
	Dex int
}

func (OverworldSprite) Prefix() string { return "graphics/overworld_sprites" }
func (BattleSprite) Prefix() string    { return "graphics/battle_sprites" }
func (BattleCry) Prefix() string       { return "audio/cries" }

func (a OverworldSprite) Filename() string {
	return fmt.Sprintf("%03d%s%s.png", a.Dex, a.Shiny.Marker(), formSuffix(a.Form))
}

func (a BattleSprite) Filename() string {
	return fmt.Sprintf("%03d%s%s%s.png", a.Dex, a.Shiny.Marker(), a.Side.Marker(), formSuffix(a.Form))
}

func (a BattleCry) Filename() string {
	return fmt.Sprintf("%03dCry.wav", a.Dex)
}

// Path resolves an asset request. It does not check that the file exists.
func Path(a Asset) string {
	return path.Join(a.Prefix(), a.Filename())
}

func formSuffix(form int) string {
	if form == 0 {
		return ""
	}
	return fmt.Sprintf("_%d", form)
}
