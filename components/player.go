package components

import (
	"github.com/automoto/overworld/assets"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Creature assets.OverworldSprite
	Speed    float64 // world units per second
}

var Player = donburi.NewComponentType[PlayerData]()
