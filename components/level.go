package components

import (
	"github.com/automoto/overworld/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentMap *assets.Map
	Path       string
}

var Level = donburi.NewComponentType[LevelData]()
