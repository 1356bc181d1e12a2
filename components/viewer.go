package components

import (
	"github.com/automoto/overworld/assets"
	"github.com/yohamta/donburi"
)

// ViewerData is the creature selected in the creature viewer.
type ViewerData struct {
	Dex    int
	Form   int
	Shiny  bool
	Status string // last action result shown in the panel
	Dirty  bool   // panel labels need refreshing
}

// Overworld is the walking sheet for the selection.
func (v *ViewerData) Overworld() assets.OverworldSprite {
	return assets.OverworldSprite{Dex: v.Dex, Form: v.Form, Shiny: assets.ShinynessOf(v.Shiny)}
}

// Battle is the battle sprite for the selection on the given side.
func (v *ViewerData) Battle(side assets.BattleSide) assets.BattleSprite {
	return assets.BattleSprite{Dex: v.Dex, Form: v.Form, Shiny: assets.ShinynessOf(v.Shiny), Side: side}
}

// Cry is the battle cry for the selection.
func (v *ViewerData) Cry() assets.BattleCry {
	return assets.BattleCry{Dex: v.Dex}
}

var Viewer = donburi.NewComponentType[ViewerData]()
