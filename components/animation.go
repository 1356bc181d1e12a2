package components

import (
	"github.com/automoto/overworld/assets/animations"
	"github.com/yohamta/donburi"
)

var Animation = donburi.NewComponentType[animations.Animation]()
