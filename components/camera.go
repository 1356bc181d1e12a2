package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Zoom       float64
	ZoomTarget float64
	ZoomTween  *gween.Tween // nil when no zoom change is in progress
}

var Camera = donburi.NewComponentType[CameraData]()
