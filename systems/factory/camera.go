package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera creates the camera centered on x, y.
func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Zoom:       cfg.Camera.Zoom,
		ZoomTarget: cfg.Camera.Zoom,
	})
	components.Transform.SetValue(camera, components.TransformData{
		Position: math.Vec2{X: x, Y: y},
		Depth:    cfg.Camera.Depth,
	})
	return camera
}
