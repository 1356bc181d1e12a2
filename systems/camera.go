package systems

import (
	"math"

	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	moveCamera(e, DeltaTime())
}

func moveCamera(e *ecs.ECS, dt float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	transform := components.Transform.Get(cameraEntry)
	input := getOrCreateInput(e)

	updateZoom(camera, input, dt)

	if cfg.Camera.FollowPlayer {
		followPlayer(e, transform, camera.Zoom)
		return
	}

	speed := CameraSpeed(GetAction(input, cfg.ActionRun).Pressed)
	Translate(transform, MovementVector(readDirectional(input)), speed, dt)
}

// CameraSpeed is the free camera speed, doubled by the run modifier.
func CameraSpeed(running bool) float64 {
	if running {
		return cfg.Camera.RunSpeed
	}
	return cfg.Camera.Speed
}

func followPlayer(e *ecs.ECS, transform *components.TransformData, zoom float64) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	target := components.Transform.Get(playerEntry).Position

	if levelEntry, ok := components.Level.First(e.World); ok {
		if m := components.Level.Get(levelEntry).CurrentMap; m != nil && zoom > 0 {
			halfW := float64(cfg.C.Width) / 2 / zoom
			halfH := float64(cfg.C.Height) / 2 / zoom
			target.X = clampCenter(target.X, halfW, m.Width)
			target.Y = clampCenter(target.Y, halfH, m.Height)
		}
	}

	transform.Position.X += (target.X - transform.Position.X) * cfg.Camera.FollowSmoothing
	transform.Position.Y += (target.Y - transform.Position.Y) * cfg.Camera.FollowSmoothing
}

// clampCenter keeps a view of half-size half inside [0, size]; a level
// smaller than the view is centered.
func clampCenter(v, half, size float64) float64 {
	if size <= 2*half {
		return size / 2
	}
	return math.Max(half, math.Min(size-half, v))
}

func updateZoom(camera *components.CameraData, input *components.InputData, dt float64) {
	step := 0.0
	if GetAction(input, cfg.ActionZoomIn).JustPressed {
		step += cfg.Camera.ZoomStep
	}
	if GetAction(input, cfg.ActionZoomOut).JustPressed {
		step -= cfg.Camera.ZoomStep
	}
	if step != 0 {
		SetZoomTarget(camera, camera.ZoomTarget+step)
	}

	if camera.ZoomTween == nil {
		return
	}
	value, finished := camera.ZoomTween.Update(float32(dt))
	camera.Zoom = float64(value)
	if finished {
		camera.Zoom = camera.ZoomTarget
		camera.ZoomTween = nil
	}
}

// SetZoomTarget clamps target to the configured range and eases toward it.
func SetZoomTarget(camera *components.CameraData, target float64) {
	target = math.Max(cfg.Camera.MinZoom, math.Min(cfg.Camera.MaxZoom, target))
	if target == camera.ZoomTarget && camera.ZoomTween == nil {
		return
	}
	camera.ZoomTarget = target
	camera.ZoomTween = gween.New(float32(camera.Zoom), float32(target), float32(cfg.Camera.ZoomDuration), ease.OutQuad)
}

// cameraView returns the camera position and zoom, defaulting to the origin
// at zoom 1 when there is no camera yet.
func cameraView(e *ecs.ECS) (x, y, zoom float64, ok bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, 1, false
	}
	camera := components.Camera.Get(cameraEntry)
	pos := components.Transform.Get(cameraEntry).Position
	zoom = camera.Zoom
	// Safety check for zero zoom
	if zoom <= 0 {
		zoom = 1
	}
	return pos.X, pos.Y, zoom, true
}
