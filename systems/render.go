package systems

import (
	"sort"

	"github.com/automoto/overworld/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
	// reused between frames to avoid allocating while drawing
	drawQueue []*donburi.Entry
)

// applyCamera appends the world to screen transform to op:
// translate to camera-relative position, scale by zoom, center on screen.
func applyCamera(op *ebiten.DrawImageOptions, camX, camY, zoom float64, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	op.GeoM.Translate(-camX, -camY)
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(float64(width)/2, float64(height)/2)
}

// WorldToScreen converts a world position for the given camera and screen size.
func WorldToScreen(x, y, camX, camY, zoom float64, width, height int) (float64, float64) {
	return (x-camX)*zoom + float64(width)/2, (y-camY)*zoom + float64(height)/2
}

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, zoom, ok := cameraView(ecs)
	if !ok {
		return // No camera yet
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentMap == nil || levelData.CurrentMap.Background == nil {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(levelData.CurrentMap.Scale, levelData.CurrentMap.Scale)
	applyCamera(opts, camX, camY, zoom, screen)
	screen.DrawImage(levelData.CurrentMap.Background, opts)
}

// DrawSprites draws every sprite anchored bottom-center at its transform,
// back to front by depth and then by Y.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, zoom, ok := cameraView(ecs)
	if !ok {
		return // No camera yet
	}

	drawQueue = drawQueue[:0]
	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Transform) {
			drawQueue = append(drawQueue, e)
		}
	})
	sortByDepth(drawQueue)

	for _, e := range drawQueue {
		sprite := components.Sprite.Get(e)
		img := sprite.Current()
		if img == nil {
			continue
		}
		t := components.Transform.Get(e)

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(-float64(sprite.FrameWidth)/2, -float64(sprite.FrameHeight))
		drawOp.GeoM.Translate(t.Position.X, t.Position.Y)
		applyCamera(drawOp, camX, camY, zoom, screen)
		screen.DrawImage(img, drawOp)
	}
}

func sortByDepth(entries []*donburi.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a := components.Transform.Get(entries[i])
		b := components.Transform.Get(entries[j])
		if a.Depth != b.Depth {
			return a.Depth < b.Depth
		}
		return a.Position.Y < b.Position.Y
	})
}
