package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/fonts"
	"github.com/automoto/overworld/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

var debugFace *text.GoXFace

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	camX, camY, zoom, ok := cameraView(ecs)
	if !ok {
		return // No camera yet
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := cfg.UI.DebugSolidColor
			if obj.HasTags(tags.ResolvPlayer) {
				c = cfg.UI.DebugPlayerColor
			}
			drawOutline(screen, obj, camX, camY, zoom, width, height, c)
		}
	}

	drawDebugText(ecs, screen, zoom)
}

func drawOutline(screen *ebiten.Image, obj *resolv.Object, camX, camY, zoom float64, width, height int, c color.Color) {
	x, y := WorldToScreen(obj.X, obj.Y, camX, camY, zoom, width, height)
	w, h := obj.W*zoom, obj.H*zoom

	// Cull objects outside viewport
	if x+w < 0 || y+h < 0 || x > float64(width) || y > float64(height) {
		return
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
}

func drawDebugText(ecs *ecs.ECS, screen *ebiten.Image, zoom float64) {
	if !fonts.Loaded(fonts.MonoSmall) {
		return
	}
	if debugFace == nil {
		debugFace = text.NewGoXFace(fonts.MonoSmall.Get())
	}

	line := fmt.Sprintf("TPS %.0f  zoom %.2f", ebiten.ActualTPS(), zoom)
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		t := components.Transform.Get(playerEntry)
		anim := components.Animation.Get(playerEntry)
		sprite := components.Sprite.Get(playerEntry)
		line = fmt.Sprintf("pos %.1f,%.1f z %.1f  facing %s  frame %d  %s",
			t.Position.X, t.Position.Y, t.Depth, anim.Direction, sprite.Index, line)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(4, 4)
	op.ColorScale.ScaleWithColor(cfg.UI.DebugTextColor)
	text.Draw(screen, line, debugFace, op)
}
