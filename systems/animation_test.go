package systems

import (
	"testing"

	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
)

func TestAnimateShowsCurrentFrame(t *testing.T) {
	e := newTestECS(t)
	player := newTestPlayer(e, 0, 0)
	sprite := components.Sprite.Get(player)

	want := []int{1, 2, 3, 0, 1}
	for i, w := range want {
		animate(e, cfg.Animation.FrameDuration)
		if sprite.Index != w {
			t.Fatalf("tick %d: expected frame %d, got %d", i, w, sprite.Index)
		}
	}
}

func TestAnimateAfterTurnStaysInNewBlock(t *testing.T) {
	e := newTestECS(t)
	player := newTestPlayer(e, 0, 0)
	sprite := components.Sprite.Get(player)

	hold(e, cfg.ActionMoveNorth)
	for i := 0; i < 20; i++ {
		movePlayers(e, 1.0/60)
		animate(e, 1.0/60)
		if sprite.Index < animations.North.FirstIndex() || sprite.Index > animations.North.LastIndex() {
			t.Fatalf("frame %d outside the north block", sprite.Index)
		}
	}
}
