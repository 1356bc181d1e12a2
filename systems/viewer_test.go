package systems

import (
	"strings"
	"testing"

	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
)

func TestViewerSelection(t *testing.T) {
	cases := []struct {
		name  string
		start components.ViewerData
		step  func(*components.ViewerData)
		want  components.ViewerData
	}{
		{"next dex", components.ViewerData{Dex: 3, Form: 1}, NextDex, components.ViewerData{Dex: 4}},
		{"next dex wraps", components.ViewerData{Dex: cfg.Viewer.MaxDex}, NextDex, components.ViewerData{Dex: 1}},
		{"prev dex", components.ViewerData{Dex: 25}, PrevDex, components.ViewerData{Dex: 24}},
		{"prev dex wraps", components.ViewerData{Dex: 1}, PrevDex, components.ViewerData{Dex: cfg.Viewer.MaxDex}},
		{"next form", components.ViewerData{Dex: 25, Form: 1}, NextForm, components.ViewerData{Dex: 25, Form: 2}},
		{"next form wraps", components.ViewerData{Dex: 25, Form: cfg.Viewer.MaxForm}, NextForm, components.ViewerData{Dex: 25}},
		{"shiny", components.ViewerData{Dex: 7}, ToggleShiny, components.ViewerData{Dex: 7, Shiny: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := c.start
			c.step(&v)
			if !v.Dirty {
				t.Fatalf("expected the selection to be marked dirty")
			}
			v.Dirty = false
			if v != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, v)
			}
		})
	}
}

func TestViewerLines(t *testing.T) {
	v := &components.ViewerData{Dex: 3, Shiny: true}
	want := []ViewerLine{
		{Label: "Overworld", Path: "graphics/overworld_sprites/003s.png", Exists: true},
		{Label: "Battle front", Path: "graphics/battle_sprites/003s.png", Exists: true},
		{Label: "Battle back", Path: "graphics/battle_sprites/003sb.png", Exists: true},
		{Label: "Cry", Path: "audio/cries/003Cry.wav", Exists: true},
	}

	got := ViewerLines(v)
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestViewerLinesReportsMissing(t *testing.T) {
	v := &components.ViewerData{Dex: 998, Form: 2}
	for _, line := range ViewerLines(v) {
		if line.Exists {
			t.Fatalf("%s: did not expect %s to exist", line.Label, line.Path)
		}
	}
}

func TestViewerSeedsFromPlayer(t *testing.T) {
	e := newTestECS(t)
	player := newTestPlayer(e, 0, 0)
	creature := components.Player.Get(player).Creature

	v := GetOrCreateViewer(e)
	if v.Dex != creature.Dex || v.Form != creature.Form {
		t.Fatalf("expected viewer on #%03d form %d, got #%03d form %d", creature.Dex, creature.Form, v.Dex, v.Form)
	}
}

func TestPlayViewerCryMissingQueuesNothing(t *testing.T) {
	e := newTestECS(t)
	v := GetOrCreateViewer(e)
	v.Dex = 998

	PlayViewerCry(e)

	if n := len(getOrCreateAudio(e).PendingCries); n != 0 {
		t.Fatalf("expected no queued cries, got %d", n)
	}
	if v.Status == "" {
		t.Fatalf("expected a status message for the missing cry")
	}
}

func TestApplyViewerToPlayer(t *testing.T) {
	cases := []struct {
		name      string
		selection components.ViewerData
		applied   bool
	}{
		{"existing sheet", components.ViewerData{Dex: 25}, true},
		{"alternate form", components.ViewerData{Dex: 25, Form: 2}, true},
		{"missing sheet", components.ViewerData{Dex: 998}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newTestECS(t)
			player := newTestPlayer(e, 0, 0)
			anim := components.Animation.Get(player)
			sprite := components.Sprite.Get(player)
			before := components.Player.Get(player).Creature
			oldFrames := sprite.Frames

			// mid-walk on the east block
			anim.RequestDirection(animations.East)
			anim.Tick(2*cfg.Animation.FrameDuration, cfg.Animation.FrameDuration)
			sprite.Index = anim.Frame()

			v := GetOrCreateViewer(e)
			v.Dex, v.Form, v.Shiny = c.selection.Dex, c.selection.Form, c.selection.Shiny
			ApplyViewerToPlayer(e)

			creature := components.Player.Get(player).Creature
			if v.Status == "" {
				t.Fatalf("expected a status message")
			}
			if !c.applied {
				if creature != before {
					t.Fatalf("expected the player to stay %+v, got %+v", before, creature)
				}
				if len(sprite.Frames) != len(oldFrames) || &sprite.Frames[0] != &oldFrames[0] {
					t.Fatalf("expected the old frames to be kept")
				}
				if !strings.HasPrefix(v.Status, "missing") {
					t.Fatalf("expected a missing status, got %q", v.Status)
				}
				return
			}

			want := v.Overworld()
			if creature != want {
				t.Fatalf("expected creature %+v, got %+v", want, creature)
			}
			if sprite.Sheet != want || len(sprite.Frames) != 16 {
				t.Fatalf("expected 16 frames of %+v, got %d of %+v", want, len(sprite.Frames), sprite.Sheet)
			}
			if sprite.Index != anim.Frame() || sprite.Index != animations.East.FirstIndex()+2 {
				t.Fatalf("expected the current frame %d to be kept, got %d", anim.Frame(), sprite.Index)
			}
		})
	}
}
