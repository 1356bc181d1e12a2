package config

import "testing"

func restoreGlobals(t *testing.T) {
	t.Helper()
	c, p, a, cam, m, au, v := *C, Player, Animation, Camera, Map, Audio, Viewer
	t.Cleanup(func() {
		C = &c
		Player, Animation, Camera, Map, Audio, Viewer = p, a, cam, m, au, v
	})
}

func TestApplyOverridesKeepsMissingKeys(t *testing.T) {
	restoreGlobals(t)

	data := []byte(`
player:
  speed: 200
camera:
  followPlayer: true
`)
	if err := ApplyOverrides(data); err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}
	if Player.Speed != 200 {
		t.Fatalf("expected player speed 200, got %v", Player.Speed)
	}
	if !Camera.FollowPlayer {
		t.Fatalf("expected followPlayer to be set")
	}
	if Player.Dex != 3 || !Player.Shiny {
		t.Fatalf("untouched player keys changed: dex=%d shiny=%v", Player.Dex, Player.Shiny)
	}
	if Camera.Speed != 250 || Camera.RunSpeed != 500 {
		t.Fatalf("untouched camera speeds changed: %v/%v", Camera.Speed, Camera.RunSpeed)
	}
	if Animation.FrameDuration != 0.1 {
		t.Fatalf("expected default frame duration, got %v", Animation.FrameDuration)
	}
}

func TestApplyOverridesRejects(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"unknown_key", "player:\n  sped: 10\n"},
		{"zero_frame_duration", "animation:\n  frameDuration: 0\n"},
		{"bad_zoom_range", "camera:\n  minZoom: 4\n  maxZoom: 2\n"},
		{"negative_dex", "player:\n  dex: -1\n"},
		{"not_yaml", "player: [1, 2"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			restoreGlobals(t)
			before := Player
			if err := ApplyOverrides([]byte(c.data)); err == nil {
				t.Fatalf("expected error for %q", c.data)
			}
			if Player != before {
				t.Fatalf("player config changed after a rejected override")
			}
		})
	}
}

func TestApplyOverridesEmpty(t *testing.T) {
	restoreGlobals(t)
	if err := ApplyOverrides(nil); err != nil {
		t.Fatalf("empty config should be accepted: %v", err)
	}
	if C.Width != 640 || C.Height != 360 {
		t.Fatalf("window changed: %dx%d", C.Width, C.Height)
	}
}
