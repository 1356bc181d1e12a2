package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideFile mirrors the tunable sections of the global configuration.
// Keys missing from the file keep their current values.
type overrideFile struct {
	Window    Config          `yaml:"window"`
	Player    PlayerConfig    `yaml:"player"`
	Animation AnimationConfig `yaml:"animation"`
	Camera    CameraConfig    `yaml:"camera"`
	Map       MapConfig       `yaml:"map"`
	Audio     AudioConfig     `yaml:"audio"`
	Viewer    ViewerConfig    `yaml:"viewer"`
}

// LoadOverrides reads a YAML file and applies it on top of the defaults.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := ApplyOverrides(data); err != nil {
		return fmt.Errorf("failed to apply config %s: %w", path, err)
	}
	return nil
}

// ApplyOverrides decodes YAML into the global configuration. Unknown keys are
// rejected and nothing is applied when decoding or validation fails.
func ApplyOverrides(data []byte) error {
	f := overrideFile{
		Window:    *C,
		Player:    Player,
		Animation: Animation,
		Camera:    Camera,
		Map:       Map,
		Audio:     Audio,
		Viewer:    Viewer,
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if err := f.validate(); err != nil {
		return err
	}

	window := f.Window
	C = &window
	Player = f.Player
	Animation = f.Animation
	Camera = f.Camera
	Map = f.Map
	Audio = f.Audio
	Viewer = f.Viewer
	return nil
}

func (f *overrideFile) validate() error {
	switch {
	case f.Window.Width <= 0 || f.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", f.Window.Width, f.Window.Height)
	case f.Animation.FrameDuration <= 0:
		return fmt.Errorf("animation.frameDuration must be positive, got %v", f.Animation.FrameDuration)
	case f.Player.Dex < 0 || f.Player.Form < 0:
		return fmt.Errorf("player dex and form must not be negative")
	case f.Camera.MinZoom <= 0 || f.Camera.MinZoom > f.Camera.MaxZoom:
		return fmt.Errorf("camera zoom range [%v, %v] is invalid", f.Camera.MinZoom, f.Camera.MaxZoom)
	case f.Viewer.MaxDex < 1 || f.Viewer.MaxForm < 0:
		return fmt.Errorf("viewer.maxDex must be at least 1 and viewer.maxForm not negative")
	case f.Map.Scale <= 0:
		return fmt.Errorf("map.scale must be positive, got %v", f.Map.Scale)
	}
	return nil
}
