package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed float64 `yaml:"speed"` // world units per second

	// Starting creature
	Dex   int  `yaml:"dex"`
	Form  int  `yaml:"form"`
	Shiny bool `yaml:"shiny"`

	// Depth the player sprite is drawn at (map layers sit at 0)
	Depth float64 `yaml:"depth"`

	// Dimensions
	FrameWidth      int `yaml:"frameWidth"`
	FrameHeight     int `yaml:"frameHeight"`
	CollisionWidth  int `yaml:"collisionWidth"`
	CollisionHeight int `yaml:"collisionHeight"`
}

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	FrameDuration float64 `yaml:"frameDuration"` // seconds per frame
	SheetColumns  int     `yaml:"sheetColumns"`
	SheetRows     int     `yaml:"sheetRows"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Speed        float64 `yaml:"speed"`    // free camera speed, units per second
	RunSpeed     float64 `yaml:"runSpeed"` // speed while the run modifier is held
	FollowPlayer bool    `yaml:"followPlayer"`
	// How fast camera follows player (0.0-1.0)
	FollowSmoothing float64 `yaml:"followSmoothing"`
	Depth           float64 `yaml:"depth"`

	// Zoom
	Zoom         float64 `yaml:"zoom"`
	MinZoom      float64 `yaml:"minZoom"`
	MaxZoom      float64 `yaml:"maxZoom"`
	ZoomStep     float64 `yaml:"zoomStep"`
	ZoomDuration float64 `yaml:"zoomDuration"` // seconds
}

// MapConfig contains tile map loading configuration
type MapConfig struct {
	Path            string  `yaml:"path"`
	Scale           float64 `yaml:"scale"`
	CollisionLayer  string  `yaml:"collisionLayer"`
	SpawnLayer      string  `yaml:"spawnLayer"`
	PlayerSpawnName string  `yaml:"playerSpawnName"`
	CellSize        int     `yaml:"cellSize"` // resolv space cell size
}

// UIConfig contains HUD colors and sizes
type UIConfig struct {
	DebugTextColor     color.RGBA
	DebugSolidColor    color.RGBA
	DebugPlayerColor   color.RGBA
	ViewerPanelColor   color.RGBA
	ViewerButtonColor  color.RGBA
	ViewerHoverColor   color.RGBA
	ViewerPressedColor color.RGBA
	HUDFontSize        float64
}

// ViewerConfig bounds the creature viewer selection
type ViewerConfig struct {
	MaxDex  int `yaml:"maxDex"`
	MaxForm int `yaml:"maxForm"`
}

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled bool // Start with the debug overlay visible
}

// AssetConfig controls where assets are read from
type AssetConfig struct {
	Dir           string // on-disk asset directory; empty uses the embedded assets
	Watch         bool   // hot reload Dir on change
	WatchDebounce int    // milliseconds
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Animation AnimationConfig
var Camera CameraConfig
var Map MapConfig
var UI UIConfig
var Viewer ViewerConfig
var Debug DebugConfig
var Assets AssetConfig

// Shared RGBA color constants
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Grey   = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Blue   = color.RGBA{R: 0, G: 100, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Tiled Map Editor Example",
	}

	Player = PlayerConfig{
		Speed: 128.0,

		Dex:   3,
		Form:  0,
		Shiny: true,

		Depth: 2.0,

		FrameWidth:      64,
		FrameHeight:     64,
		CollisionWidth:  20,
		CollisionHeight: 12,
	}

	Animation = AnimationConfig{
		FrameDuration: 0.1,
		SheetColumns:  4,
		SheetRows:     4,
	}

	Camera = CameraConfig{
		Speed:           250.0,
		RunSpeed:        500.0, // doubled while run is held
		FollowPlayer:    false,
		FollowSmoothing: 0.1,
		Depth:           999.9,

		Zoom:         1.0,
		MinZoom:      0.5,
		MaxZoom:      3.0,
		ZoomStep:     0.25,
		ZoomDuration: 0.25,
	}

	Map = MapConfig{
		Path:            "tilemaps/tuxemon-town.tmx",
		Scale:           2.0,
		CollisionLayer:  "Collisions",
		SpawnLayer:      "Spawn",
		PlayerSpawnName: "player",
		CellSize:        16,
	}

	UI = UIConfig{
		DebugTextColor:     White,
		DebugSolidColor:    Grey,
		DebugPlayerColor:   Blue,
		ViewerPanelColor:   color.RGBA{R: 20, G: 20, B: 30, A: 230},
		ViewerButtonColor:  color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ViewerHoverColor:   color.RGBA{R: 80, G: 80, B: 100, A: 255},
		ViewerPressedColor: color.RGBA{R: 40, G: 40, B: 60, A: 255},
		HUDFontSize:        10,
	}

	Viewer = ViewerConfig{
		MaxDex:  999,
		MaxForm: 2,
	}

	Assets = AssetConfig{
		WatchDebounce: 200,
	}
}
