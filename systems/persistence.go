package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/systems/factory"
	"github.com/automoto/overworld/tags"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const stateKey = "state"

// SavedState is the session stored on disk between runs.
type SavedState struct {
	MapPath string  `json:"mapPath"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Facing  string  `json:"facing"`
	Dex     int     `json:"dex"`
	Form    int     `json:"form"`
	Shiny   bool    `json:"shiny"`
	Zoom    float64 `json:"zoom"`
	Debug   bool    `json:"debug"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for session storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "overworld",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadState loads the saved session. It returns nil when persistence is
// unavailable or nothing was saved yet.
func LoadState() (*SavedState, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(stateKey)
	if err != nil {
		log.Printf("Warning: Could not load state: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	return DecodeState(data)
}

// DecodeState parses a saved session.
func DecodeState(data []byte) (*SavedState, error) {
	var state SavedState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("Warning: Could not parse saved state: %v", err)
		return nil, err
	}
	return &state, nil
}

// SaveState saves the session to disk
func SaveState(s *SavedState) error {
	if !gdataInitialized || gdataManager == nil || s == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize state: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(stateKey, data); err != nil {
		log.Printf("Warning: Could not save state: %v", err)
		return err
	}
	return nil
}

// CaptureState snapshots the player, camera zoom and toggles. It returns nil
// when there is no player.
func CaptureState(e *ecs.ECS) *SavedState {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return nil
	}
	player := components.Player.Get(playerEntry)
	transform := components.Transform.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)

	state := &SavedState{
		X:      transform.Position.X,
		Y:      transform.Position.Y,
		Facing: anim.Direction.String(),
		Dex:    player.Creature.Dex,
		Form:   player.Creature.Form,
		Shiny:  player.Creature.Shiny == assets.Shiny,
		Zoom:   cfg.Camera.Zoom,
		Debug:  GetOrCreateSettings(e).Debug,
	}
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		state.Zoom = components.Camera.Get(cameraEntry).ZoomTarget
	}
	if levelEntry, ok := components.Level.First(e.World); ok {
		state.MapPath = components.Level.Get(levelEntry).Path
	}
	return state
}

// ApplyState restores a saved session onto the running scene. The position is
// only restored when it was saved on the map that is loaded.
func ApplyState(e *ecs.ECS, s *SavedState) {
	if s == nil {
		return
	}

	if playerEntry, ok := tags.Player.First(e.World); ok {
		transform := components.Transform.Get(playerEntry)
		if levelEntry, ok := components.Level.First(e.World); ok && components.Level.Get(levelEntry).Path == s.MapPath {
			transform.Position.X = s.X
			transform.Position.Y = s.Y
			syncObject(components.Object.Get(playerEntry).Object, transform)
		}

		anim := components.Animation.Get(playerEntry)
		sprite := components.Sprite.Get(playerEntry)
		if facing, ok := animations.ParseDirection(s.Facing); ok {
			if anim.RequestDirection(facing) {
				sprite.Index = anim.First
			}
		}

		creature := assets.OverworldSprite{Dex: s.Dex, Form: s.Form, Shiny: assets.ShinynessOf(s.Shiny)}
		if creature.Dex > 0 && creature != components.Player.Get(playerEntry).Creature {
			if err := factory.LoadCreatureSprite(sprite, creature); err != nil {
				log.Printf("Warning: Could not restore creature: %v", err)
			} else {
				components.Player.Get(playerEntry).Creature = creature
				sprite.Index = anim.Frame()
			}
		}

		viewer := GetOrCreateViewer(e)
		current := components.Player.Get(playerEntry).Creature
		viewer.Dex, viewer.Form, viewer.Shiny = current.Dex, current.Form, current.Shiny == assets.Shiny
		viewer.Dirty = true
	}

	if cameraEntry, ok := components.Camera.First(e.World); ok && s.Zoom > 0 {
		camera := components.Camera.Get(cameraEntry)
		SetZoomTarget(camera, s.Zoom)
		camera.Zoom = camera.ZoomTarget
		camera.ZoomTween = nil
	}

	GetOrCreateSettings(e).Debug = s.Debug || cfg.Debug.Enabled
}
