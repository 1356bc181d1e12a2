package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/systems"
	factory2 "github.com/automoto/overworld/systems/factory"
	"github.com/automoto/overworld/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TownScene is the overworld: a tile map, a walking creature and a free or
// following camera.
type TownScene struct {
	ecs     *ecs.ECS
	viewer  *ui.ViewerUI
	watcher *assets.Watcher
	saved   *systems.SavedState
	once    sync.Once
}

// NewTownScene creates the town scene. A saved session, when not nil, is
// restored once the scene is built.
func NewTownScene(saved *systems.SavedState) *TownScene {
	return &TownScene{saved: saved}
}

func (ts *TownScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()

	if systems.GetOrCreateSettings(ts.ecs).ViewerOpen {
		ts.viewer.Update()
	}
}

func (ts *TownScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)

	if systems.GetOrCreateSettings(ts.ecs).ViewerOpen {
		ts.viewer.UI.Draw(screen)
	}
}

// State snapshots the session for saving, or nil before the scene is built.
func (ts *TownScene) State() *systems.SavedState {
	if ts.ecs == nil {
		return nil
	}
	return systems.CaptureState(ts.ecs)
}

// Close stops watching the asset directory.
func (ts *TownScene) Close() {
	systems.SetWatcher(nil)
	if ts.watcher != nil {
		if err := ts.watcher.Close(); err != nil {
			log.Printf("Warning: Could not close asset watcher: %v", err)
		}
		ts.watcher = nil
	}
}

func (ts *TownScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input and toggles run first so every system sees this frame's keys
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateReload)

	ecs.AddSystem(systems.UpdatePlayerMovement)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateAudio)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	ts.ecs = ecs

	// Create the level entity, its collision space and walls FIRST.
	level, err := factory2.CreateLevel(ts.ecs, cfg.Map.Path)
	if err != nil {
		panic(err)
	}
	levelData := components.Level.Get(level)
	spawn := levelData.CurrentMap.Spawn

	factory2.CreateCamera(ts.ecs, spawn.X, spawn.Y)
	factory2.CreatePlayer(ts.ecs, spawn.X, spawn.Y, factory2.DefaultCreature(), animations.South)

	systems.ApplyState(ts.ecs, ts.saved)
	systems.PreloadCry(systems.GetOrCreateViewer(ts.ecs).Dex)

	ts.viewer = ui.NewViewerUI(ts.ecs)
	ts.startWatcher()
}

func (ts *TownScene) startWatcher() {
	dir := assets.Dir()
	if !cfg.Assets.Watch {
		return
	}
	if dir == "" {
		log.Printf("Warning: Asset watching needs an asset directory, ignoring")
		return
	}

	w, err := assets.NewWatcher(dir, time.Duration(cfg.Assets.WatchDebounce)*time.Millisecond)
	if err != nil {
		log.Printf("Warning: Could not watch %s: %v", dir, err)
		return
	}
	ts.watcher = w
	systems.SetWatcher(w)
	log.Printf("Watching %s for asset changes", dir)
}
