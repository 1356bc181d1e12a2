package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/fonts"
	"github.com/automoto/overworld/scenes"
	"github.com/automoto/overworld/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  *scenes.TownScene
}

func NewGame(saved *systems.SavedState) *Game {
	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		log.Printf("Warning: Could not load HUD font: %v", err)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewTownScene(saved),
	}
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.shutdown()
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// shutdown saves the session and stops background work.
func (g *Game) shutdown() {
	if state := g.scene.State(); state != nil {
		_ = systems.SaveState(state)
	}
	g.scene.Close()
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default configuration")
	assetDir := flag.String("assets", "", "Read assets from this directory instead of the embedded ones")
	watch := flag.Bool("watch", false, "Reload assets when files under -assets change")
	debug := flag.Bool("debug", false, "Start with the debug overlay visible")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	config.Assets.Dir = *assetDir
	config.Assets.Watch = *watch
	config.Debug.Enabled = config.Debug.Enabled || *debug

	if err := assets.UseDir(config.Assets.Dir); err != nil {
		log.Fatalf("Failed to use assets: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	// Initialize persistence and load the saved session
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadState()
	if err != nil {
		saved = nil
	}

	if err := ebiten.RunGame(NewGame(saved)); err != nil {
		log.Fatal(err)
	}
}
