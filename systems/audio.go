package systems

import (
	"log"
	"sync"

	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadCry decodes a creature's cry ahead of its first play.
func PreloadCry(dex int) {
	initGlobalAudio()
	if err := globalAudioLoader.Preload(assets.Path(assets.BattleCry{Dex: dex})); err != nil {
		log.Printf("Warning: Could not preload cry for #%03d: %v", dex, err)
	}
}

// QueueCry asks the audio system to play a creature's cry on its next update.
func QueueCry(e *ecs.ECS, dex int) {
	audioData := getOrCreateAudio(e)
	audioData.PendingCries = append(audioData.PendingCries, dex)
}

// UpdateAudio plays queued cries.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingCries) == 0 {
		return
	}

	initGlobalAudio()
	for _, dex := range audioData.PendingCries {
		playCry(dex)
	}
	audioData.PendingCries = audioData.PendingCries[:0]
}

func playCry(dex int) {
	if cfg.Audio.Muted || cfg.Audio.CryVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadCry(dex)
	if err != nil {
		log.Printf("Warning: Could not play cry for #%03d: %v", dex, err)
		return
	}
	player.SetVolume(cfg.Audio.CryVolume)
	player.Play()
}

// invalidateAudio drops decoded sounds after assets change on disk.
func invalidateAudio() {
	if globalAudioLoader != nil {
		globalAudioLoader.Invalidate()
	}
}

func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	return components.Audio.Get(entry)
}
