package systems

import (
	"fmt"
	"log"

	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/systems/factory"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi/ecs"
)

// NextDex selects the following creature, wrapping past MaxDex to 1.
func NextDex(v *components.ViewerData) {
	v.Dex++
	if v.Dex > cfg.Viewer.MaxDex || v.Dex < 1 {
		v.Dex = 1
	}
	v.Form = 0
	v.Dirty = true
}

// PrevDex selects the preceding creature, wrapping below 1 to MaxDex.
func PrevDex(v *components.ViewerData) {
	v.Dex--
	if v.Dex < 1 || v.Dex > cfg.Viewer.MaxDex {
		v.Dex = cfg.Viewer.MaxDex
	}
	v.Form = 0
	v.Dirty = true
}

// NextForm cycles the form from 0 through MaxForm.
func NextForm(v *components.ViewerData) {
	v.Form++
	if v.Form > cfg.Viewer.MaxForm {
		v.Form = 0
	}
	v.Dirty = true
}

func ToggleShiny(v *components.ViewerData) {
	v.Shiny = !v.Shiny
	v.Dirty = true
}

// ViewerLine is one resolved path shown in the viewer and whether it exists.
type ViewerLine struct {
	Label  string
	Path   string
	Exists bool
}

// ViewerLines resolves every asset of the selection.
func ViewerLines(v *components.ViewerData) []ViewerLine {
	entries := []struct {
		label string
		asset assets.Asset
	}{
		{"Overworld", v.Overworld()},
		{"Battle front", v.Battle(assets.Front)},
		{"Battle back", v.Battle(assets.Back)},
		{"Cry", v.Cry()},
	}

	lines := make([]ViewerLine, 0, len(entries))
	for _, entry := range entries {
		p := assets.Path(entry.asset)
		lines = append(lines, ViewerLine{Label: entry.label, Path: p, Exists: assets.Exists(p)})
	}
	return lines
}

// ApplyViewerToPlayer swaps the player's sheet for the selected creature. A
// sheet that cannot be loaded is logged and the player keeps its old one.
func ApplyViewerToPlayer(e *ecs.ECS) {
	v := GetOrCreateViewer(e)
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}

	creature := v.Overworld()
	sprite := components.Sprite.Get(playerEntry)
	if err := factory.LoadCreatureSprite(sprite, creature); err != nil {
		log.Printf("Warning: %v", err)
		v.Status = fmt.Sprintf("missing %s", assets.Path(creature))
		v.Dirty = true
		return
	}

	components.Player.Get(playerEntry).Creature = creature
	sprite.Index = components.Animation.Get(playerEntry).Frame()
	v.Status = fmt.Sprintf("now playing as #%03d", creature.Dex)
	v.Dirty = true
}

// PlayViewerCry queues the selected creature's cry.
func PlayViewerCry(e *ecs.ECS) {
	v := GetOrCreateViewer(e)
	cry := assets.Path(v.Cry())
	if !assets.Exists(cry) {
		log.Printf("Warning: Missing cry %s", cry)
		v.Status = fmt.Sprintf("missing %s", cry)
		v.Dirty = true
		return
	}
	QueueCry(e, v.Dex)
}

// GetOrCreateViewer returns the singleton Viewer component, seeded with the
// player's creature.
func GetOrCreateViewer(e *ecs.ECS) *components.ViewerData {
	entry, ok := components.Viewer.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Viewer))
		creature := factory.DefaultCreature()
		if playerEntry, ok := tags.Player.First(e.World); ok {
			creature = components.Player.Get(playerEntry).Creature
		}
		components.Viewer.SetValue(entry, components.ViewerData{
			Dex:   creature.Dex,
			Form:  creature.Form,
			Shiny: creature.Shiny == assets.Shiny,
			Dirty: true,
		})
	}
	return components.Viewer.Get(entry)
}
