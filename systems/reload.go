package systems

import (
	"log"
	"path"
	"strings"

	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/systems/factory"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// changeSource reports asset paths that changed, and watch errors, since
// the last call.
type changeSource interface {
	Pending() []string
	PendingErrors() []error
}

var assetChanges changeSource

// SetWatcher makes UpdateReload consume changes reported by w. Nil disables it.
func SetWatcher(w changeSource) {
	assetChanges = w
}

// reloadPlan is what a batch of changed paths requires.
type reloadPlan struct {
	Map       bool
	Sheets    bool
	Audio     bool
	SheetDirs []string
}

func (p reloadPlan) any() bool {
	return p.Map || p.Sheets || p.Audio
}

// fullReload reloads every asset kind.
func fullReload() reloadPlan {
	return reloadPlan{Map: true, Sheets: true, Audio: true}
}

// planReload maps changed asset paths to what has to be reloaded.
func planReload(changed []string) reloadPlan {
	var plan reloadPlan
	seen := make(map[string]bool)
	for _, p := range changed {
		switch {
		case strings.HasPrefix(p, "tilemaps/"):
			plan.Map = true
		case strings.HasPrefix(p, "graphics/"):
			plan.Sheets = true
			dir := path.Dir(p)
			if !seen[dir] {
				seen[dir] = true
				plan.SheetDirs = append(plan.SheetDirs, dir)
			}
		case strings.HasPrefix(p, "audio/"):
			plan.Audio = true
		}
	}
	return plan
}

// UpdateReload applies asset changes from the watcher and the reload key.
// It runs on the update goroutine so ECS state is never touched concurrently.
func UpdateReload(e *ecs.ECS) {
	var plan reloadPlan
	if assetChanges != nil {
		for _, err := range assetChanges.PendingErrors() {
			log.Printf("Warning: Asset watcher: %v", err)
		}
		if changed := assetChanges.Pending(); len(changed) > 0 {
			log.Printf("Assets changed: %s", strings.Join(changed, ", "))
			plan = planReload(changed)
		}
	}
	if GetAction(getOrCreateInput(e), cfg.ActionReload).JustPressed {
		plan = fullReload()
	}
	if !plan.any() {
		return
	}
	applyReload(e, plan)
}

func applyReload(e *ecs.ECS, plan reloadPlan) {
	if plan.Map {
		reloadMap(e)
	}
	if plan.Sheets {
		if len(plan.SheetDirs) == 0 {
			assets.Sheets().Invalidate("")
		}
		for _, dir := range plan.SheetDirs {
			assets.Sheets().Invalidate(dir)
		}
		reloadPlayerSheet(e)
	}
	if plan.Audio {
		invalidateAudio()
	}
}

func reloadMap(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	m, err := factory.LoadMap(level.Path)
	if err != nil {
		log.Printf("Warning: Could not reload map, keeping the old one: %v", err)
		return
	}
	factory.ReplaceMap(e, levelEntry, m)
	log.Printf("Reloaded map %s", level.Path)
}

func reloadPlayerSheet(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		sprite := components.Sprite.Get(entry)
		creature := components.Player.Get(entry).Creature
		if err := factory.LoadCreatureSprite(sprite, creature); err != nil {
			log.Printf("Warning: Could not reload sheet: %v", err)
			return
		}
		sprite.Index = components.Animation.Get(entry).Frame()
	})
}
