package systems

import (
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings flips the debug overlay and creature viewer toggles.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
	if GetAction(input, cfg.ActionToggleViewer).JustPressed {
		settings.ViewerOpen = !settings.ViewerOpen
	}
}

// GetOrCreateSettings returns the singleton Settings component.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.Enabled,
		})
	}
	return components.Settings.Get(entry)
}
