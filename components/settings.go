package components

import "github.com/yohamta/donburi"

// SettingsData holds toggles that persist for the session.
type SettingsData struct {
	Debug      bool
	ViewerOpen bool
}

var Settings = donburi.NewComponentType[SettingsData]()
