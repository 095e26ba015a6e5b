package components

import "github.com/yohamta/donburi"

// SettingsData holds player-facing demo toggles that persist between runs.
type SettingsData struct {
	ShowDebug bool
	LastLevel string
}

var Settings = donburi.NewComponentType[SettingsData]()
