package factory

import (
	"github.com/automoto/tidewalker/archetypes"
	"github.com/automoto/tidewalker/components"
	"github.com/yohamta/donburi"
)

func CreateSettings(w donburi.World, data components.SettingsData) *donburi.Entry {
	settings := archetypes.Settings.Spawn(w)
	components.Settings.SetValue(settings, data)
	return settings
}
