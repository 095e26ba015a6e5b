package factory

import (
	"github.com/automoto/tidewalker/archetypes"
	"github.com/automoto/tidewalker/components"
	"github.com/automoto/tidewalker/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateWall(w donburi.World, x, y, width, height float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)
	addStatic(w, wall, resolv.NewObject(x, y, width, height, tags.ResolvSolid))
	return wall
}

// CreatePlatform creates a one-way platform the player can jump up through.
func CreatePlatform(w donburi.World, x, y, width, height float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)
	addStatic(w, platform, resolv.NewObject(x, y, width, height, tags.ResolvPlatform))
	return platform
}

func addStatic(w donburi.World, entry *donburi.Entry, obj *resolv.Object) {
	obj.Data = entry // Link for O(1) lookup
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// RemoveStatic removes every wall and platform from the world and the space.
func RemoveStatic(w donburi.World) int {
	var doomed []*donburi.Entry
	tags.Wall.Each(w, func(e *donburi.Entry) { doomed = append(doomed, e) })
	tags.Platform.Each(w, func(e *donburi.Entry) { doomed = append(doomed, e) })

	spaceEntry, hasSpace := components.Space.First(w)
	for _, e := range doomed {
		if hasSpace {
			if obj := components.Object.Get(e); obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
		w.Remove(e.Entity())
	}
	return len(doomed)
}
