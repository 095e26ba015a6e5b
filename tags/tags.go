package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Wall     = donburi.NewTag().SetName("Wall")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPlatform = "platform"
	ResolvPlayer   = "Player"
)
