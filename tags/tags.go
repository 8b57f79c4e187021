package tags

import "github.com/yohamta/donburi"

var (
	Avatar   = donburi.NewTag().SetName("Avatar")
	Platform = donburi.NewTag().SetName("Platform")
	Coin     = donburi.NewTag().SetName("Coin")
	Camera   = donburi.NewTag().SetName("Camera")
)

// Resolv tags for footprint queries
const (
	ResolvAvatar   = "Avatar"
	ResolvPlatform = "platform"
	ResolvGround   = "ground"
)
