package tags

import "github.com/yohamta/donburi"

var (
	Fox  = donburi.NewTag().SetName("Fox")
	Hand = donburi.NewTag().SetName("Hand")
)

// Resolv tags for the pat bounds space
const (
	ResolvFox   = "fox"
	ResolvProbe = "probe"
)
