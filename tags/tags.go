package tags

import "github.com/yohamta/donburi"

var (
	Balloon = donburi.NewTag().SetName("Balloon")
)

// Resolv tags for hit-region objects
const (
	ResolvBalloon = "balloon"
)
