package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// SpawnerData drives the spawn scheduler. The timer is a tick counter at
// the fixed TPS; it keeps running while the set is at the cap and never
// compensates for refused ticks.
type SpawnerData struct {
	WasEnabled bool  // Previous frame's enabled flag, for edge detection
	Ticks      int   // Frames since the last spawn tick
	NextID     int64 // Monotonic id source, never reused
	Rand       *rand.Rand
}

var Spawner = donburi.NewComponentType[SpawnerData]()
