package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/pmattheis/balloonfield/components"
	cfg "github.com/pmattheis/balloonfield/config"
	"github.com/yohamta/donburi/ecs"
)

// DrawStats overlays live-set counters when debug stats are enabled.
func DrawStats(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowStats {
		return
	}

	live := LiveBalloonCount(e)
	var nextID int64
	if spawnerEntry, ok := components.Spawner.First(e.World); ok {
		nextID = components.Spawner.Get(spawnerEntry).NextID
	}

	msg := fmt.Sprintf("live %d/%d  spawned %d  tps %0.0f",
		live, cfg.Balloon.MaxLive, nextID-1, ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, msg, 8, cfg.C.Height-32)
}
