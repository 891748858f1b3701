package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pmattheis/balloonfield/components"
	cfg "github.com/pmattheis/balloonfield/config"
	"github.com/pmattheis/balloonfield/systems"
	"github.com/pmattheis/balloonfield/systems/factory"
	"github.com/pmattheis/balloonfield/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// PageScene is the portfolio page: static content, the shell bar, and the
// balloon field floating over both.
type PageScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	shellUI      *ui.ShellUI
	saved        *systems.SavedSettings
	once         sync.Once
}

// NewPageScene creates the page scene; saved may be nil on a first run.
func NewPageScene(sc SceneChanger, saved *systems.SavedSettings) *PageScene {
	return &PageScene{sceneChanger: sc, saved: saved}
}

func (ps *PageScene) Update() {
	ps.once.Do(ps.configure)

	// The shell bar consumes clicks on the chrome before the pop system
	// ever sees them (the pop system ignores the bar region).
	ps.shellUI.Update()
	ps.ecs.Update()
}

func (ps *PageScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
	// Chrome sits above the balloons, like a fixed navbar.
	ps.shellUI.UI.Draw(screen)
}

func (ps *PageScene) configure() {
	world := ecs.NewECS(donburi.NewWorld())

	// Audio runs first so pops queued last frame start promptly.
	world.AddSystem(systems.UpdateAudio)
	world.AddSystem(systems.UpdatePopInput)
	world.AddSystem(systems.UpdateSpawner)
	world.AddSystem(systems.UpdateBalloons)

	world.AddRenderer(cfg.Default, systems.DrawPage)
	world.AddRenderer(cfg.Default, systems.DrawBalloons)
	world.AddRenderer(cfg.Default, systems.DrawStats)

	ps.ecs = world

	factory.CreateSpace(ps.ecs, cfg.C.Width, cfg.C.Height*2, 16, 16)

	initial := systems.SettingsFromSaved(ps.saved)
	settingsEntry := factory.CreateSettings(ps.ecs, initial.BalloonsEnabled, initial.Muted, initial.Theme)
	factory.CreateSpawner(ps.ecs, nil)

	ps.shellUI = ui.NewShellUI(components.Settings.Get(settingsEntry))
}
