package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pmattheis/balloonfield/components"
	cfg "github.com/pmattheis/balloonfield/config"
	"github.com/pmattheis/balloonfield/fonts"
	"github.com/yohamta/donburi/ecs"
)

// DrawPage renders the mock portfolio page the balloons float over. It is
// static content: a header with name and role, a couple of body blocks and
// a footer, all colored by the active theme.
func DrawPage(e *ecs.ECS, screen *ebiten.Image) {
	settingsEntry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	palette := components.Settings.Get(settingsEntry).Palette()

	screen.Fill(palette.Background)

	width := float32(cfg.C.Width)
	height := float32(cfg.C.Height)
	margin := float32(cfg.Shell.BlockMargin)
	barH := float32(cfg.Shell.BarHeight)

	// Header
	headerFont := fonts.Title.Get()
	subFont := fonts.Regular.Get()
	headerY := barH + 48
	text.Draw(screen, "Paul Mattheis", headerFont, int(margin), int(headerY), palette.Heading)
	text.Draw(screen, "Software Engineer - Distributed Systems", subFont, int(margin), int(headerY)+26, palette.Text)
	vector.DrawFilledRect(screen, margin, headerY+38, 64, 3, palette.Accent, false)

	// Content blocks standing in for resume sections
	blockTop := barH + float32(cfg.Shell.HeaderHeight)
	spacing := float32(cfg.Shell.BlockSpacing)
	blockW := width - 2*margin
	blockH := (height - blockTop - float32(cfg.Shell.FooterHeight) - 3*spacing) / 2
	for i := 0; i < 2; i++ {
		y := blockTop + spacing + float32(i)*(blockH+spacing)
		vector.DrawFilledRect(screen, margin, y, blockW, blockH, palette.Surface, false)
	}
	text.Draw(screen, "Experience", subFont, int(margin)+16, int(blockTop+spacing)+26, palette.Heading)
	text.Draw(screen, "Places & Awards", subFont, int(margin)+16, int(blockTop+2*spacing+blockH)+26, palette.Heading)

	// Footer
	footerFont := fonts.Small.Get()
	text.Draw(screen, "click a balloon", footerFont, int(margin), cfg.C.Height-10, palette.Text)
}
