package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pmattheis/balloonfield/config"
	"github.com/pmattheis/balloonfield/fonts"
	"github.com/pmattheis/balloonfield/scenes"
	"github.com/pmattheis/balloonfield/systems"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(saved *systems.SavedSettings) *Game {
	fonts.LoadFont(fonts.Regular, goregular.TTF)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 28)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 11)

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPageScene(g, saved)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("balloonfield")

	// Load the persisted theme/toggle preferences before the scene builds.
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		saved = nil
	}

	if err := ebiten.RunGame(NewGame(saved)); err != nil {
		log.Fatal(err)
	}
}
