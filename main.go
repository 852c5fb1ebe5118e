package main

import (
	"log"

	"github.com/coedo/spankthefox/assets"
	"github.com/coedo/spankthefox/config"
	"github.com/coedo/spankthefox/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(handMesh *assets.Mesh) *Game {
	return &Game{
		scene: scenes.NewStageScene(handMesh),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	// The hand is the player's only tool; there is no game without it
	handMesh, err := assets.LoadHandModel(assets.FS(), config.Assets.HandModel)
	if err != nil {
		log.Fatalf("Failed to load hand model: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	if err := ebiten.RunGame(NewGame(handMesh)); err != nil {
		log.Fatal(err)
	}
}
