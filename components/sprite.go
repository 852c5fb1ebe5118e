package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// BillboardData is a camera-facing sprite drawn at an entity's position
type BillboardData struct {
	Image *ebiten.Image
	Size  float64 // height in world units
}

var Billboard = donburi.NewComponentType[BillboardData]()
