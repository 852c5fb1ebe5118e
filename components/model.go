package components

import (
	"github.com/coedo/spankthefox/assets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ModelData is a textured mesh drawn with a per-frame transform
type ModelData struct {
	Mesh    *assets.Mesh
	Texture *ebiten.Image
	Scale   float64
}

var Model = donburi.NewComponentType[ModelData]()
