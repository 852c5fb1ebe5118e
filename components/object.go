package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BoundsData holds the collision space used for pat containment on the interaction plane.
// Space coordinates are world coordinates scaled by UnitsPerWorld and shifted by Origin.
type BoundsData struct {
	Space         *resolv.Space
	Fox           *resolv.Object
	Probe         *resolv.Object
	UnitsPerWorld float64
	OriginX       float64
	OriginY       float64
}

var Bounds = donburi.NewComponentType[BoundsData]()

// ToSpace converts a point on the interaction plane to space coordinates
func (b *BoundsData) ToSpace(x, y float64) (float64, float64) {
	return (x - b.OriginX) * b.UnitsPerWorld, (y - b.OriginY) * b.UnitsPerWorld
}
