package components

import (
	"github.com/coedo/spankthefox/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PointerData is the pointer projected onto the interaction plane
type PointerData struct {
	Screen math.Vec2
	Ray    gamemath.Ray
	World  gamemath.Vec3
}

var Pointer = donburi.NewComponentType[PointerData]()
