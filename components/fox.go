package components

import (
	"github.com/coedo/spankthefox/gamemath"
	"github.com/yohamta/donburi"
)

// FoxData is the reactive target the player swings at
type FoxData struct {
	Position gamemath.Vec3
	Velocity gamemath.Vec3 // only integrated during a hit reaction

	// Static box around the rest position, used for pat containment
	BoundsMin gamemath.Vec3
	BoundsMax gamemath.Vec3
}

var Fox = donburi.NewComponentType[FoxData]()
