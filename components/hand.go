package components

import (
	"github.com/coedo/spankthefox/gamemath"
	"github.com/yohamta/donburi"
)

// HandData is the pointer proxy the player grabs and swings
type HandData struct {
	Position     gamemath.Vec3
	PrevPosition gamemath.Vec3
	Velocity     gamemath.Vec3 // pointer velocity of the last grabbed frame

	// Euler angles (pitch X, yaw Y, roll Z). Current is damped toward Target.
	TargetRotation  gamemath.Vec3
	CurrentRotation gamemath.Vec3

	Speed   float64 // signed, positive when swinging toward -X
	Grabbed bool
	Patting bool
}

var Hand = donburi.NewComponentType[HandData]()
