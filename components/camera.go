package components

import (
	"github.com/coedo/spankthefox/gamemath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	gamemath.Camera
}

var Camera = donburi.NewComponentType[CameraData]()
