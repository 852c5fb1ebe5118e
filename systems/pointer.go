package systems

import (
	"github.com/coedo/spankthefox/components"
	cfg "github.com/coedo/spankthefox/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePointer casts the cursor through the camera onto the interaction plane.
// Runs every game-mode frame regardless of grab state.
func UpdatePointer(ecs *ecs.ECS) {
	session, ok := sessionOf(ecs)
	if !ok || session.InMenu {
		return
	}
	camEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	entry, _ := components.Input.First(ecs.World)
	input := components.Input.Get(entry)
	pointer := components.Pointer.Get(entry)
	camera := components.Camera.Get(camEntry)

	pointer.Screen = input.Cursor
	pointer.Ray = camera.RayFromScreen(input.Cursor.X, input.Cursor.Y, float64(cfg.C.Width), float64(cfg.C.Height))
	pointer.World = pointer.Ray.IntersectDepthPlane()
}

func sessionOf(ecs *ecs.ECS) (*components.SessionData, bool) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}
