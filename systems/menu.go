package systems

import (
	"github.com/coedo/spankthefox/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMenu leaves the menu on a press edge. It runs after the gameplay
// systems so the press that starts the game does not also grab the hand.
func UpdateMenu(ecs *ecs.ECS) {
	session, ok := sessionOf(ecs)
	if !ok || !session.InMenu {
		return
	}
	entry, _ := components.Input.First(ecs.World)
	if components.Input.Get(entry).Grab().JustPressed {
		session.InMenu = false
	}
}
