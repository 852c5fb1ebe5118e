package systems

import (
	"github.com/coedo/spankthefox/components"
	cfg "github.com/coedo/spankthefox/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the pointer and exit keys into the InputData singleton.
// Must run before every gameplay system.
func UpdateInput(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	x, y := ebiten.CursorPosition()
	input.Cursor.X = float64(x)
	input.Cursor.Y = float64(y)

	input.Previous = input.Current
	input.Current = ebiten.IsMouseButtonPressed(cfg.Input.GrabButton)

	input.ExitRequested = false
	for _, key := range cfg.Input.ExitKeys {
		if inpututil.IsKeyJustPressed(key) {
			input.ExitRequested = true
		}
	}
}

// UpdateClock advances the frame clock by one fixed tick
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	clock.Delta = 1 / float64(ebiten.TPS())
	clock.Elapsed += clock.Delta
}

// ApplyCursor hides the system cursor while the hand is grabbed.
// The window is only touched when the wanted mode changes.
func ApplyCursor(ecs *ecs.ECS) {
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	handEntry, ok := components.Hand.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)
	hide := components.Hand.Get(handEntry).Grabbed

	if hide == input.CursorHidden {
		return
	}
	input.CursorHidden = hide
	if hide {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}
