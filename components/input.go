package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ActionState represents the temporal state of a button
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the pointer sample of the current frame.
// JustPressed/JustReleased are computed by comparing with the previous frame.
type InputData struct {
	Cursor        math.Vec2
	Current       bool // grab button held this frame
	Previous      bool // grab button held last frame
	ExitRequested bool

	CursorHidden bool // cursor mode last applied to the window
}

// Grab returns the grab button state derived from current vs previous frame
func (i *InputData) Grab() ActionState {
	return ActionState{
		Pressed:      i.Current,
		JustPressed:  i.Current && !i.Previous,
		JustReleased: !i.Current && i.Previous,
	}
}

var Input = donburi.NewComponentType[InputData]()
