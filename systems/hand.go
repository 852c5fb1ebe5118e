package systems

import (
	"math"

	"github.com/coedo/spankthefox/components"
	cfg "github.com/coedo/spankthefox/config"
	"github.com/coedo/spankthefox/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHand runs the grab cycle: press edge grabs, the grabbed hand follows
// the pointer and is classified into swing or pat, release edge lets go and the
// free hand eases back to rest. Rotation damping runs every frame.
func UpdateHand(ecs *ecs.ECS) {
	session, ok := sessionOf(ecs)
	if !ok || session.InMenu {
		return
	}
	handEntry, ok := components.Hand.First(ecs.World)
	if !ok {
		return
	}
	foxEntry, ok := components.Fox.First(ecs.World)
	if !ok {
		return
	}
	sessionEntry, _ := components.Session.First(ecs.World)
	input := components.Input.Get(sessionEntry)
	pointer := components.Pointer.Get(sessionEntry)
	dt := components.Clock.Get(sessionEntry).Delta

	hand := components.Hand.Get(handEntry)
	fox := components.Fox.Get(foxEntry)
	grab := input.Grab()
	tuning := cfg.Tuning.Hand

	if !hand.Grabbed && grab.JustPressed {
		hand.Grabbed = true
		// first grabbed frame measures from where the pointer is, not from rest
		hand.PrevPosition = pointer.World
	}

	if hand.Grabbed {
		hand.Position = pointer.World
		delta := hand.Position.Sub(hand.PrevPosition)
		hand.Velocity = delta.Div(dt)
		hand.Speed = gamemath.SignedSpeed(delta, dt)

		if !hand.Patting {
			hand.TargetRotation = tuning.DefaultRotation.Radians()
			hand.TargetRotation.Y = gamemath.LeanYaw(hand.Speed, tuning.RotationFactor, pointer.Ray.Direction)
		}

		if !session.FoxHit {
			classifyGesture(ecs, sessionEntry, hand, fox)
		}

		if grab.JustReleased {
			hand.Grabbed = false
			hand.Patting = false
			hand.TargetRotation = tuning.DefaultRotation.Radians()
		}

		hand.PrevPosition = hand.Position
	}

	if !hand.Grabbed {
		hand.Position = hand.Position.Lerp(cfg.Stage.HandRest, dt*tuning.ReturnRate)
		hand.TargetRotation = tuning.DefaultRotation.Radians()
	}

	hand.CurrentRotation = gamemath.DampRotation(hand.CurrentRotation, hand.TargetRotation, tuning.DampFactor, dt, tuning.MaxYaw*math.Pi/180)
}

// classifyGesture fires the hit or updates the pat state for a grabbed hand
func classifyGesture(ecs *ecs.ECS, sessionEntry *donburi.Entry, hand *components.HandData, fox *components.FoxData) {
	tuning := cfg.Tuning.Hand
	crossed := hand.Position.X < fox.Position.X

	if !hand.Patting && crossed && hand.Speed > tuning.MinHitSpeed {
		triggerHit(sessionEntry, hand, fox)
		return
	}

	inside := pointInFoxBounds(ecs, hand.Position)
	switch {
	case !crossed && hand.Speed < tuning.MinHitSpeed && inside:
		hand.Patting = true
		hand.TargetRotation = tuning.PatRotation.Radians()
	case hand.Patting && !inside:
		hand.Patting = false
		hand.TargetRotation = tuning.DefaultRotation.Radians()
	}
}
