package systems

import (
	"github.com/coedo/spankthefox/components"
	cfg "github.com/coedo/spankthefox/config"
	"github.com/coedo/spankthefox/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHitReaction flies the fox after a hit and fades its scream with
// distance from the origin. A press edge during the reaction resets the stage.
func UpdateHitReaction(ecs *ecs.ECS) {
	session, ok := sessionOf(ecs)
	if !ok || session.InMenu || !session.FoxHit {
		return
	}
	foxEntry, ok := components.Fox.First(ecs.World)
	if !ok {
		return
	}
	sessionEntry, _ := components.Session.First(ecs.World)
	dt := components.Clock.Get(sessionEntry).Delta
	audio := components.Audio.Get(sessionEntry)
	fox := components.Fox.Get(foxEntry)

	// v += 1/2 g dt, then p += v dt
	fox.Velocity.Y += 0.5 * cfg.Tuning.Fox.Gravity * dt
	fox.Position = fox.Position.Add(fox.Velocity.Scale(dt))

	volume := gamemath.AttenuatedVolume(cfg.Tuning.Fox.AttenuationFactor, fox.Position.Length())
	audio.Queue(components.AudioSetScreamVolume, audio.ScreamIndex, volume)

	if handEntry, ok := components.Hand.First(ecs.World); ok {
		hand := components.Hand.Get(handEntry)
		hand.Position = hand.Position.Add(fox.Velocity.Scale(dt))
	}

	if components.Input.Get(sessionEntry).Grab().JustPressed {
		resetStage(ecs)
	}
}

// resetStage ends the hit reaction and puts the fox back at its start point
func resetStage(ecs *ecs.ECS) {
	sessionEntry, _ := components.Session.First(ecs.World)
	session := components.Session.Get(sessionEntry)
	audio := components.Audio.Get(sessionEntry)

	session.FoxHit = false
	clearResult(components.Result.Get(sessionEntry))

	if handEntry, ok := components.Hand.First(ecs.World); ok {
		components.Hand.Get(handEntry).Speed = 0
	}
	if foxEntry, ok := components.Fox.First(ecs.World); ok {
		fox := components.Fox.Get(foxEntry)
		fox.Position = cfg.Stage.FoxStart
		fox.Velocity = gamemath.Zero
	}
	if camEntry, ok := components.Camera.First(ecs.World); ok {
		camera := components.Camera.Get(camEntry)
		camera.Target = camera.Position.Add(cfg.Camera.LookOffset)
	}

	audio.Queue(components.AudioStopScream, audio.ScreamIndex, 0)
	audio.Queue(components.AudioStopHit, audio.HitIndex, 0)
	audio.Queue(components.AudioPlayMusic, 0, 0)
}
