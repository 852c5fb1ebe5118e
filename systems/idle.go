package systems

import (
	"math/rand"

	"github.com/coedo/spankthefox/components"
	cfg "github.com/coedo/spankthefox/config"
	"github.com/coedo/spankthefox/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// idleContext is what a scheduler state sees for one frame
type idleContext struct {
	anim    *components.IdleAnimationData
	fox     *components.FoxData
	patting bool
	dt      float64
	rng     *rand.Rand
	tuning  cfg.IdleTuning
	baseY   float64
}

// idleTransitions maps each scheduler state to its per-frame step
var idleTransitions = map[components.IdleState]func(*idleContext){
	components.IdleResting: stepResting,
	components.IdleJumping: stepJumping,
}

// UpdateIdleAnimation makes the fox hop in random bursts between random rests.
// The fox belongs to the hit reaction while it is flying, so nothing runs then.
func UpdateIdleAnimation(ecs *ecs.ECS) {
	session, ok := sessionOf(ecs)
	if !ok || session.FoxHit {
		return
	}
	foxEntry, ok := components.Fox.First(ecs.World)
	if !ok {
		return
	}
	sessionEntry, _ := components.Session.First(ecs.World)

	patting := false
	if handEntry, ok := components.Hand.First(ecs.World); ok {
		patting = components.Hand.Get(handEntry).Patting
	}

	ctx := &idleContext{
		anim:    components.IdleAnimation.Get(foxEntry),
		fox:     components.Fox.Get(foxEntry),
		patting: patting,
		dt:      components.Clock.Get(sessionEntry).Delta,
		rng:     session.Rand,
		tuning:  cfg.Tuning.Idle,
		baseY:   cfg.Stage.FoxStart.Y,
	}
	idleTransitions[ctx.anim.State](ctx)
}

func stepResting(c *idleContext) {
	if c.patting {
		return
	}
	c.anim.Elapsed += c.dt
	if c.anim.Elapsed >= c.anim.WaitTime {
		c.anim.State = components.IdleJumping
		c.anim.Elapsed = 0
		c.anim.HopCount = c.tuning.JumpsMin + c.rng.Intn(c.tuning.JumpsMax-c.tuning.JumpsMin+1)
	}
}

func stepJumping(c *idleContext) {
	c.anim.Elapsed += c.dt
	c.fox.Position.Y = gamemath.HopOffset(c.baseY, c.tuning.JumpHeight, c.anim.Elapsed, c.tuning.PerJumpDuration)

	if c.anim.Elapsed >= float64(c.anim.HopCount)*c.tuning.PerJumpDuration {
		c.anim.State = components.IdleResting
		c.anim.Elapsed = 0
		c.anim.WaitTime = c.tuning.WaitMin + c.rng.Float64()*(c.tuning.WaitMax-c.tuning.WaitMin)
		c.fox.Position.Y = c.baseY
	}
}
