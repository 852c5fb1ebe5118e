package systems

import (
	"testing"

	"github.com/coedo/spankthefox/components"
	cfg "github.com/coedo/spankthefox/config"
)

func TestIdleStartsHopping(t *testing.T) {
	s := newTestStage(t)
	anim := components.IdleAnimation.Get(s.fox)
	if *anim != (components.IdleAnimationData{}) {
		t.Fatalf("scheduler not zero-valued at start: %+v", *anim)
	}

	UpdateIdleAnimation(s.ecs)

	if anim.State != components.IdleJumping {
		t.Fatalf("state = %v, want jumping", anim.State)
	}
	if anim.Elapsed != 0 {
		t.Errorf("elapsed = %v, want reset to 0", anim.Elapsed)
	}
	tuning := cfg.Tuning.Idle
	if anim.HopCount < tuning.JumpsMin || anim.HopCount > tuning.JumpsMax {
		t.Errorf("hop count %d outside [%d, %d]", anim.HopCount, tuning.JumpsMin, tuning.JumpsMax)
	}
}

func TestIdleBurstReturnsToRest(t *testing.T) {
	s := newTestStage(t)
	anim := components.IdleAnimation.Get(s.fox)
	anim.State = components.IdleJumping
	anim.HopCount = 2
	tuning := cfg.Tuning.Idle
	base := cfg.Stage.FoxStart.Y

	frames := 0
	for anim.State == components.IdleJumping {
		UpdateIdleAnimation(s.ecs)
		frames++
		if y := s.foxData().Position.Y; y < base-1e-12 || y > base+tuning.JumpHeight+1e-12 {
			t.Fatalf("frame %d: y = %v outside hop range", frames, y)
		}
		if frames > 1000 {
			t.Fatal("burst never ended")
		}
	}

	burst := float64(anim.HopCount) * tuning.PerJumpDuration
	if got := float64(frames) * testDelta; got < burst || got > burst+testDelta+1e-9 {
		t.Errorf("burst lasted %vs, want %vs", got, burst)
	}
	if anim.Elapsed != 0 {
		t.Errorf("elapsed = %v, want 0", anim.Elapsed)
	}
	if anim.WaitTime < tuning.WaitMin || anim.WaitTime > tuning.WaitMax {
		t.Errorf("wait %v outside [%v, %v]", anim.WaitTime, tuning.WaitMin, tuning.WaitMax)
	}
	if y := s.foxData().Position.Y; y != base {
		t.Errorf("landed at %v, want %v", y, base)
	}
}

func TestIdleRestingSuspendedWhilePatting(t *testing.T) {
	s := newTestStage(t)
	anim := components.IdleAnimation.Get(s.fox)
	anim.State = components.IdleResting
	anim.WaitTime = 1
	anim.Elapsed = 0.5
	s.handData().Patting = true

	for i := 0; i < 500; i++ {
		UpdateIdleAnimation(s.ecs)
	}
	if anim.State != components.IdleResting || anim.Elapsed != 0.5 {
		t.Fatalf("scheduler advanced while patting: %+v", *anim)
	}

	s.handData().Patting = false
	UpdateIdleAnimation(s.ecs)
	if !near(anim.Elapsed, 0.5+testDelta, 1e-12) {
		t.Errorf("elapsed = %v, want resumed from 0.5", anim.Elapsed)
	}
}

func TestIdleNotRunDuringHit(t *testing.T) {
	s := newTestStage(t)
	s.sessionData().FoxHit = true
	anim := components.IdleAnimation.Get(s.fox)

	for i := 0; i < 10; i++ {
		UpdateIdleAnimation(s.ecs)
	}
	if *anim != (components.IdleAnimationData{}) {
		t.Errorf("scheduler ran during a hit: %+v", *anim)
	}
}

func TestIdleRunsInMenu(t *testing.T) {
	s := newTestStage(t)
	s.sessionData().InMenu = true

	UpdateIdleAnimation(s.ecs)
	if components.IdleAnimation.Get(s.fox).State != components.IdleJumping {
		t.Error("fox should hop behind the menu")
	}
}
