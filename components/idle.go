package components

import "github.com/yohamta/donburi"

// IdleState is a state of the idle hop scheduler
type IdleState int

const (
	IdleResting IdleState = iota
	IdleJumping
)

func (s IdleState) String() string {
	switch s {
	case IdleResting:
		return "resting"
	case IdleJumping:
		return "jumping"
	}
	return "unknown"
}

// IdleAnimationData is the scheduler state. The zero value is a fresh scheduler.
type IdleAnimationData struct {
	State    IdleState
	Elapsed  float64
	WaitTime float64 // rest duration before the next burst
	HopCount int     // hops in the current burst
}

var IdleAnimation = donburi.NewComponentType[IdleAnimationData]()
