package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// SessionData holds the top-level mode flags of the running game
type SessionData struct {
	InMenu bool
	FoxHit bool // post-hit reaction is playing

	// Process-wide generator, seeded once at startup
	Rand *rand.Rand
}

var Session = donburi.NewComponentType[SessionData]()
