package factory

import (
	"math/rand"
	"time"

	"github.com/coedo/spankthefox/archetypes"
	"github.com/coedo/spankthefox/assets"
	"github.com/coedo/spankthefox/components"
	cfg "github.com/coedo/spankthefox/config"
	"github.com/coedo/spankthefox/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the singleton holding mode flags, input, clock and audio
// state. A nil rng is replaced by one seeded from the wall clock.
func CreateSession(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		InMenu: !cfg.Debug.SkipMenu,
		Rand:   rng,
	})
	return session
}

// CreateFox spawns the fox at the stage start point with its pat box around it
func CreateFox(ecs *ecs.ECS, sprite *ebiten.Image) *donburi.Entry {
	fox := archetypes.Fox.Spawn(ecs, components.Billboard)

	start := cfg.Stage.FoxStart
	half := gamemath.Vec3{
		X: cfg.Tuning.Fox.Scale / 2,
		Y: cfg.Tuning.Fox.Scale / 2,
		Z: cfg.Tuning.Fox.BoundsDepth / 2,
	}
	components.Fox.SetValue(fox, components.FoxData{
		Position:  start,
		BoundsMin: start.Sub(half),
		BoundsMax: start.Add(half),
	})
	components.Billboard.SetValue(fox, components.BillboardData{
		Image: sprite,
		Size:  cfg.Tuning.Fox.Scale,
	})
	return fox
}

// CreateHand spawns the hand at rest in the default pose
func CreateHand(ecs *ecs.ECS, mesh *assets.Mesh, texture *ebiten.Image) *donburi.Entry {
	hand := archetypes.Hand.Spawn(ecs, components.Model)

	pose := cfg.Tuning.Hand.DefaultRotation.Radians()
	components.Hand.SetValue(hand, components.HandData{
		Position:        cfg.Stage.HandRest,
		PrevPosition:    cfg.Stage.HandRest,
		TargetRotation:  pose,
		CurrentRotation: pose,
	})
	components.Model.SetValue(hand, components.ModelData{
		Mesh:    mesh,
		Texture: texture,
		Scale:   cfg.Tuning.Hand.Scale,
	})
	return hand
}
