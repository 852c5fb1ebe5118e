package archetypes

import (
	"github.com/coedo/spankthefox/components"
	cfg "github.com/coedo/spankthefox/config"
	"github.com/coedo/spankthefox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Fox = newArchetype(
		tags.Fox,
		components.Fox,
		components.IdleAnimation,
	)
	Hand = newArchetype(
		tags.Hand,
		components.Hand,
	)
	Session = newArchetype(
		components.Session,
		components.Result,
		components.Audio,
		components.Input,
		components.Clock,
		components.Pointer,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Bounds = newArchetype(
		components.Bounds,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
