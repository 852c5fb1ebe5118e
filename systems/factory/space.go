package factory

import (
	"github.com/coedo/spankthefox/archetypes"
	"github.com/coedo/spankthefox/components"
	cfg "github.com/coedo/spankthefox/config"
	"github.com/coedo/spankthefox/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBoundsSpace builds the collision space over the interaction plane and
// registers the fox box and the hand probe in it.
func CreateBoundsSpace(ecs *ecs.ECS, fox *donburi.Entry) *donburi.Entry {
	stage := cfg.Stage
	units := stage.BoundsUnitsPerWorld

	width := int((stage.PlaneMax.X - stage.PlaneMin.X) * units)
	height := int((stage.PlaneMax.Y - stage.PlaneMin.Y) * units)
	space := resolv.NewSpace(width, height, stage.BoundsCellSize, stage.BoundsCellSize)

	bounds := components.BoundsData{
		Space:         space,
		UnitsPerWorld: units,
		OriginX:       stage.PlaneMin.X,
		OriginY:       stage.PlaneMin.Y,
	}

	foxData := components.Fox.Get(fox)
	x, y := bounds.ToSpace(foxData.BoundsMin.X, foxData.BoundsMin.Y)
	w := (foxData.BoundsMax.X - foxData.BoundsMin.X) * units
	h := (foxData.BoundsMax.Y - foxData.BoundsMin.Y) * units
	bounds.Fox = resolv.NewObject(x, y, w, h, tags.ResolvFox)
	bounds.Fox.Data = fox

	bounds.Probe = resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	space.Add(bounds.Fox, bounds.Probe)

	entry := archetypes.Bounds.Spawn(ecs)
	components.Bounds.SetValue(entry, bounds)
	return entry
}
