package systems

import (
	"github.com/coedo/spankthefox/components"
	"github.com/coedo/spankthefox/gamemath"
	"github.com/coedo/spankthefox/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// pointInFoxBounds reports whether p lies inside the fox box on both plane axes.
// The probe is moved to p and checked against fox-tagged objects in the space;
// cell sharing is only a broad phase, so the rectangle is tested exactly.
func pointInFoxBounds(ecs *ecs.ECS, p gamemath.Vec3) bool {
	entry, ok := components.Bounds.First(ecs.World)
	if !ok {
		return false
	}
	bounds := components.Bounds.Get(entry)
	if bounds.Space == nil || bounds.Probe == nil {
		return false
	}

	x, y := bounds.ToSpace(p.X, p.Y)
	bounds.Probe.X = x
	bounds.Probe.Y = y
	bounds.Probe.Update()

	check := bounds.Probe.Check(0, 0, tags.ResolvFox)
	if check == nil {
		return false
	}
	for _, o := range check.Objects {
		if containsPoint(o, x, y) {
			return true
		}
	}
	return false
}

func containsPoint(o *resolv.Object, x, y float64) bool {
	return x >= o.X && x <= o.X+o.W && y >= o.Y && y <= o.Y+o.H
}
