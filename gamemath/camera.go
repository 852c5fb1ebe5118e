package gamemath

import "math"

// NearPlane is the closest view depth that still projects onto the screen.
const NearPlane = 0.01

// Camera is a perspective camera with a vertical field of view in degrees.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3
	FovY     float64
}

// Basis returns the camera's forward, right and up unit vectors.
func (c Camera) Basis() (forward, right, up Vec3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward)
	return forward, right, up
}

func (c Camera) tanHalfFov() float64 {
	return math.Tan(c.FovY * math.Pi / 180 / 2)
}

// RayFromScreen returns the ray from the camera through screen pixel (sx, sy)
// on a w x h screen.
func (c Camera) RayFromScreen(sx, sy, w, h float64) Ray {
	forward, right, up := c.Basis()
	th := c.tanHalfFov()
	aspect := w / h

	ndcX := 2*sx/w - 1
	ndcY := 1 - 2*sy/h

	dir := forward.
		Add(right.Scale(ndcX * th * aspect)).
		Add(up.Scale(ndcY * th)).
		Normalize()

	return Ray{Origin: c.Position, Direction: dir}
}

// Project maps a world point to screen pixels. ok is false when the point lies
// behind the near plane.
func (c Camera) Project(p Vec3, w, h float64) (sx, sy, depth float64, ok bool) {
	forward, right, up := c.Basis()
	v := p.Sub(c.Position)

	depth = v.Dot(forward)
	if depth <= NearPlane {
		return 0, 0, depth, false
	}

	th := c.tanHalfFov()
	aspect := w / h
	sx = (v.Dot(right)/(depth*th*aspect) + 1) * w / 2
	sy = (1 - v.Dot(up)/(depth*th)) * h / 2
	return sx, sy, depth, true
}

// PixelsPerUnit returns how many screen pixels one world unit spans at the given depth.
func (c Camera) PixelsPerUnit(depth, h float64) float64 {
	return h / (2 * depth * c.tanHalfFov())
}

// Depth returns the view-space depth of p.
func (c Camera) Depth(p Vec3) float64 {
	forward, _, _ := c.Basis()
	return p.Sub(c.Position).Dot(forward)
}
