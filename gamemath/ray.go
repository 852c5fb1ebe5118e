package gamemath

// Ray is a half-line starting at Origin along Direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectDepthPlane returns the point where the ray crosses the plane z == 0.
// A ray parallel to the plane (Direction.Z == 0) is not guarded against and yields
// non-finite coordinates; the stage camera never produces one.
func (r Ray) IntersectDepthPlane() Vec3 {
	t := -r.Origin.Z / r.Direction.Z
	return r.At(t)
}
