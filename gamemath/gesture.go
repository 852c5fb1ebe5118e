package gamemath

import "math"

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// SignedSpeed returns |delta|/dt signed so that motion toward -X is positive.
func SignedSpeed(delta Vec3, dt float64) float64 {
	return delta.Length() / dt * -Sign(delta.X)
}

// RayAngle returns the yaw correction for a pointer ray, zero when looking down -Z.
func RayAngle(dir Vec3) float64 {
	return math.Atan2(dir.Z, dir.X) + math.Pi/2
}

// LeanYaw returns the hand yaw for a swing at the given signed speed.
func LeanYaw(speed, rotationFactor float64, rayDir Vec3) float64 {
	return -speed*rotationFactor - RayAngle(rayDir)
}

// ScreamBucket returns the smallest i with thresholds[i] <= speed < thresholds[i+1],
// or the last bucket when no range matches.
func ScreamBucket(speed float64, thresholds []float64) int {
	for i := 0; i < len(thresholds)-1; i++ {
		if speed >= thresholds[i] && speed < thresholds[i+1] {
			return i
		}
	}
	return len(thresholds) - 1
}

// AttenuatedVolume returns k/dist clamped to at most 1.
func AttenuatedVolume(k, dist float64) float64 {
	return math.Min(1, k/dist)
}

// HopOffset returns the vertical position of a hop cycle at the given elapsed time.
func HopOffset(base, height, elapsed, perJump float64) float64 {
	return base + height*math.Abs(math.Sin(elapsed*math.Pi/perJump))
}

// Lerp moves a toward b by fraction t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// DampRotation eases current toward target by rate*dt and clamps yaw to at most maxYaw.
func DampRotation(current, target Vec3, rate, dt, maxYaw float64) Vec3 {
	r := current.Lerp(target, dt*rate)
	r.Y = math.Min(r.Y, maxYaw)
	return r
}
