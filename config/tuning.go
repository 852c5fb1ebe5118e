package config

import (
	_ "embed"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/coedo/spankthefox/gamemath"
)

//go:embed tuning.toml
var tuningTOML string

// Euler is a rotation in degrees as written in the tuning file
type Euler struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
	Z float64 `toml:"z"`
}

// Radians converts the rotation to a radian vector
func (e Euler) Radians() gamemath.Vec3 {
	return gamemath.Vec3{
		X: e.X * math.Pi / 180,
		Y: e.Y * math.Pi / 180,
		Z: e.Z * math.Pi / 180,
	}
}

// HandTuning contains the gesture classifier and hand controller values
type HandTuning struct {
	MinHitSpeed     float64 `toml:"min_hit_speed"`
	Scale           float64 `toml:"scale"`
	RotationFactor  float64 `toml:"rotation_factor"` // yaw per unit of speed
	DampFactor      float64 `toml:"damp_factor"`     // rotation damping rate
	ReturnRate      float64 `toml:"return_rate"`     // rest pose easing rate
	MaxYaw          float64 `toml:"max_yaw"`
	DefaultRotation Euler   `toml:"default_rotation"`
	PatRotation     Euler   `toml:"pat_rotation"`
}

// FoxTuning contains the target's size and post-hit physics values
type FoxTuning struct {
	Scale             float64 `toml:"scale"`
	BoundsDepth       float64 `toml:"bounds_depth"`
	Gravity           float64 `toml:"gravity"`
	AttenuationFactor float64 `toml:"attenuation_factor"`
}

// IdleTuning contains the idle hop scheduler ranges
type IdleTuning struct {
	JumpHeight      float64 `toml:"jump_height"`
	PerJumpDuration float64 `toml:"per_jump_duration"`
	WaitMin         float64 `toml:"wait_min"`
	WaitMax         float64 `toml:"wait_max"`
	JumpsMin        int     `toml:"jumps_min"`
	JumpsMax        int     `toml:"jumps_max"`
}

// AudioTuning contains clip selection values
type AudioTuning struct {
	HitSoundCount    int       `toml:"hit_sound_count"`
	ScreamThresholds []float64 `toml:"scream_thresholds"`
	PitchVariation   float64   `toml:"pitch_variation"`
}

// TuningConfig is the decoded tuning file
type TuningConfig struct {
	Hand  HandTuning  `toml:"hand"`
	Fox   FoxTuning   `toml:"fox"`
	Idle  IdleTuning  `toml:"idle"`
	Audio AudioTuning `toml:"audio"`
}

// Tuning holds the gameplay tuning values
var Tuning TuningConfig

func init() {
	t, err := ParseTuning(tuningTOML)
	if err != nil {
		panic(err)
	}
	Tuning = t
}

// ParseTuning decodes and validates tuning values
func ParseTuning(data string) (TuningConfig, error) {
	var t TuningConfig
	if _, err := toml.Decode(data, &t); err != nil {
		return t, fmt.Errorf("failed to decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Validate rejects values the systems cannot run with
func (t TuningConfig) Validate() error {
	if t.Idle.PerJumpDuration <= 0 {
		return fmt.Errorf("idle.per_jump_duration must be positive, got %v", t.Idle.PerJumpDuration)
	}
	if t.Idle.WaitMax < t.Idle.WaitMin {
		return fmt.Errorf("idle.wait_max %v is below idle.wait_min %v", t.Idle.WaitMax, t.Idle.WaitMin)
	}
	if t.Idle.JumpsMin < 1 || t.Idle.JumpsMax < t.Idle.JumpsMin {
		return fmt.Errorf("idle jump range [%d, %d] is invalid", t.Idle.JumpsMin, t.Idle.JumpsMax)
	}
	if t.Audio.HitSoundCount < 1 {
		return fmt.Errorf("audio.hit_sound_count must be at least 1, got %d", t.Audio.HitSoundCount)
	}
	if len(t.Audio.ScreamThresholds) == 0 {
		return fmt.Errorf("audio.scream_thresholds is empty")
	}
	for i := 1; i < len(t.Audio.ScreamThresholds); i++ {
		if t.Audio.ScreamThresholds[i] <= t.Audio.ScreamThresholds[i-1] {
			return fmt.Errorf("audio.scream_thresholds must be increasing at index %d", i)
		}
	}
	return nil
}

// ScreamCount returns the number of scream tiers
func (t TuningConfig) ScreamCount() int {
	return len(t.Audio.ScreamThresholds)
}
