package systems

import (
	"math"
	"strings"
	"testing"

	"github.com/coedo/spankthefox/components"
	cfg "github.com/coedo/spankthefox/config"
	"github.com/coedo/spankthefox/gamemath"
)

func TestGrabOnPressEdge(t *testing.T) {
	s := newTestStage(t)

	s.step(gamemath.Vec3{X: 3, Y: 1}, false)
	if s.handData().Grabbed {
		t.Fatal("hand grabbed without a press")
	}

	s.step(gamemath.Vec3{X: 3, Y: 1}, true)
	hand := s.handData()
	if !hand.Grabbed {
		t.Fatal("press edge should grab the hand")
	}
	if hand.Position != (gamemath.Vec3{X: 3, Y: 1}) {
		t.Errorf("grabbed hand at %+v, want pointer sample", hand.Position)
	}
	if hand.Speed != 0 {
		t.Errorf("speed on grab frame = %v, want 0", hand.Speed)
	}
}

func TestSwingThroughFoxHits(t *testing.T) {
	s := newTestStage(t)

	s.step(gamemath.Vec3{X: 3, Y: 1}, true)
	s.step(gamemath.Vec3{X: -1, Y: 1}, true)

	if !s.sessionData().FoxHit {
		t.Fatal("fast swing past the fox should hit")
	}

	hand := s.handData()
	if !near(hand.Speed, 240, 1e-6) {
		t.Errorf("speed = %v, want 240", hand.Speed)
	}

	result := components.Result.Get(s.session)
	if !strings.HasPrefix(result.Text, "YOU SPANKED THE FOX AT\n") || !strings.HasSuffix(result.Text, "KILOMETERS PER HOUR") {
		t.Errorf("result text = %q", result.Text)
	}
	if result.Width <= 0 || result.Height <= 0 {
		t.Errorf("result not measured: %v x %v", result.Width, result.Height)
	}

	audio := s.audio()
	if audio.HitIndex < 0 || audio.HitIndex >= cfg.Tuning.Audio.HitSoundCount {
		t.Errorf("hit index %d out of range", audio.HitIndex)
	}
	if want := gamemath.ScreamBucket(hand.Speed, cfg.Tuning.Audio.ScreamThresholds); audio.ScreamIndex != want {
		t.Errorf("scream index = %d, want %d", audio.ScreamIndex, want)
	}

	scream, ok := hasOp(audio.Pending, components.AudioPlayScream)
	if !ok {
		t.Fatal("scream not queued")
	}
	if v := cfg.Tuning.Audio.PitchVariation; scream.Value < 1-v || scream.Value > 1+v {
		t.Errorf("pitch = %v, want within 1±%v", scream.Value, v)
	}
	if _, ok := hasOp(audio.Pending, components.AudioPlayHit); !ok {
		t.Error("hit sound not queued")
	}
	if _, ok := hasOp(audio.Pending, components.AudioStopMusic); !ok {
		t.Error("music not stopped")
	}

	// the same frame's kinematics only bends Y
	if v := s.foxData().Velocity; !near(v.X, -240, 1e-6) || v.Z != 0 {
		t.Errorf("fox velocity = %+v, want pointer velocity", v)
	}
}

func TestHitFiresOncePerGrab(t *testing.T) {
	s := newTestStage(t)

	s.step(gamemath.Vec3{X: 3, Y: 1}, true)
	s.step(gamemath.Vec3{X: -1, Y: 1}, true)
	hits := 0
	for _, op := range s.ops() {
		if op == components.AudioPlayHit {
			hits++
		}
	}

	s.step(gamemath.Vec3{X: -5, Y: 1}, true)
	s.step(gamemath.Vec3{X: -9, Y: 1}, true)
	for _, op := range s.ops() {
		if op == components.AudioPlayHit {
			hits--
		}
	}
	if hits != 0 {
		t.Errorf("extra hits registered while the fox was flying")
	}
}

func TestNoHitConditions(t *testing.T) {
	tests := []struct {
		name     string
		from, to gamemath.Vec3
	}{
		{"too slow", gamemath.Vec3{X: 0.05, Y: 5}, gamemath.Vec3{X: -0.05, Y: 5}},
		{"wrong direction", gamemath.Vec3{X: -4, Y: 1}, gamemath.Vec3{X: -2, Y: 1}},
		{"not crossed", gamemath.Vec3{X: 6, Y: 1}, gamemath.Vec3{X: 2, Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStage(t)
			s.step(tt.from, true)
			s.step(tt.to, true)
			if s.sessionData().FoxHit {
				t.Error("unexpected hit")
			}
		})
	}
}

func TestPatInsideBounds(t *testing.T) {
	s := newTestStage(t)
	fox := s.foxData().Position

	s.step(gamemath.Vec3{X: fox.X + 0.5, Y: fox.Y}, true)
	s.step(gamemath.Vec3{X: fox.X + 0.45, Y: fox.Y}, true)

	hand := s.handData()
	if !hand.Patting {
		t.Fatal("slow motion inside the box should pat")
	}
	if hand.TargetRotation != cfg.Tuning.Hand.PatRotation.Radians() {
		t.Errorf("target rotation = %+v, want pat pose", hand.TargetRotation)
	}

	// fast swing while patting does not hit
	s.step(gamemath.Vec3{X: fox.X - 0.5, Y: fox.Y}, true)
	if s.sessionData().FoxHit {
		t.Error("hit registered while patting")
	}

	s.step(gamemath.Vec3{X: fox.X + 8, Y: fox.Y}, true)
	hand = s.handData()
	if hand.Patting {
		t.Error("leaving the box should stop patting")
	}
	if hand.TargetRotation != cfg.Tuning.Hand.DefaultRotation.Radians() {
		t.Errorf("target rotation = %+v, want default pose", hand.TargetRotation)
	}
}

func TestReleaseLetsGo(t *testing.T) {
	s := newTestStage(t)
	fox := s.foxData().Position

	s.step(gamemath.Vec3{X: fox.X + 0.5, Y: fox.Y}, true)
	s.step(gamemath.Vec3{X: fox.X + 0.45, Y: fox.Y}, true)
	s.step(gamemath.Vec3{X: fox.X + 0.45, Y: fox.Y}, false)

	hand := s.handData()
	if hand.Grabbed || hand.Patting {
		t.Fatalf("released hand: grabbed=%v patting=%v", hand.Grabbed, hand.Patting)
	}
	if hand.TargetRotation != cfg.Tuning.Hand.DefaultRotation.Radians() {
		t.Errorf("target rotation = %+v, want default pose", hand.TargetRotation)
	}

	before := hand.Position.Sub(cfg.Stage.HandRest).Length()
	s.step(gamemath.Vec3{}, false)
	after := s.handData().Position.Sub(cfg.Stage.HandRest).Length()
	if after >= before {
		t.Errorf("free hand not easing to rest: %v -> %v", before, after)
	}
}

func TestYawNeverExceedsQuarterTurn(t *testing.T) {
	s := newTestStage(t)

	// swinging away from the fox leans the target yaw far past 90 degrees
	x := -10.0
	s.step(gamemath.Vec3{X: x, Y: 8}, true)
	for i := 0; i < 120; i++ {
		x += 2
		s.step(gamemath.Vec3{X: x, Y: 8}, true)
		if y := s.handData().CurrentRotation.Y; y > math.Pi/2+1e-12 {
			t.Fatalf("frame %d: yaw %v exceeds pi/2", i, y)
		}
	}
	if s.handData().TargetRotation.Y <= math.Pi/2 {
		t.Fatal("test swing did not push the target past the clamp")
	}
}

func TestMenuPressDoesNotGrab(t *testing.T) {
	s := newTestStage(t)
	s.sessionData().InMenu = true

	s.step(gamemath.Vec3{X: 3, Y: 1}, true)
	if s.sessionData().InMenu {
		t.Fatal("press should leave the menu")
	}
	if s.handData().Grabbed {
		t.Error("the press that left the menu also grabbed the hand")
	}
}
