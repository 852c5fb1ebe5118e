package systems

import (
	"math/rand"
	"testing"

	"github.com/coedo/spankthefox/components"
	cfg "github.com/coedo/spankthefox/config"
	"github.com/coedo/spankthefox/fonts"
	"github.com/coedo/spankthefox/gamemath"
	"github.com/coedo/spankthefox/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDelta = 1.0 / 60

type testStage struct {
	ecs     *ecs.ECS
	session *donburi.Entry
	fox     *donburi.Entry
	hand    *donburi.Entry
}

func newTestStage(t *testing.T) *testStage {
	t.Helper()
	if err := fonts.LoadDefaults(cfg.Result.FontSize); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}

	e := ecs.NewECS(donburi.NewWorld())
	s := &testStage{ecs: e}
	s.session = factory.CreateSession(e, rand.New(rand.NewSource(1)))
	s.fox = factory.CreateFox(e, nil)
	s.hand = factory.CreateHand(e, nil, nil)
	factory.CreateCamera(e)
	factory.CreateBoundsSpace(e, s.fox)

	s.sessionData().InMenu = false
	components.Clock.Get(s.session).Delta = testDelta
	components.Pointer.Get(s.session).Ray.Direction = gamemath.Vec3{Z: -1}
	return s
}

func (s *testStage) sessionData() *components.SessionData { return components.Session.Get(s.session) }
func (s *testStage) handData() *components.HandData       { return components.Hand.Get(s.hand) }
func (s *testStage) foxData() *components.FoxData         { return components.Fox.Get(s.fox) }
func (s *testStage) audio() *components.AudioData         { return components.Audio.Get(s.session) }
func (s *testStage) input() *components.InputData         { return components.Input.Get(s.session) }

// step feeds one frame of pointer input: the plane point and the button state.
func (s *testStage) step(world gamemath.Vec3, pressed bool) {
	in := s.input()
	in.Previous = in.Current
	in.Current = pressed
	components.Pointer.Get(s.session).World = world

	UpdateHand(s.ecs)
	UpdateHitReaction(s.ecs)
	UpdateMenu(s.ecs)
	UpdateIdleAnimation(s.ecs)
}

func (s *testStage) ops() []components.AudioOp {
	var ops []components.AudioOp
	for _, cmd := range s.audio().Pending {
		ops = append(ops, cmd.Op)
	}
	return ops
}

func hasOp(cmds []components.AudioCommand, op components.AudioOp) (components.AudioCommand, bool) {
	for _, c := range cmds {
		if c.Op == op {
			return c, true
		}
	}
	return components.AudioCommand{}, false
}

func near(a, b, eps float64) bool {
	d := a - b
	return d < eps && d > -eps
}
