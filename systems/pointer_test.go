package systems

import (
	"testing"

	"github.com/coedo/spankthefox/components"
	cfg "github.com/coedo/spankthefox/config"
	"github.com/coedo/spankthefox/gamemath"
)

func TestPointerProjectsOntoPlane(t *testing.T) {
	s := newTestStage(t)
	in := s.input()
	in.Cursor.X = float64(cfg.C.Width) / 2
	in.Cursor.Y = float64(cfg.C.Height) / 2

	UpdatePointer(s.ecs)

	pointer := components.Pointer.Get(s.session)
	want := gamemath.Vec3{X: cfg.Camera.Position.X, Y: cfg.Camera.Position.Y}
	if pointer.World.Sub(want).Length() > 1e-9 {
		t.Errorf("centre of screen maps to %+v, want %+v", pointer.World, want)
	}
	if pointer.Screen != in.Cursor {
		t.Errorf("screen sample = %+v, want %+v", pointer.Screen, in.Cursor)
	}
}

func TestPointerCornersStayOnPlane(t *testing.T) {
	s := newTestStage(t)
	corners := [][2]float64{{0, 0}, {float64(cfg.C.Width), 0}, {0, float64(cfg.C.Height)}, {float64(cfg.C.Width), float64(cfg.C.Height)}}

	for _, c := range corners {
		in := s.input()
		in.Cursor.X, in.Cursor.Y = c[0], c[1]
		UpdatePointer(s.ecs)
		if z := components.Pointer.Get(s.session).World.Z; z > 1e-9 || z < -1e-9 {
			t.Errorf("cursor %v: z = %v, want 0", c, z)
		}
	}
}

func TestPointerIdleInMenu(t *testing.T) {
	s := newTestStage(t)
	s.sessionData().InMenu = true
	s.input().Cursor.X = 100

	UpdatePointer(s.ecs)

	if got := components.Pointer.Get(s.session).World; got != gamemath.Zero {
		t.Errorf("pointer updated in menu: %+v", got)
	}
}

func TestPointInFoxBounds(t *testing.T) {
	s := newTestStage(t)
	fox := s.foxData()

	tests := []struct {
		name string
		p    gamemath.Vec3
		want bool
	}{
		{"centre", fox.Position, true},
		{"near min corner", fox.BoundsMin.Add(gamemath.Vec3{X: 0.01, Y: 0.01}), true},
		{"near max corner", fox.BoundsMax.Sub(gamemath.Vec3{X: 0.01, Y: 0.01}), true},
		{"left", gamemath.Vec3{X: fox.BoundsMin.X - 0.1, Y: fox.Position.Y}, false},
		{"above", gamemath.Vec3{X: fox.Position.X, Y: fox.BoundsMax.Y + 0.1}, false},
		{"far away", gamemath.Vec3{X: 15, Y: -8}, false},
		{"off the space", gamemath.Vec3{X: 100, Y: 100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pointInFoxBounds(s.ecs, tt.p); got != tt.want {
				t.Errorf("pointInFoxBounds(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestResultPopsIn(t *testing.T) {
	s := newTestStage(t)
	result := components.Result.Get(s.session)
	showResult(result, 123)

	if result.Text != "YOU SPANKED THE FOX AT\n123 KILOMETERS PER HOUR" {
		t.Fatalf("text = %q", result.Text)
	}
	if result.Scale != cfg.Result.PopStartScale {
		t.Errorf("scale = %v, want %v", result.Scale, cfg.Result.PopStartScale)
	}

	for i := 0; result.Pop != nil; i++ {
		UpdateResult(s.ecs)
		if i > 600 {
			t.Fatal("pop-in never finished")
		}
	}
	if !near(result.Scale, 1, 1e-6) {
		t.Errorf("final scale = %v, want 1", result.Scale)
	}
}
