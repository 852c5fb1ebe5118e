package config

import (
	"image/color"
	"math"

	"github.com/coedo/spankthefox/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// CameraConfig describes the fixed stage camera
type CameraConfig struct {
	Position   gamemath.Vec3
	LookOffset gamemath.Vec3 // Target = Position + LookOffset
	Up         gamemath.Vec3
	FovY       float64 // degrees
}

// StageConfig holds the rest positions of the stage actors.
// Values are overridden by the embedded stage layout when it loads.
type StageConfig struct {
	FoxStart gamemath.Vec3
	HandRest gamemath.Vec3

	// Interaction plane region covered by the bounds space, in world units
	PlaneMin gamemath.Vec3
	PlaneMax gamemath.Vec3
	// Bounds space resolution: space units per world unit and cell size
	BoundsUnitsPerWorld float64
	BoundsCellSize      int
}

// MenuConfig contains main menu overlay configuration values
type MenuConfig struct {
	Title        string
	Warning      string
	CreditsLabel string
	Credits      []string

	TitleSize        float64
	WarningSize      float64
	CreditsLabelSize float64
	CreditsSize      float64

	TitleTop    int // distance from the top of the screen
	WarningTop  int
	PanelOffset dmath.Vec2 // panel centre offset from screen centre
	PanelSize   dmath.Vec2
	PanelMargin int

	TitleColor   color.RGBA
	WarningColor color.RGBA
	PanelColor   color.RGBA
	CreditsColor color.RGBA
}

// ResultConfig contains the hit result message configuration
type ResultConfig struct {
	Format        string
	FontSize      float64
	OffsetY       float64 // above screen centre
	LineSpacing   float64
	Color         color.RGBA
	PopStartScale float64
	PopDuration   float64 // seconds
}

// RenderConfig contains scene drawing configuration
type RenderConfig struct {
	BackgroundColor color.RGBA
	GridColor       color.RGBA
	GridAxisColor   color.RGBA
	GridSlices      int
	GridSpacing     float64
	GridLineWidth   float32

	HandPivotZ   float64 // moves the model pivot to the wrist
	HandUpright  float64 // radians around Z so the hand stands vertical
	LightDir     gamemath.Vec3
	AmbientLight float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var Stage StageConfig
var Menu MenuConfig
var Result ResultConfig
var Render RenderConfig
var Debug DebugConfig

// DebugConfig contains debug/testing options
type DebugConfig struct {
	SkipMenu bool // Start directly in game mode
}

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	LightGray = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Gray      = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	DarkGray  = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	Red       = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	HalfBlack = color.RGBA{R: 0, G: 0, B: 0, A: 127}
)

func init() {
	C = &Config{
		Width:  1600,
		Height: 900,
		Title:  "Spank The Fox",
	}

	Camera = CameraConfig{
		Position:   gamemath.Vec3{X: 2, Y: 1, Z: 7},
		LookOffset: gamemath.Vec3{Z: -1},
		Up:         gamemath.Vec3{Y: 1},
		FovY:       40,
	}

	Stage = StageConfig{
		FoxStart: gamemath.Vec3{X: 0, Y: 1.5, Z: 0},
		HandRest: gamemath.Vec3{X: 5, Y: 1, Z: 0},

		PlaneMin:            gamemath.Vec3{X: -20, Y: -10},
		PlaneMax:            gamemath.Vec3{X: 20, Y: 20},
		BoundsUnitsPerWorld: 100,
		BoundsCellSize:      50,
	}

	Menu = MenuConfig{
		Title:        "Spank the fox",
		Warning:      "You might want to lower your volume...",
		CreditsLabel: "Credits:",
		Credits: []string{
			`Programing and "music": Coedo`,
			"Fox art: Sick2day",
			"Screams: Tenma Maemi <3",
		},

		TitleSize:        110,
		WarningSize:      40,
		CreditsLabelSize: 50,
		CreditsSize:      40,

		TitleTop:    20,
		WarningTop:  190,
		PanelOffset: dmath.Vec2{X: 0, Y: 220},
		PanelSize:   dmath.Vec2{X: 700, Y: 300},
		PanelMargin: 4,

		TitleColor:   Black,
		WarningColor: DarkGray,
		PanelColor:   HalfBlack,
		CreditsColor: LightGray,
	}

	Result = ResultConfig{
		Format:        "YOU SPANKED THE FOX AT\n%d KILOMETERS PER HOUR",
		FontSize:      70,
		OffsetY:       70,
		LineSpacing:   1.1,
		Color:         Black,
		PopStartScale: 0.2,
		PopDuration:   0.45,
	}

	Render = RenderConfig{
		BackgroundColor: LightGray,
		GridColor:       Gray,
		GridAxisColor:   DarkGray,
		GridSlices:      10,
		GridSpacing:     10,
		GridLineWidth:   1,

		HandPivotZ:   -1.2,
		HandUpright:  math.Pi / 2,
		LightDir:     gamemath.Vec3{X: -0.4, Y: 0.7, Z: 0.6},
		AmbientLight: 0.45,
	}
}
