package systems

import (
	"strings"

	"github.com/coedo/spankthefox/components"
	cfg "github.com/coedo/spankthefox/config"
	"github.com/coedo/spankthefox/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

// UpdateResult advances the result message pop-in
func UpdateResult(ecs *ecs.ECS) {
	entry, ok := components.Result.First(ecs.World)
	if !ok {
		return
	}
	result := components.Result.Get(entry)
	if result.Pop == nil {
		return
	}
	dt := components.Clock.Get(entry).Delta
	scale, finished := result.Pop.Update(float32(dt))
	result.Scale = float64(scale)
	if finished {
		result.Pop = nil
	}
}

// DrawResult draws the hit message centred above the middle of the screen
func DrawResult(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Result.First(ecs.World)
	if !ok {
		return
	}
	result := components.Result.Get(entry)
	if result.Text == "" {
		return
	}

	face := fonts.Result.Get()
	lineHeight := float64(face.Metrics().Height) / 64 * cfg.Result.LineSpacing
	ascent := float64(face.Metrics().Ascent) / 64
	cx := float64(cfg.C.Width) / 2
	cy := float64(cfg.C.Height)/2 - cfg.Result.OffsetY

	for i, line := range strings.Split(result.Text, "\n") {
		w, _ := fonts.Measure(face, line, 1)

		op := &ebiten.DrawImageOptions{}
		// glyph origin is the baseline; lay the block out around its centre
		op.GeoM.Translate(-w/2, ascent+float64(i)*lineHeight-result.Height/2)
		op.GeoM.Scale(result.Scale, result.Scale)
		op.GeoM.Translate(cx, cy)
		op.ColorScale.ScaleWithColor(cfg.Result.Color)
		text.DrawWithOptions(screen, line, face, op)
	}
}
