package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ResultData is the message shown after a hit
type ResultData struct {
	Text   string
	Width  float64 // measured with the result font
	Height float64
	Scale  float64
	Pop    *gween.Tween
}

var Result = donburi.NewComponentType[ResultData]()
