package components

import "github.com/yohamta/donburi"

// ClockData is the frame clock
type ClockData struct {
	Delta   float64 // seconds since the previous frame
	Elapsed float64 // seconds since start
}

var Clock = donburi.NewComponentType[ClockData]()
