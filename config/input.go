package config

import "github.com/hajimehoshi/ebiten/v2"

// InputConfig holds the pointer and keyboard bindings
type InputConfig struct {
	GrabButton ebiten.MouseButton
	ExitKeys   []ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		GrabButton: ebiten.MouseButtonLeft,
		ExitKeys:   []ebiten.Key{ebiten.KeyEscape},
	}
}
