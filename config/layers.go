package config

import "github.com/yohamta/donburi/ecs"

// Render layers, drawn in declaration order
const (
	Default ecs.LayerID = iota
	Overlay
)
