package factory

import (
	"github.com/coedo/spankthefox/archetypes"
	"github.com/coedo/spankthefox/components"
	cfg "github.com/coedo/spankthefox/config"
	"github.com/coedo/spankthefox/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Camera: gamemath.Camera{
			Position: cfg.Camera.Position,
			Target:   cfg.Camera.Position.Add(cfg.Camera.LookOffset),
			Up:       cfg.Camera.Up,
			FovY:     cfg.Camera.FovY,
		},
	})
	return camera
}
