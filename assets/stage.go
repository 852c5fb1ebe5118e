package assets

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/coedo/spankthefox/gamemath"
	"github.com/lafriks/go-tiled"
)

// StageLayout holds actor placement read from the Tiled stage map
type StageLayout struct {
	FoxStart       gamemath.Vec3
	HandRest       gamemath.Vec3
	CameraPosition gamemath.Vec3
	HasCamera      bool
}

type StageLoader struct {
	fsys fs.FS
}

func NewStageLoader(fsys fs.FS) *StageLoader {
	return &StageLoader{fsys: fsys}
}

// LoadStage reads the "Stage" object group. Map pixels are converted to
// world units around the "origin" point object, whose pixelsPerUnit property
// sets the scale. Map Y grows down, world Y grows up.
func (l *StageLoader) LoadStage(path string) (StageLayout, error) {
	stageMap, err := tiled.LoadFile(path, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return StageLayout{}, fmt.Errorf("failed to load stage %s: %w", path, err)
	}

	var group *tiled.ObjectGroup
	for _, og := range stageMap.ObjectGroups {
		if og.Name == "Stage" {
			group = og
			break
		}
	}
	if group == nil {
		return StageLayout{}, fmt.Errorf("stage %s: missing Stage object group", path)
	}

	objects := make(map[string]*tiled.Object, len(group.Objects))
	for _, o := range group.Objects {
		objects[o.Name] = o
	}

	origin, ok := objects["origin"]
	if !ok {
		return StageLayout{}, fmt.Errorf("stage %s: missing origin object", path)
	}
	ppu := origin.Properties.GetFloat("pixelsPerUnit")
	if ppu <= 0 {
		return StageLayout{}, fmt.Errorf("stage %s: origin needs a positive pixelsPerUnit", path)
	}

	toWorld := func(o *tiled.Object) gamemath.Vec3 {
		return gamemath.Vec3{
			X: (o.X - origin.X) / ppu,
			Y: (origin.Y - o.Y) / ppu,
			Z: o.Properties.GetFloat("z"),
		}
	}

	var layout StageLayout
	var missing []error
	if fox, ok := objects["fox"]; ok {
		layout.FoxStart = toWorld(fox)
	} else {
		missing = append(missing, errors.New("missing fox object"))
	}
	if hand, ok := objects["hand"]; ok {
		layout.HandRest = toWorld(hand)
	} else {
		missing = append(missing, errors.New("missing hand object"))
	}
	if cam, ok := objects["camera"]; ok {
		layout.CameraPosition = toWorld(cam)
		layout.HasCamera = true
	}

	if err := errors.Join(missing...); err != nil {
		return StageLayout{}, fmt.Errorf("stage %s: %w", path, err)
	}
	return layout, nil
}
