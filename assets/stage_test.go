package assets

import (
	"testing"
	"testing/fstest"

	"github.com/coedo/spankthefox/gamemath"
)

func TestLoadEmbeddedStage(t *testing.T) {
	layout, err := NewStageLoader(FS()).LoadStage("data/stage.tmx")
	if err != nil {
		t.Fatalf("LoadStage: %v", err)
	}

	tests := []struct {
		name string
		got  gamemath.Vec3
		want gamemath.Vec3
	}{
		{"fox", layout.FoxStart, gamemath.Vec3{X: 0, Y: 1.5, Z: 0}},
		{"hand", layout.HandRest, gamemath.Vec3{X: 5, Y: 1, Z: 0}},
		{"camera", layout.CameraPosition, gamemath.Vec3{X: 2, Y: 1, Z: 7}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}
	if !layout.HasCamera {
		t.Error("expected camera placement")
	}
}

const stageHeader = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="32" tileheight="32" infinite="0">
`

func TestLoadStageErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"nogroup.tmx": {Data: []byte(stageHeader + `</map>`)},
		"noorigin.tmx": {Data: []byte(stageHeader + `<objectgroup id="1" name="Stage">
  <object id="2" name="fox" x="0" y="0"><point/></object>
 </objectgroup>
</map>`)},
		"nofox.tmx": {Data: []byte(stageHeader + `<objectgroup id="1" name="Stage">
  <object id="1" name="origin" x="0" y="0"><properties><property name="pixelsPerUnit" type="float" value="10"/></properties><point/></object>
  <object id="3" name="hand" x="10" y="0"><point/></object>
 </objectgroup>
</map>`)},
	}

	for _, path := range []string{"nogroup.tmx", "noorigin.tmx", "nofox.tmx", "missing.tmx"} {
		t.Run(path, func(t *testing.T) {
			if _, err := NewStageLoader(fsys).LoadStage(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}
