package assets

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

const quadOBJ = `# quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
o Quad
usemtl Skin
f 1/1 2/2 3/3 4/4
`

func TestParseOBJQuad(t *testing.T) {
	model, err := ParseOBJ(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if len(model.Meshes) != 1 {
		t.Fatalf("meshes = %d, want 1", len(model.Meshes))
	}
	mesh := model.Meshes[0]
	if mesh.Name != "Quad" {
		t.Errorf("name = %q, want Quad", mesh.Name)
	}
	if len(mesh.Vertices) != 4 {
		t.Errorf("vertices = %d, want 4", len(mesh.Vertices))
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("triangles = %d, want 2", mesh.TriangleCount())
	}
	want := []uint16{0, 1, 2, 0, 2, 3}
	for i, idx := range want {
		if mesh.Indices[i] != idx {
			t.Fatalf("indices = %v, want %v", mesh.Indices, want)
		}
	}
	// V is flipped into image space
	if v := mesh.Vertices[2]; v.U != 1 || v.V != 0 {
		t.Errorf("vertex 2 uv = (%v, %v), want (1, 0)", v.U, v.V)
	}
	if len(model.Materials) != 1 || model.Materials[0] != "Skin" {
		t.Errorf("materials = %v, want [Skin]", model.Materials)
	}
}

func TestParseOBJNegativeIndices(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n"
	model, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if got := model.Meshes[0].Vertices[1].Position.X; got != 1 {
		t.Errorf("second vertex x = %v, want 1", got)
	}
	if len(model.Materials) != 1 || model.Materials[0] != "default" {
		t.Errorf("materials = %v, want [default]", model.Materials)
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"short vertex", "v 1 2\n"},
		{"bad float", "v 1 x 3\n"},
		{"out of range", "v 0 0 0\nf 1 2 3\n"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"two vertex face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseOBJ(strings.NewReader(tt.src)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadHandModelLayout(t *testing.T) {
	twoMeshes := quadOBJ + "o Other\nf 1 2 3\n"
	twoMaterials := quadOBJ + "usemtl Nails\nf 1 2 3\n"

	fsys := fstest.MapFS{
		"ok.obj":        {Data: []byte(quadOBJ)},
		"meshes.obj":    {Data: []byte(twoMeshes)},
		"materials.obj": {Data: []byte(twoMaterials)},
		"empty.obj":     {Data: []byte("v 0 0 0\n")},
	}

	tests := []struct {
		path    string
		wantErr error
	}{
		{"ok.obj", nil},
		{"meshes.obj", ErrUnexpectedModelLayout},
		{"materials.obj", ErrUnexpectedModelLayout},
		{"empty.obj", ErrUnexpectedModelLayout},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := LoadHandModel(fsys, tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := LoadHandModel(fsys, "missing.obj"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestEmbeddedHandModel(t *testing.T) {
	mesh, err := LoadHandModel(FS(), "data/hand.obj")
	if err != nil {
		t.Fatalf("LoadHandModel: %v", err)
	}
	if mesh.TriangleCount() == 0 {
		t.Fatal("hand mesh has no triangles")
	}
	for _, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Vertices) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}
