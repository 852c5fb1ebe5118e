package assets

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"strconv"
	"strings"

	"github.com/coedo/spankthefox/gamemath"
)

// ErrUnexpectedModelLayout is returned when the hand model does not consist of
// exactly one mesh with exactly one material.
var ErrUnexpectedModelLayout = errors.New("model has unexpected layout")

// Vertex is a mesh vertex with texture coordinates in image space (V grows down)
type Vertex struct {
	Position gamemath.Vec3
	U, V     float64
}

// Mesh is an indexed triangle list
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint16
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Model is a parsed Wavefront OBJ file
type Model struct {
	Meshes    []*Mesh
	Materials []string
}

type vertexKey struct {
	position int
	texcoord int
}

type meshBuilder struct {
	mesh   *Mesh
	lookup map[vertexKey]uint16
}

// ParseOBJ reads a Wavefront OBJ document. Every object or group that owns at
// least one face becomes a mesh; polygons are fan-triangulated. Materials are
// the distinct usemtl names, or a single default material when none is named.
func ParseOBJ(r io.Reader) (*Model, error) {
	var (
		positions []gamemath.Vec3
		texcoords [][2]float64
		builders  []*meshBuilder
		current   *meshBuilder
		groupName = "default"
		materials []string
		seenMat   = make(map[string]bool)
	)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			positions = append(positions, gamemath.Vec3{X: v[0], Y: v[1], Z: v[2]})
		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			texcoords = append(texcoords, [2]float64{v[0], v[1]})
		case "o", "g":
			groupName = strings.Join(fields[1:], " ")
			current = nil
		case "usemtl":
			name := strings.Join(fields[1:], " ")
			if !seenMat[name] {
				seenMat[name] = true
				materials = append(materials, name)
			}
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", line)
			}
			if current == nil {
				current = &meshBuilder{
					mesh:   &Mesh{Name: groupName},
					lookup: make(map[vertexKey]uint16),
				}
				builders = append(builders, current)
			}

			corners := make([]uint16, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				key, err := parseFaceRef(ref, len(positions), len(texcoords))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				idx, err := current.vertex(key, positions, texcoords)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				corners = append(corners, idx)
			}
			for i := 1; i+1 < len(corners); i++ {
				current.mesh.Indices = append(current.mesh.Indices, corners[0], corners[i], corners[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read model: %w", err)
	}

	model := &Model{Materials: materials}
	if len(model.Materials) == 0 {
		model.Materials = []string{"default"}
	}
	for _, b := range builders {
		model.Meshes = append(model.Meshes, b.mesh)
	}
	return model, nil
}

func (b *meshBuilder) vertex(key vertexKey, positions []gamemath.Vec3, texcoords [][2]float64) (uint16, error) {
	if idx, ok := b.lookup[key]; ok {
		return idx, nil
	}
	if len(b.mesh.Vertices) > math.MaxUint16 {
		return 0, fmt.Errorf("mesh %q exceeds %d vertices", b.mesh.Name, math.MaxUint16+1)
	}

	v := Vertex{Position: positions[key.position]}
	if key.texcoord >= 0 {
		uv := texcoords[key.texcoord]
		v.U = uv[0]
		v.V = 1 - uv[1]
	}

	idx := uint16(len(b.mesh.Vertices))
	b.mesh.Vertices = append(b.mesh.Vertices, v)
	b.lookup[key] = idx
	return idx, nil
}

// parseFaceRef parses "v", "v/vt", "v//vn" or "v/vt/vn" into zero-based indices.
// Texture index is -1 when absent.
func parseFaceRef(ref string, numPositions, numTexcoords int) (vertexKey, error) {
	parts := strings.Split(ref, "/")

	pos, err := resolveIndex(parts[0], numPositions)
	if err != nil {
		return vertexKey{}, fmt.Errorf("bad vertex index %q: %w", ref, err)
	}

	key := vertexKey{position: pos, texcoord: -1}
	if len(parts) > 1 && parts[1] != "" {
		tex, err := resolveIndex(parts[1], numTexcoords)
		if err != nil {
			return vertexKey{}, fmt.Errorf("bad texture index %q: %w", ref, err)
		}
		key.texcoord = tex
	}
	return key, nil
}

// resolveIndex handles 1-based and negative (relative) OBJ indices
func resolveIndex(s string, count int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case n > 0:
		n--
	case n < 0:
		n += count
	default:
		return 0, errors.New("index 0 is invalid")
	}
	if n < 0 || n >= count {
		return 0, fmt.Errorf("index out of range (have %d)", count)
	}
	return n, nil
}

func parseFloats(fields []string, want int) ([]float64, error) {
	if len(fields) < want {
		return nil, fmt.Errorf("expected %d values, got %d", want, len(fields))
	}
	out := make([]float64, want)
	for i := 0; i < want; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// LoadHandModel loads the hand model and checks it is a single mesh with a
// single material.
func LoadHandModel(fsys fs.FS, path string) (*Mesh, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model %s: %w", path, err)
	}
	defer f.Close()

	model, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model %s: %w", path, err)
	}

	if len(model.Meshes) != 1 || len(model.Materials) != 1 {
		return nil, fmt.Errorf("%s: %d meshes, %d materials: %w",
			path, len(model.Meshes), len(model.Materials), ErrUnexpectedModelLayout)
	}
	return model.Meshes[0], nil
}
