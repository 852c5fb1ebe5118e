package systems

import (
	"math"
	"sort"

	"github.com/coedo/spankthefox/components"
	cfg "github.com/coedo/spankthefox/config"
	"github.com/coedo/spankthefox/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	// reused between frames
	handTriangles []projectedTriangle
	handVertices  []ebiten.Vertex
	handIndices   []uint16
)

func cameraOf(ecs *ecs.ECS) (gamemath.Camera, bool) {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return gamemath.Camera{}, false
	}
	return components.Camera.Get(entry).Camera, true
}

func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.BackgroundColor)
}

// DrawGrid draws the ground grid on the XZ plane, clipping lines at the near plane
func DrawGrid(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := cameraOf(ecs)
	if !ok {
		return
	}
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	half := cfg.Render.GridSlices / 2
	extent := float64(half) * cfg.Render.GridSpacing

	for i := -half; i <= half; i++ {
		offset := float64(i) * cfg.Render.GridSpacing
		clr := cfg.Render.GridColor
		if i == 0 {
			clr = cfg.Render.GridAxisColor
		}
		lines := [2][2]gamemath.Vec3{
			{{X: offset, Z: -extent}, {X: offset, Z: extent}},
			{{X: -extent, Z: offset}, {X: extent, Z: offset}},
		}
		for _, l := range lines {
			a, b, ok := clipToNearPlane(camera, l[0], l[1])
			if !ok {
				continue
			}
			ax, ay, _, _ := camera.Project(a, w, h)
			bx, by, _, _ := camera.Project(b, w, h)
			vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), cfg.Render.GridLineWidth, clr, true)
		}
	}
}

// clipToNearPlane trims the segment to the part in front of the camera
func clipToNearPlane(camera gamemath.Camera, a, b gamemath.Vec3) (gamemath.Vec3, gamemath.Vec3, bool) {
	near := gamemath.NearPlane * 2
	da, db := camera.Depth(a), camera.Depth(b)
	switch {
	case da < near && db < near:
		return a, b, false
	case da < near:
		a = a.Lerp(b, (near-da)/(db-da))
	case db < near:
		b = b.Lerp(a, (near-db)/(da-db))
	}
	return a, b, true
}

// DrawFox draws the fox texture as a camera-facing billboard
func DrawFox(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := cameraOf(ecs)
	if !ok {
		return
	}
	foxEntry, ok := components.Fox.First(ecs.World)
	if !ok || !foxEntry.HasComponent(components.Billboard) {
		return
	}
	fox := components.Fox.Get(foxEntry)
	billboard := components.Billboard.Get(foxEntry)
	if billboard.Image == nil {
		return
	}

	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	sx, sy, depth, ok := camera.Project(fox.Position, w, h)
	if !ok {
		return
	}

	bounds := billboard.Image.Bounds()
	size := billboard.Size * camera.PixelsPerUnit(depth, h)
	scale := size / float64(bounds.Dy())

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.Filter = ebiten.FilterLinear
	drawOp.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	drawOp.GeoM.Scale(scale, scale)
	drawOp.GeoM.Translate(sx, sy)
	screen.DrawImage(billboard.Image, drawOp)
}

type projectedTriangle struct {
	corners [3]ebiten.Vertex
	depth   float64
}

// HandTransform is the model matrix of the hand for its current pose
func HandTransform(hand *components.HandData, scale float64) gamemath.Mat4 {
	return gamemath.ScaleMat(scale, scale, scale).
		Then(gamemath.TranslateMat(0, 0, cfg.Render.HandPivotZ)).
		Then(gamemath.RotateZMat(cfg.Render.HandUpright)).
		Then(gamemath.RotateXYZMat(hand.CurrentRotation)).
		Then(gamemath.TranslateMat(hand.Position.X, hand.Position.Y, hand.Position.Z))
}

// DrawHand projects the hand mesh and draws it back to front with flat shading
func DrawHand(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := cameraOf(ecs)
	if !ok {
		return
	}
	handEntry, ok := components.Hand.First(ecs.World)
	if !ok || !handEntry.HasComponent(components.Model) {
		return
	}
	model := components.Model.Get(handEntry)
	if model.Mesh == nil || model.Texture == nil {
		return
	}

	transform := HandTransform(components.Hand.Get(handEntry), model.Scale)
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	tex := model.Texture.Bounds()
	light := cfg.Render.LightDir.Normalize()
	mesh := model.Mesh

	handTriangles = handTriangles[:0]
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		var world [3]gamemath.Vec3
		for k := 0; k < 3; k++ {
			world[k] = transform.Transform(mesh.Vertices[mesh.Indices[i+k]].Position)
		}

		normal := world[1].Sub(world[0]).Cross(world[2].Sub(world[0])).Normalize()
		centre := world[0].Add(world[1]).Add(world[2]).Div(3)
		if normal.Dot(camera.Position.Sub(centre)) <= 0 {
			continue
		}
		shade := cfg.Render.AmbientLight + (1-cfg.Render.AmbientLight)*math.Max(0, normal.Dot(light))

		tri := projectedTriangle{depth: camera.Depth(centre)}
		visible := true
		for k := 0; k < 3; k++ {
			sx, sy, _, ok := camera.Project(world[k], w, h)
			if !ok {
				visible = false
				break
			}
			v := mesh.Vertices[mesh.Indices[i+k]]
			tri.corners[k] = ebiten.Vertex{
				DstX:   float32(sx),
				DstY:   float32(sy),
				SrcX:   float32(float64(tex.Min.X) + v.U*float64(tex.Dx())),
				SrcY:   float32(float64(tex.Min.Y) + v.V*float64(tex.Dy())),
				ColorR: float32(shade),
				ColorG: float32(shade),
				ColorB: float32(shade),
				ColorA: 1,
			}
		}
		if visible {
			handTriangles = append(handTriangles, tri)
		}
	}

	sort.Slice(handTriangles, func(i, j int) bool {
		return handTriangles[i].depth > handTriangles[j].depth
	})

	handVertices = handVertices[:0]
	handIndices = handIndices[:0]
	for _, tri := range handTriangles {
		base := uint16(len(handVertices))
		handVertices = append(handVertices, tri.corners[:]...)
		handIndices = append(handIndices, base, base+1, base+2)
	}
	if len(handIndices) == 0 {
		return
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.Filter = ebiten.FilterLinear
	screen.DrawTriangles(handVertices, handIndices, model.Texture, op)
}
