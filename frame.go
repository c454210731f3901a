package gosurf3d

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// ScreenVertex is a projected, shaded vertex in viewport pixels.
type ScreenVertex struct {
	X, Y  float32
	Color Color3
}

// Batcher receives the 2-D primitives of one frame. The viewer implements it
// on top of ebiten; tests record the calls.
type Batcher interface {
	AddTriangle(a, b, c ScreenVertex)
	AddStrip(points []Vector2, clr color.RGBA)
}

// Shading is the per-frame lighting state.
type Shading struct {
	Material     Material
	Light        Light
	ViewPosition Vector3
	LineColor    color.RGBA
}

func DefaultShading() Shading {
	return Shading{
		Material:     DefaultMaterial(),
		Light:        OrbitingLight(0),
		ViewPosition: DefaultViewPosition,
		LineColor:    color.RGBA{R: 40, G: 40, B: 40, A: 255},
	}
}

// FrameStats counts what BuildFrame emitted. Clipped is the number of
// triangles (or wireframe points) dropped; Split is the number of triangles
// cut at the near plane.
type FrameStats struct {
	Triangles int
	Clipped   int
	Split     int
	Strips    int
}

// BuildFrame projects mesh through camera and view and hands the result to b.
// Surface meshes are shaded per vertex in eye space and painted back to
// front. Triangles crossing the near plane are cut there; triangles wholly
// behind it, or with a non-finite vertex, are dropped. A finite vertex whose
// normal picked up NaN from a neighbour is shaded with ambient light only.
// Wireframe meshes become one strip per U-line and V-line, split wherever a
// point cannot be projected.
func BuildFrame(mesh *Mesh, camera *Camera, view mgl64.Mat4, sh Shading, b Batcher) FrameStats {
	modelView := camera.ModelView(view)

	if mesh.Topology() == TopologyWireframe {
		mvp := camera.Projection().Mul4(modelView)
		return buildStrips(mesh, camera, mvp, sh.LineColor, b)
	}

	normalMatrix := NormalMatrix(modelView)
	projection := camera.Projection()
	vertices := mesh.Vertices()
	normals := mesh.Normals()

	eye := make([]eyeVertex, len(vertices))
	finite := make([]bool, len(vertices))
	for i, p := range vertices {
		if !isFinite(p) {
			continue
		}
		pos := TransformPoint(modelView, p)
		n := TransformDirection(normalMatrix, normals[i])
		eye[i] = eyeVertex{pos: pos, color: sh.Material.Shade(sh.Light, sh.ViewPosition, pos, n)}
		finite[i] = true
	}

	var stats FrameStats
	store := NewFaceStore(mesh.TriangleCount())
	poly := make([]eyeVertex, 0, 4)
	screen := make([]ScreenVertex, 0, 4)
	for t := 0; t < mesh.TriangleCount(); t++ {
		i1, i2, i3 := mesh.Triangle(t)
		if !finite[i1] || !finite[i2] || !finite[i3] {
			stats.Clipped++
			continue
		}

		poly = append(poly[:0], eye[i1], eye[i2], eye[i3])
		inFront := 0
		for _, v := range poly {
			if v.pos.Z <= -nearPlane {
				inFront++
			}
		}
		switch inFront {
		case 0:
			stats.Clipped++
			continue
		case 1, 2:
			poly = clipNear(poly, nearPlane)
			stats.Split++
		}

		screen = screen[:0]
		depth := 0.0
		ok := true
		for _, v := range poly {
			p, _, visible := camera.Project(projection, v.pos)
			if !visible {
				ok = false
				break
			}
			screen = append(screen, ScreenVertex{X: float32(p.X), Y: float32(p.Y), Color: v.color})
			depth += v.pos.Z
		}
		if !ok {
			stats.Clipped++
			continue
		}
		depth /= float64(len(poly))
		for k := 1; k+1 < len(screen); k++ {
			store.AddFace(screen[0], screen[k], screen[k+1], depth)
		}
	}
	store.SortFacesByDepth()
	store.Paint(b)
	stats.Triangles = store.FaceCount()
	return stats
}

func buildStrips(mesh *Mesh, camera *Camera, mvp mgl64.Mat4, clr color.RGBA, b Batcher) FrameStats {
	var stats FrameStats
	emit := func(line []Vector3) {
		run := make([]Vector2, 0, len(line))
		flush := func() {
			if len(run) >= 2 {
				b.AddStrip(run, clr)
				stats.Strips++
			}
			run = make([]Vector2, 0, len(line))
		}
		for _, p := range line {
			screen, _, ok := camera.Project(mvp, p)
			if !ok {
				stats.Clipped++
				flush()
				continue
			}
			run = append(run, screen)
		}
		flush()
	}

	g := mesh.Grid()
	for i := 0; i <= g.USteps; i++ {
		emit(g.ULine(i))
	}
	for j := 0; j <= g.VSteps; j++ {
		emit(g.VLine(j))
	}
	return stats
}
