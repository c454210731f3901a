package gosurf3d

import "log"

// DefaultSteps is the grid resolution used when a caller supplies none.
const DefaultSteps = 50

type Topology int

const (
	// TopologySurface produces indexed triangles and per-vertex normals.
	TopologySurface Topology = iota
	// TopologyWireframe produces U-line and V-line strips only.
	TopologyWireframe
)

func (t Topology) String() string {
	switch t {
	case TopologySurface:
		return "surface"
	case TopologyWireframe:
		return "wireframe"
	}
	return "unknown"
}

// NormalizeSteps substitutes DefaultSteps for a non-positive resolution.
func NormalizeSteps(n int) int {
	if n < 1 {
		return DefaultSteps
	}
	return n
}

// Tessellator turns a parametric surface into a Mesh. It holds no state
// between calls; every Generate builds a fresh Mesh.
type Tessellator struct {
	Topology Topology
}

func NewTessellator(topology Topology) *Tessellator {
	return &Tessellator{Topology: topology}
}

// GenerateSurface tessellates s over its own domain.
func (t *Tessellator) GenerateSurface(s ParametricSurface, uSteps, vSteps int) *Mesh {
	d := s.Domain()
	m := t.Generate(s.Evaluate, d.UMin, d.UMax, d.VMin, d.VMax, uSteps, vSteps)
	m.name = s.Name()
	return m
}

// Generate samples fn over [uMin,uMax] x [vMin,vMax] on a grid of
// uSteps x vSteps cells, inclusive of both boundaries. The steps are built
// in order: lines, vertices, indices, normals.
func (t *Tessellator) Generate(fn SurfaceFunc, uMin, uMax, vMin, vMax float64, uSteps, vSteps int) *Mesh {
	uSteps = NormalizeSteps(uSteps)
	vSteps = NormalizeSteps(vSteps)

	m := &Mesh{
		topology: t.Topology,
		grid:     generateGrid(fn, uMin, uMax, vMin, vMax, uSteps, vSteps),
	}
	m.vertices = m.grid.Points

	switch t.Topology {
	case TopologyWireframe:
		m.strips = generateStrips(uSteps, vSteps)
		log.Printf("Tessellated %dx%d wireframe: %d points, %d strips", uSteps, vSteps, len(m.vertices), len(m.strips))
	default:
		m.indices = generateIndices(uSteps, vSteps)
		m.normals = generateNormals(m.vertices, m.indices)
		log.Printf("Tessellated %dx%d surface: %d vertices, %d triangles", uSteps, vSteps, len(m.vertices), m.TriangleCount())
	}
	return m
}

// generateGrid evaluates fn exactly once per sample. Outer loop u, inner
// loop v, which makes every U-line a contiguous run of the storage.
func generateGrid(fn SurfaceFunc, uMin, uMax, vMin, vMax float64, uSteps, vSteps int) *Grid {
	du := (uMax - uMin) / float64(uSteps)
	dv := (vMax - vMin) / float64(vSteps)

	g := newGrid(uSteps, vSteps)
	for i := 0; i <= uSteps; i++ {
		u := uMin + float64(i)*du
		for j := 0; j <= vSteps; j++ {
			v := vMin + float64(j)*dv
			g.Points = append(g.Points, fn(u, v))
		}
	}
	return g
}

// generateIndices emits two triangles per cell, both wound so that
// (bottomLeft-topLeft) x (topRight-topLeft) gives the face normal:
//
//	topLeft, bottomLeft, topRight
//	topRight, bottomLeft, bottomRight
func generateIndices(uSteps, vSteps int) []uint32 {
	indices := make([]uint32, 0, uSteps*vSteps*6)
	row := vSteps + 1
	for u := 0; u < uSteps; u++ {
		for v := 0; v < vSteps; v++ {
			topLeft := uint32(u*row + v)
			topRight := topLeft + 1
			bottomLeft := uint32((u+1)*row + v)
			bottomRight := bottomLeft + 1

			indices = append(indices, topLeft, bottomLeft, topRight)
			indices = append(indices, topRight, bottomLeft, bottomRight)
		}
	}
	return indices
}

// generateNormals accumulates the unnormalized face normal of every triangle
// into its three vertices, then normalizes. A vertex whose sum is zero gets
// the zero vector. NaN inputs are not filtered.
func generateNormals(vertices []Vector3, indices []uint32) []Vector3 {
	acc := make([]Vector3, len(vertices))
	for i := 0; i+2 < len(indices); i += 3 {
		i1, i2, i3 := indices[i], indices[i+1], indices[i+2]
		n := faceNormal(vertices[i1], vertices[i2], vertices[i3])
		acc[i1] = acc[i1].Add(n)
		acc[i2] = acc[i2].Add(n)
		acc[i3] = acc[i3].Add(n)
	}
	for i := range acc {
		acc[i] = acc[i].NormalizeOrZero()
	}
	return acc
}

func faceNormal(v1, v2, v3 Vector3) Vector3 {
	edge1 := v2.Sub(v1)
	edge2 := v3.Sub(v1)
	return edge1.Cross(edge2)
}

// generateStrips lays out one strip per U-line followed by one per V-line,
// matching the buffer Mesh.LineVertexData produces.
func generateStrips(uSteps, vSteps int) []LineStrip {
	strips := make([]LineStrip, 0, uSteps+vSteps+2)
	offset := 0
	for i := 0; i <= uSteps; i++ {
		strips = append(strips, LineStrip{Offset: offset, Count: vSteps + 1})
		offset += vSteps + 1
	}
	for j := 0; j <= vSteps; j++ {
		strips = append(strips, LineStrip{Offset: offset, Count: uSteps + 1})
		offset += uSteps + 1
	}
	return strips
}
