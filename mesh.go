package gosurf3d

import (
	"errors"
	"fmt"
	"math"
)

var ErrIndexOverflow = errors.New("mesh has too many vertices for 16-bit indices")

// MaxIndex16Vertices is the largest vertex count a 16-bit index buffer can
// address.
const MaxIndex16Vertices = 1 << 16

// LineStrip is one connected polyline inside Mesh.LineVertexData.
type LineStrip struct {
	Offset int
	Count  int
}

// Mesh is the output of a tessellation. It is never patched in place; a
// resolution change builds a new one. Slices returned by the accessors
// alias the mesh and must be treated as read-only.
type Mesh struct {
	name     string
	topology Topology
	grid     *Grid
	vertices []Vector3
	indices  []uint32
	normals  []Vector3
	strips   []LineStrip
}

func (m *Mesh) Name() string        { return m.name }
func (m *Mesh) Topology() Topology  { return m.topology }
func (m *Mesh) Grid() *Grid         { return m.grid }
func (m *Mesh) Vertices() []Vector3 { return m.vertices }

// Indices is nil for wireframe meshes.
func (m *Mesh) Indices() []uint32 { return m.indices }

// Normals is nil for wireframe meshes.
func (m *Mesh) Normals() []Vector3 { return m.normals }

// Strips is nil for surface meshes.
func (m *Mesh) Strips() []LineStrip { return m.strips }

func (m *Mesh) TriangleCount() int {
	return len(m.indices) / 3
}

// Triangle returns the vertex indices of triangle t.
func (m *Mesh) Triangle(t int) (uint32, uint32, uint32) {
	return m.indices[3*t], m.indices[3*t+1], m.indices[3*t+2]
}

// VertexData flattens the vertices into x,y,z triples.
func (m *Mesh) VertexData() []float32 {
	return flatten(m.vertices)
}

// NormalData flattens the normals into x,y,z triples.
func (m *Mesh) NormalData() []float32 {
	return flatten(m.normals)
}

// LineVertexData flattens every U-line followed by every V-line, the layout
// the Strips offsets refer to.
func (m *Mesh) LineVertexData() []float32 {
	g := m.grid
	out := make([]float32, 0, 2*len(g.Points)*3)
	out = append(out, flatten(g.Points)...)
	for j := 0; j <= g.VSteps; j++ {
		out = append(out, flatten(g.VLine(j))...)
	}
	return out
}

// Indices16 converts the index list for a 16-bit index buffer.
func (m *Mesh) Indices16() ([]uint16, error) {
	if len(m.vertices) > MaxIndex16Vertices {
		return nil, fmt.Errorf("%w: %d vertices", ErrIndexOverflow, len(m.vertices))
	}
	out := make([]uint16, len(m.indices))
	for i, idx := range m.indices {
		out[i] = uint16(idx)
	}
	return out, nil
}

// Validate checks the structural invariants: indices in range, three
// distinct indices per triangle, one normal per vertex.
func (m *Mesh) Validate() error {
	if len(m.indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.indices))
	}
	n := uint32(len(m.vertices))
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.Triangle(t)
		if a >= n || b >= n || c >= n {
			return fmt.Errorf("triangle %d references vertex outside [0,%d)", t, n)
		}
		if a == b || b == c || a == c {
			return fmt.Errorf("triangle %d is degenerate: %d %d %d", t, a, b, c)
		}
	}
	if m.normals != nil && len(m.normals) != len(m.vertices) {
		return fmt.Errorf("%d normals for %d vertices", len(m.normals), len(m.vertices))
	}
	return nil
}

// Bounds returns the axis-aligned box around the finite vertices. ok is
// false when no vertex is finite.
func (m *Mesh) Bounds() (lo, hi Vector3, ok bool) {
	for _, p := range m.vertices {
		if !isFinite(p) {
			continue
		}
		if !ok {
			lo, hi, ok = p, p, true
			continue
		}
		lo = Vector3{math.Min(lo.X, p.X), math.Min(lo.Y, p.Y), math.Min(lo.Z, p.Z)}
		hi = Vector3{math.Max(hi.X, p.X), math.Max(hi.Y, p.Y), math.Max(hi.Z, p.Z)}
	}
	return lo, hi, ok
}

// Center is the middle of Bounds, or the origin for an all-NaN mesh.
func (m *Mesh) Center() Vector3 {
	lo, hi, ok := m.Bounds()
	if !ok {
		return Vector3{}
	}
	return lo.Add(hi).Scale(0.5)
}

func isFinite(p Vector3) bool {
	for _, c := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func flatten(points []Vector3) []float32 {
	out := make([]float32, 0, len(points)*3)
	for _, p := range points {
		out = append(out, float32(p.X), float32(p.Y), float32(p.Z))
	}
	return out
}
