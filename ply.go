package gosurf3d

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrNoTopology = errors.New("mesh has no triangles")

// SavePLY writes the mesh to fileName. See WritePLY.
func (m *Mesh) SavePLY(fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create PLY file %s: %w", fileName, err)
	}
	defer file.Close()

	if err := m.WritePLY(file); err != nil {
		return fmt.Errorf("error writing PLY file %s: %w", fileName, err)
	}
	return file.Close()
}

// WritePLY writes an ASCII PLY 1.0 document with per-vertex positions and
// normals and one triangle per face. Wireframe meshes have no faces and
// return ErrNoTopology.
func (m *Mesh) WritePLY(w io.Writer) error {
	if m.topology != TopologySurface {
		return ErrNoTopology
	}
	writer := bufio.NewWriter(w)

	_, _ = fmt.Fprintln(writer, "ply")
	_, _ = fmt.Fprintln(writer, "format ascii 1.0")
	_, _ = fmt.Fprintf(writer, "comment Generated by gosurf3d: %s %dx%d\n", m.name, m.grid.USteps, m.grid.VSteps)
	_, _ = fmt.Fprintf(writer, "element vertex %d\n", len(m.vertices))
	for _, prop := range []string{"x", "y", "z", "nx", "ny", "nz"} {
		_, _ = fmt.Fprintf(writer, "property float %s\n", prop)
	}
	_, _ = fmt.Fprintf(writer, "element face %d\n", m.TriangleCount())
	_, _ = fmt.Fprintln(writer, "property list uchar int vertex_indices")
	_, _ = fmt.Fprintln(writer, "end_header")

	for i, p := range m.vertices {
		n := m.normals[i]
		_, _ = fmt.Fprintf(writer, "%f %f %f %f %f %f\n", p.X, p.Y, p.Z, n.X, n.Y, n.Z)
	}
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.Triangle(t)
		_, _ = fmt.Fprintf(writer, "3 %d %d %d\n", a, b, c)
	}

	return writer.Flush()
}
