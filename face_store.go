package gosurf3d

import "sort"

// screenFace is one projected triangle waiting to be painted.
type screenFace struct {
	vertices [3]ScreenVertex
	depth    float64
}

// FaceStore collects projected triangles for the painter's algorithm.
type FaceStore struct {
	faces []screenFace
}

func NewFaceStore(capacity int) *FaceStore {
	return &FaceStore{faces: make([]screenFace, 0, capacity)}
}

func (fs *FaceStore) AddFace(a, b, c ScreenVertex, depth float64) {
	fs.faces = append(fs.faces, screenFace{vertices: [3]ScreenVertex{a, b, c}, depth: depth})
}

func (fs *FaceStore) FaceCount() int {
	return len(fs.faces)
}

// SortFacesByDepth puts the faces farthest from the eye first. depth is the
// eye-space z, which is more negative the farther away a face is.
func (fs *FaceStore) SortFacesByDepth() {
	sort.SliceStable(fs.faces, func(i, j int) bool {
		return fs.faces[i].depth < fs.faces[j].depth
	})
}

// Paint hands every face to b in stored order.
func (fs *FaceStore) Paint(b Batcher) {
	for _, f := range fs.faces {
		b.AddTriangle(f.vertices[0], f.vertices[1], f.vertices[2])
	}
}
