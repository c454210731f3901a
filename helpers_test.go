package gosurf3d

import (
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func vecAlmostEqual(a, b Vector3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, float64EqualityThreshold)

// recordingBatcher stands in for the ebiten drawing surface.
type recordingBatcher struct {
	triangles [][3]ScreenVertex
	strips    [][]Vector2
	colors    []color.RGBA
}

func (b *recordingBatcher) AddTriangle(v1, v2, v3 ScreenVertex) {
	b.triangles = append(b.triangles, [3]ScreenVertex{v1, v2, v3})
}

func (b *recordingBatcher) AddStrip(points []Vector2, clr color.RGBA) {
	b.strips = append(b.strips, append([]Vector2(nil), points...))
	b.colors = append(b.colors, clr)
}
