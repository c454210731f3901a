package gosurf3d

import (
	"errors"
	"math"
	"testing"
)

func TestRichmondSurface(t *testing.T) {
	got := RichmondSurface{}.Evaluate(1, 1)
	diff(t, Vector3{1.0 / 12, -7.0 / 12, 1}, got, approx)

	if p := (RichmondSurface{}).Evaluate(0, 0); !math.IsNaN(p.X) {
		t.Errorf("Evaluate(0, 0) = %v, want NaN", p)
	}
}

func TestSievertSurface(t *testing.T) {
	got := SievertSurface{C: 1}.Evaluate(0, math.Pi/2)
	if !vecAlmostEqual(got, Vector3{2 * math.Sqrt2, 0, 0}) {
		t.Errorf("Evaluate(0, pi/2) = %v", got)
	}

	d := SievertSurface{C: 1}.Domain()
	m := NewTessellator(TopologySurface).GenerateSurface(SievertSurface{C: 1}, 10, 10)
	for i, p := range m.Vertices() {
		if !isFinite(p) {
			t.Fatalf("vertex %d = %v is not finite over domain %+v", i, p, d)
		}
	}
}

func TestSurfaceByName(t *testing.T) {
	for _, name := range SurfaceNames() {
		s, err := SurfaceByName(name)
		if err != nil {
			t.Fatalf("SurfaceByName(%q): %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("SurfaceByName(%q).Name() = %q", name, s.Name())
		}
	}

	_, err := SurfaceByName("klein")
	if !errors.Is(err, ErrUnknownSurface) {
		t.Errorf("err = %v, want ErrUnknownSurface", err)
	}
}

func TestSurfaceNames(t *testing.T) {
	diff(t, []string{"plane", "richmond", "sievert"}, SurfaceNames())
}

func TestFuncSurface(t *testing.T) {
	s := NewFuncSurface("saddle", func(u, v float64) Vector3 {
		return Vector3{u, v, u*u - v*v}
	}, Domain{UMin: -1, UMax: 1, VMin: -1, VMax: 1})

	m := NewTessellator(TopologySurface).GenerateSurface(s, 4, 4)
	if m.Name() != "saddle" {
		t.Errorf("Name = %q", m.Name())
	}
	diff(t, Vector3{1, 1, 0}, m.Grid().At(4, 4))
}
