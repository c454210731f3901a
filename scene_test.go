package gosurf3d

import (
	"errors"
	"testing"
)

func newTestScene(t *testing.T, cfg Config) *Scene {
	t.Helper()
	s, err := NewScene(cfg)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return s
}

func TestNewScene(t *testing.T) {
	s := newTestScene(t, DefaultConfig())

	if got := s.Surface().Name(); got != "richmond" {
		t.Errorf("surface = %q", got)
	}
	if got := len(s.Mesh().Vertices()); got != 51*51 {
		t.Errorf("vertices = %d, want %d", got, 51*51)
	}
	if !s.TakeDirty() {
		t.Error("new scene is not dirty")
	}
	if s.TakeDirty() {
		t.Error("TakeDirty did not reset")
	}
}

func TestNewSceneErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Surface = "torus"
	if _, err := NewScene(cfg); !errors.Is(err, ErrUnknownSurface) {
		t.Errorf("unknown surface: err = %v", err)
	}

	cfg = DefaultConfig()
	cfg.ViewDirection = &Vector3{}
	if _, err := NewScene(cfg); !errors.Is(err, ErrDegenerateView) {
		t.Errorf("degenerate view: err = %v", err)
	}
}

func TestSceneSteps(t *testing.T) {
	s := newTestScene(t, DefaultConfig())

	s.SetSteps(0, 10)
	if u, v := s.Steps(); u != DefaultSteps || v != 10 {
		t.Errorf("Steps = %d,%d, want %d,10", u, v, DefaultSteps)
	}
	if got := len(s.Mesh().Vertices()); got != 51*11 {
		t.Errorf("vertices = %d", got)
	}

	s.AdjustSteps(-100, 1000)
	if u, v := s.Steps(); u != 1 || v != MaxSteps {
		t.Errorf("Steps = %d,%d, want 1,%d", u, v, MaxSteps)
	}
	if _, err := s.Mesh().Indices16(); err != nil {
		t.Errorf("Indices16 at the step limit: %v", err)
	}
}

func TestSceneSurfaces(t *testing.T) {
	s := newTestScene(t, DefaultConfig())

	var seen []string
	for i := 0; i < 3; i++ {
		s.NextSurface()
		seen = append(seen, s.Surface().Name())
	}
	diff(t, []string{"sievert", "plane", "richmond"}, seen)

	if err := s.SetSurface("plane"); err != nil {
		t.Fatal(err)
	}
	if got := s.Mesh().Name(); got != "plane" {
		t.Errorf("mesh name = %q", got)
	}
	if err := s.SetSurface("nope"); !errors.Is(err, ErrUnknownSurface) {
		t.Errorf("err = %v", err)
	}
	if got := s.Surface().Name(); got != "plane" {
		t.Errorf("failed SetSurface changed surface to %q", got)
	}
}

func TestSceneWireframe(t *testing.T) {
	s := newTestScene(t, DefaultConfig())
	s.TakeDirty()

	s.SetWireframe(false)
	if s.TakeDirty() {
		t.Error("unchanged topology regenerated the mesh")
	}

	s.SetWireframe(true)
	if !s.Wireframe() || s.Mesh().Topology() != TopologyWireframe {
		t.Error("wireframe not applied")
	}
	if !s.TakeDirty() {
		t.Error("topology change did not mark the scene dirty")
	}

	b := &recordingBatcher{}
	stats := s.Render(b)
	if stats.Strips == 0 || len(b.triangles) != 0 {
		t.Errorf("wireframe render: %+v", stats)
	}
}

func TestSceneRotation(t *testing.T) {
	s := newTestScene(t, DefaultConfig())
	s.TakeDirty()

	r := s.Rotator()
	_, _, before := r.Basis()
	r.Press(Vector2{320, 240}, 640, 480)
	r.Move(Vector2{360, 260})
	r.Release()
	if !s.TakeDirty() {
		t.Error("drag did not mark the scene dirty")
	}

	if err := s.ResetView(); err != nil {
		t.Fatal(err)
	}
	_, _, after := r.Basis()
	diff(t, before, after, approx)

	b := &recordingBatcher{}
	if stats := s.Render(b); stats.Triangles == 0 {
		t.Errorf("render drew nothing: %+v", stats)
	}
}

func TestSceneCenterOnMesh(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CenterOnMesh = true
	s := newTestScene(t, cfg)
	diff(t, s.Mesh().Center(), s.Rotator().RotationCenter())

	cfg = DefaultConfig()
	cfg.RotationCenter = &Vector3{1, 2, 3}
	s = newTestScene(t, cfg)
	diff(t, Vector3{1, 2, 3}, s.Rotator().RotationCenter())
}

func TestSceneViewport(t *testing.T) {
	s := newTestScene(t, DefaultConfig())
	s.TakeDirty()

	s.SetViewport(640, 480)
	if s.TakeDirty() {
		t.Error("same viewport marked dirty")
	}
	s.SetViewport(800, 600)
	if !s.TakeDirty() {
		t.Error("new viewport not marked dirty")
	}
	if w, h := s.Camera().Viewport(); w != 800 || h != 600 {
		t.Errorf("viewport = %dx%d", w, h)
	}
}
