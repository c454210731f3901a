package gosurf3d

import (
	"fmt"
	"log"
	"time"
)

// MaxSteps keeps (MaxSteps+1)^2 within a 16-bit index buffer.
const MaxSteps = 255

// Scene owns everything one viewer needs between frames: the selected
// surface, its current mesh, the trackball and the camera. It replaces
// process-wide state; callers create one and pass it around.
type Scene struct {
	cfg      Config
	surface  ParametricSurface
	surfaces *Clist
	tess     *Tessellator
	mesh     *Mesh
	rotator  *TrackballRotator
	camera   *Camera
	shading  Shading

	uSteps int
	vSteps int
	dirty  bool
}

func NewScene(cfg Config) (*Scene, error) {
	cfg.Normalize()
	surface, err := SurfaceByName(cfg.Surface)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		cfg:      cfg,
		surface:  surface,
		surfaces: NewClist(SurfaceNames()),
		tess:     NewTessellator(cfg.Topology()),
		camera:   NewCamera(cfg.Width, cfg.Height),
		shading:  DefaultShading(),
		uSteps:   cfg.USteps,
		vSteps:   cfg.VSteps,
	}
	s.surfaces.Seek(surface.Name())

	s.rotator, err = NewTrackballRotator(s.markDirty, cfg.ViewDistance, cfg.ViewDirection, cfg.ViewUp)
	if err != nil {
		return nil, fmt.Errorf("initial view: %w", err)
	}
	s.regenerate()
	return s, nil
}

func (s *Scene) markDirty() { s.dirty = true }

// TakeDirty reports whether the view changed since the last call.
func (s *Scene) TakeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}

func (s *Scene) Mesh() *Mesh                { return s.mesh }
func (s *Scene) Surface() ParametricSurface { return s.surface }
func (s *Scene) Rotator() *TrackballRotator { return s.rotator }
func (s *Scene) Camera() *Camera            { return s.camera }
func (s *Scene) Steps() (int, int)          { return s.uSteps, s.vSteps }
func (s *Scene) Wireframe() bool            { return s.tess.Topology == TopologyWireframe }
func (s *Scene) AnimateLight() bool         { return s.cfg.AnimateLight }

func (s *Scene) SetAnimateLight(animate bool) {
	s.cfg.AnimateLight = animate
	s.dirty = true
}

// SetSteps regenerates the mesh at a new resolution. Non-positive values
// fall back to DefaultSteps.
func (s *Scene) SetSteps(uSteps, vSteps int) {
	s.uSteps = NormalizeSteps(uSteps)
	s.vSteps = NormalizeSteps(vSteps)
	s.regenerate()
}

// AdjustSteps nudges the resolution, staying within [1, MaxSteps].
func (s *Scene) AdjustSteps(du, dv int) {
	u := clamp(s.uSteps+du, 1, MaxSteps)
	v := clamp(s.vSteps+dv, 1, MaxSteps)
	if u == s.uSteps && v == s.vSteps {
		return
	}
	s.SetSteps(u, v)
}

func (s *Scene) SetSurface(name string) error {
	surface, err := SurfaceByName(name)
	if err != nil {
		return err
	}
	s.surface = surface
	s.surfaces.Seek(name)
	s.regenerate()
	return nil
}

// NextSurface switches to the next surface of the catalogue.
func (s *Scene) NextSurface() {
	if err := s.SetSurface(s.surfaces.Next()); err != nil {
		log.Printf("switching surface: %v", err)
	}
}

func (s *Scene) SetWireframe(wireframe bool) {
	topology := TopologySurface
	if wireframe {
		topology = TopologyWireframe
	}
	if topology == s.tess.Topology {
		return
	}
	s.tess.Topology = topology
	s.regenerate()
}

// ResetView restores the configured view direction, up and distance.
func (s *Scene) ResetView() error {
	if err := s.rotator.SetView(s.cfg.ViewDistance, s.cfg.ViewDirection, s.cfg.ViewUp); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

func (s *Scene) SetViewport(width, height int) {
	if w, h := s.camera.Viewport(); w == width && h == height {
		return
	}
	s.camera.SetViewport(width, height)
	s.dirty = true
}

// SetLightTime moves the orbiting light to its position after elapsed.
func (s *Scene) SetLightTime(elapsed time.Duration) {
	s.shading.Light = OrbitingLight(elapsed)
}

// Render builds the current frame into b.
func (s *Scene) Render(b Batcher) FrameStats {
	return BuildFrame(s.mesh, s.camera, s.rotator.ViewMatrix(), s.shading, b)
}

// regenerate replaces the mesh wholesale.
func (s *Scene) regenerate() {
	s.mesh = s.tess.GenerateSurface(s.surface, s.uSteps, s.vSteps)
	switch {
	case s.cfg.CenterOnMesh:
		s.rotator.SetRotationCenter(s.mesh.Center())
	case s.cfg.RotationCenter != nil:
		s.rotator.SetRotationCenter(*s.cfg.RotationCenter)
	}
	s.dirty = true
}
