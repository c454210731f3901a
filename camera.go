package gosurf3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	fieldOfView = math.Pi / 8
	nearPlane   = 0.1
	farPlane    = 100.0
	eyeDistance = 10.0
	tiltAngle   = 0.7
)

// Camera composes the trackball view with the fixed scene transforms of the
// draw loop: a tilt about (1,1,0), a push back along -z, and a perspective
// projection.
type Camera struct {
	width  int
	height int

	projection mgl64.Mat4
	tilt       mgl64.Mat4
	eye        mgl64.Mat4
}

func NewCamera(width, height int) *Camera {
	c := &Camera{
		tilt: AxisRotation(Vector3{math.Sqrt2 / 2, math.Sqrt2 / 2, 0}, tiltAngle),
		eye:  mgl64.Translate3D(0, 0, -eyeDistance),
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the projection for a new viewport size.
func (c *Camera) SetViewport(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.width, c.height = width, height
	c.projection = mgl64.Perspective(fieldOfView, float64(width)/float64(height), nearPlane, farPlane)
}

func (c *Camera) Viewport() (int, int) {
	return c.width, c.height
}

func (c *Camera) Projection() mgl64.Mat4 {
	return c.projection
}

// ModelView is eye * tilt * view.
func (c *Camera) ModelView(view mgl64.Mat4) mgl64.Mat4 {
	return c.eye.Mul4(c.tilt).Mul4(view)
}

func (c *Camera) ModelViewProjection(view mgl64.Mat4) mgl64.Mat4 {
	return c.projection.Mul4(c.ModelView(view))
}

// Project maps a model-space point through mvp to viewport pixels (origin
// top-left, y down) and returns the NDC depth. ok is false for points on or
// behind the eye plane and for non-finite points.
func (c *Camera) Project(mvp mgl64.Mat4, p Vector3) (screen Vector2, depth float64, ok bool) {
	clip := mvp.Mul4x1(p.Vec3().Vec4(1))
	w := clip.W()
	if !(w > 1e-9) || math.IsInf(w, 0) {
		return Vector2{}, 0, false
	}
	nx, ny, nz := clip.X()/w, clip.Y()/w, clip.Z()/w
	if math.IsNaN(nx) || math.IsNaN(ny) || math.IsNaN(nz) {
		return Vector2{}, 0, false
	}
	screen = Vector2{
		X: (nx + 1) / 2 * float64(c.width),
		Y: (1 - ny) / 2 * float64(c.height),
	}
	return screen, nz, true
}
