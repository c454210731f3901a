package gosurf3d

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrDegenerateView = errors.New("view direction is zero or parallel to view up")

var (
	DefaultViewDirection = Vector3{0, 0, 10}
	DefaultViewUp        = Vector3{0, 1, 0}
)

// TrackballRotator turns pointer drags on a viewport into rotations of the
// scene about a rotation center. Orientation is kept as an orthonormal basis
// (unitX, unitY, unitZ) and every drag step is applied as a pair of
// reflections, so no angles or quaternions are stored.
//
// A rotator is owned by one goroutine, normally the one running the UI
// event loop.
type TrackballRotator struct {
	unitX Vector3
	unitY Vector3
	unitZ Vector3

	viewZ     float64
	hasViewZ  bool
	center    Vector3
	hasCenter bool

	onChange func()

	gesture gesture
}

// NewTrackballRotator builds a rotator. nil arguments take the defaults:
// no view distance, direction DefaultViewDirection, up DefaultViewUp.
// onChange, if non-nil, runs synchronously after every drag step.
func NewTrackballRotator(onChange func(), viewDistance *float64, viewDirection, viewUp *Vector3) (*TrackballRotator, error) {
	r := &TrackballRotator{onChange: onChange}
	if err := r.SetView(viewDistance, viewDirection, viewUp); err != nil {
		return nil, err
	}
	return r, nil
}

// SetView resets the orientation. The basis comes from Gram-Schmidt:
// forward = |d|, up = |u - forward(u.forward)|, right = up x forward.
// A zero direction or an up hint parallel to it returns ErrDegenerateView
// and leaves the rotator unchanged. viewDistance nil clears the distance.
func (r *TrackballRotator) SetView(viewDistance *float64, viewDirection, viewUp *Vector3) error {
	d := DefaultViewDirection
	if viewDirection != nil {
		d = *viewDirection
	}
	u := DefaultViewUp
	if viewUp != nil {
		u = *viewUp
	}

	if d.IsZero() {
		return ErrDegenerateView
	}
	forward := d.Normalize()
	up := u.Sub(forward.Scale(forward.Dot(u)))
	if up.Length() <= 1e-12*u.Length() {
		return ErrDegenerateView
	}
	up = up.Normalize()

	r.unitZ = forward
	r.unitY = up
	r.unitX = up.Cross(forward)
	if viewDistance != nil {
		r.viewZ, r.hasViewZ = *viewDistance, true
	} else {
		r.viewZ, r.hasViewZ = 0, false
	}
	return nil
}

// Basis returns the current right, up and forward vectors.
func (r *TrackballRotator) Basis() (right, up, forward Vector3) {
	return r.unitX, r.unitY, r.unitZ
}

func (r *TrackballRotator) SetOnChange(fn func()) {
	r.onChange = fn
}

// ViewDistance reports the distance and whether one is set.
func (r *TrackballRotator) ViewDistance() (float64, bool) {
	return r.viewZ, r.hasViewZ
}

func (r *TrackballRotator) SetViewDistance(d float64) {
	r.viewZ, r.hasViewZ = d, true
}

// ClearViewDistance removes the translation along the view axis.
func (r *TrackballRotator) ClearViewDistance() {
	r.viewZ, r.hasViewZ = 0, false
}

// RotationCenter returns the center, or the origin when none is set.
func (r *TrackballRotator) RotationCenter() Vector3 {
	if !r.hasCenter {
		return Vector3{}
	}
	return r.center
}

func (r *TrackballRotator) SetRotationCenter(p Vector3) {
	r.center, r.hasCenter = p, true
}

func (r *TrackballRotator) ClearRotationCenter() {
	r.center, r.hasCenter = Vector3{}, false
}

// ViewMatrix returns the view transform, column-major. Its rotation block
// has the basis vectors as rows. The translation column is c - Rc for the
// rotation center c, so the scene turns about c, and the view distance, if
// set, is subtracted from its z component.
func (r *TrackballRotator) ViewMatrix() mgl64.Mat4 {
	m := mgl64.Mat4{
		r.unitX.X, r.unitY.X, r.unitZ.X, 0,
		r.unitX.Y, r.unitY.Y, r.unitZ.Y, 0,
		r.unitX.Z, r.unitY.Z, r.unitZ.Z, 0,
		0, 0, 0, 1,
	}
	if r.hasCenter {
		c := r.center
		m[12] = c.X - r.unitX.Dot(c)
		m[13] = c.Y - r.unitY.Dot(c)
		m[14] = c.Z - r.unitZ.Dot(c)
	}
	if r.hasViewZ {
		m[14] -= r.viewZ
	}
	return m
}

// applyTransvection applies the drag from ray e1 to ray e2. Each basis vector
// is reflected through the bisector of e1 and e2 and then through e1. The two
// reflections compose to the rotation taking e2 back to e1, so through the
// view matrix the scene turns e1 onto e2. Steps without a defined bisector
// are dropped.
func (r *TrackballRotator) applyTransvection(e1, e2 Vector3) {
	if e1.IsZero() || e2.IsZero() {
		return
	}
	e1 = e1.Normalize()
	e2 = e2.Normalize()
	sum := e1.Add(e2)
	if sum.IsZero() {
		return
	}
	e := sum.Normalize()

	r.unitZ = r.unitZ.Reflect(e).Reflect(e1)
	r.unitX = r.unitX.Reflect(e).Reflect(e1)
	r.unitY = r.unitY.Reflect(e).Reflect(e1)
}

// toRay maps viewport pixel p onto a hemisphere whose equator is the circle
// of radius sqrt(radius2) around the viewport center. Points outside the
// circle map to themselves in the image plane, which spins the view about
// the forward axis.
func (r *TrackballRotator) toRay(p Vector2) Vector3 {
	g := &r.gesture
	dx := p.X - g.centerX
	dy := g.centerY - p.Y
	v := r.unitX.Scale(dx).Add(r.unitY.Scale(dy))
	dist2 := v.Dot(v)
	if dist2 > g.radius2 {
		return v
	}
	return v.Add(r.unitZ.Scale(math.Sqrt(g.radius2 - dist2)))
}
