package gosurf3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 is a 3-tuple used for both directions and points.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func NewVector3FromArray(a []float64) Vector3 {
	return Vector3{X: a[0], Y: a[1], Z: a[2]}
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross calculates the cross product v x o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize divides by the length without guarding against zero, so a zero
// vector comes back as NaNs. Use NormalizeOrZero where zero is a legal input.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

// NormalizeOrZero returns the zero vector for zero-length input.
func (v Vector3) NormalizeOrZero() Vector3 {
	l := v.Length()
	if l == 0 {
		return Vector3{}
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

// Reflect reflects v through the line spanned by the unit vector axis:
// 2(axis.v)axis - v.
func (v Vector3) Reflect(axis Vector3) Vector3 {
	return axis.Scale(2 * axis.Dot(v)).Sub(v)
}

func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func (v Vector3) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func FromVec3(v mgl64.Vec3) Vector3 {
	return Vector3{v[0], v[1], v[2]}
}

// Array returns the components as a [3]float64, the layout the render
// layer uploads.
func (v Vector3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
