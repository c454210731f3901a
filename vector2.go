package gosurf3d

import "math"

// Vector2 is a position in viewport pixels, origin top-left, y down.
type Vector2 struct {
	X float64
	Y float64
}

func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}
