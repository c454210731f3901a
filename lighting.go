package gosurf3d

import (
	"image/color"
	"math"
	"time"
)

// Color3 is a linear RGB color with components in [0,1].
type Color3 struct {
	R, G, B float64
}

func (c Color3) Add(o Color3) Color3 {
	return Color3{c.R + o.R, c.G + o.G, c.B + o.B}
}

func (c Color3) Scale(s float64) Color3 {
	return Color3{c.R * s, c.G * s, c.B * s}
}

func (c Color3) Clamp() Color3 {
	return Color3{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

func (c Color3) RGBA() color.RGBA {
	c = c.Clamp()
	return color.RGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: 255,
	}
}

// Material holds Phong reflection coefficients.
type Material struct {
	Ambient   Color3
	Diffuse   Color3
	Specular  Color3
	Shininess float64
}

func DefaultMaterial() Material {
	return Material{
		Ambient:   Color3{0.2, 0.2, 0.2},
		Diffuse:   Color3{0.7, 0.7, 0.7},
		Specular:  Color3{1, 1, 1},
		Shininess: 32,
	}
}

// Light is a point light in eye space.
type Light struct {
	Position Vector3
}

// DefaultViewPosition is where the viewer sits for specular highlights.
var DefaultViewPosition = Vector3{0, 0, 5}

const (
	lightOrbitRadius = 10.0
	lightOrbitHeight = 5.0
	lightOrbitSpeed  = 0.001 // radians per millisecond
)

// OrbitingLight circles the y axis at radius 10, height 5.
func OrbitingLight(elapsed time.Duration) Light {
	t := float64(elapsed.Milliseconds()) * lightOrbitSpeed
	return Light{Position: Vector3{
		X: lightOrbitRadius * math.Cos(t),
		Y: lightOrbitHeight,
		Z: lightOrbitRadius * math.Sin(t),
	}}
}

// Shade evaluates ambient, diffuse and specular terms at an eye-space position.
// A zero or non-finite normal gets the ambient term only.
func (m Material) Shade(light Light, viewPos, position, normal Vector3) Color3 {
	result := m.Ambient
	n := normal.NormalizeOrZero()
	if n.IsZero() || !isFinite(n) {
		return result.Clamp()
	}

	l := light.Position.Sub(position).NormalizeOrZero()
	v := viewPos.Sub(position).NormalizeOrZero()

	diff := math.Max(n.Dot(l), 0)
	result = result.Add(m.Diffuse.Scale(diff))

	// Faces turned away from the light get no highlight.
	if diff > 0 {
		// reflect(-l, n)
		r := l.Reflect(n)
		spec := math.Pow(math.Max(v.Dot(r), 0), m.Shininess)
		result = result.Add(m.Specular.Scale(spec))
	}

	return result.Clamp()
}
