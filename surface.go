package gosurf3d

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var ErrUnknownSurface = errors.New("unknown surface")

// Domain is the parameter rectangle [UMin,UMax] x [VMin,VMax].
type Domain struct {
	UMin, UMax float64
	VMin, VMax float64
}

// ParametricSurface is a pure function of two parameters plus the domain it
// is sampled over. Evaluate must not keep state between calls.
//
// Surfaces with a singular locus inside their domain (Richmond at u=v=0,
// Sievert for v<=0) return NaN or Inf there. The tessellator passes those
// values through untouched, so pick domain bounds that avoid the locus.
type ParametricSurface interface {
	Name() string
	Evaluate(u, v float64) Vector3
	Domain() Domain
}

// SurfaceFunc is the bare parametric formula.
type SurfaceFunc func(u, v float64) Vector3

// FuncSurface adapts a SurfaceFunc and a Domain to ParametricSurface.
type FuncSurface struct {
	Label string
	Fn    SurfaceFunc
	Dom   Domain
}

func NewFuncSurface(name string, fn SurfaceFunc, d Domain) *FuncSurface {
	return &FuncSurface{Label: name, Fn: fn, Dom: d}
}

func (s *FuncSurface) Name() string                  { return s.Label }
func (s *FuncSurface) Evaluate(u, v float64) Vector3 { return s.Fn(u, v) }
func (s *FuncSurface) Domain() Domain                { return s.Dom }

// RichmondSurface is Richmond's minimal surface. The formula has u^2+v^2 in
// the denominator, so the default domain keeps v away from zero.
type RichmondSurface struct{}

func (RichmondSurface) Name() string { return "richmond" }

func (RichmondSurface) Domain() Domain {
	return Domain{UMin: -1, UMax: 1, VMin: 0.2, VMax: 1}
}

func (RichmondSurface) Evaluate(u, v float64) Vector3 {
	u2, v2 := u*u, v*v
	u3, v3 := u2*u, v2*v
	d := 6 * (u2 + v2)
	x := (-3*u - u3*u2 + 2*u3*v2 + 3*u*v2*v2) / d
	y := (-3*v - 3*u2*u2*v - 2*u2*v3 + v3*v2) / d
	return Vector3{X: x, Y: y, Z: u}
}

// SievertSurface is Sievert's surface with shape constant C. The log term is
// NaN for v <= 0, so the domain keeps v inside (0, pi).
type SievertSurface struct {
	C float64
}

func (SievertSurface) Name() string { return "sievert" }

func (SievertSurface) Domain() Domain {
	return Domain{
		UMin: -0.95 * math.Pi / 2,
		UMax: 0.95 * math.Pi / 2,
		VMin: 0.05 * math.Pi,
		VMax: 0.95 * math.Pi,
	}
}

func (s SievertSurface) Evaluate(u, v float64) Vector3 {
	c := s.C
	sinU, cosU := math.Sincos(u)
	sinV, cosV := math.Sincos(v)

	phi := -u/math.Sqrt(c+1) + math.Atan(math.Sqrt(c+1)*math.Tan(u))
	a := 2 / (c + 1 - c*sinV*sinV*cosU*cosU)
	r := a / math.Sqrt(c) * math.Sqrt((c+1)*(1+c*sinU*sinU)) * sinV

	return Vector3{
		X: r * math.Cos(phi),
		Y: r * math.Sin(phi),
		Z: (math.Log(math.Tan(v/2)) + a*(c+1)*cosV) / 2,
	}
}

// PlaneSurface is the flat patch (u, v, 0).
type PlaneSurface struct{}

func (PlaneSurface) Name() string { return "plane" }

func (PlaneSurface) Domain() Domain {
	return Domain{UMin: -1, UMax: 1, VMin: -1, VMax: 1}
}

func (PlaneSurface) Evaluate(u, v float64) Vector3 {
	return Vector3{X: u, Y: v}
}

var surfaces = map[string]func() ParametricSurface{
	"richmond": func() ParametricSurface { return RichmondSurface{} },
	"sievert":  func() ParametricSurface { return SievertSurface{C: 1} },
	"plane":    func() ParametricSurface { return PlaneSurface{} },
}

// SurfaceByName looks a surface up in the built-in catalogue.
func SurfaceByName(name string) (ParametricSurface, error) {
	ctor, ok := surfaces[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSurface, name)
	}
	return ctor(), nil
}

// SurfaceNames lists the catalogue in a stable order.
func SurfaceNames() []string {
	names := make([]string, 0, len(surfaces))
	for n := range surfaces {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
