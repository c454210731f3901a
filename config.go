package gosurf3d

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

const (
	defaultWidth  = 640
	defaultHeight = 480
)

// Config is the startup configuration of a Scene. Pointer fields are
// optional; nil means unset.
type Config struct {
	Surface   string
	USteps    int
	VSteps    int
	Wireframe bool

	ViewDistance   *float64
	ViewDirection  *Vector3
	ViewUp         *Vector3
	RotationCenter *Vector3
	// CenterOnMesh puts the rotation center in the middle of the mesh's
	// bounding box. It overrides RotationCenter.
	CenterOnMesh bool

	AnimateLight bool
	Width        int
	Height       int
	ExportPath   string
}

func DefaultConfig() Config {
	return Config{
		Surface:      "richmond",
		USteps:       DefaultSteps,
		VSteps:       DefaultSteps,
		AnimateLight: true,
		Width:        defaultWidth,
		Height:       defaultHeight,
	}
}

// Normalize replaces a non-positive resolution with DefaultSteps and a
// missing window size with the default.
func (c *Config) Normalize() {
	if c.USteps < 1 {
		log.Printf("uSteps %d is not positive, using %d", c.USteps, DefaultSteps)
		c.USteps = DefaultSteps
	}
	if c.VSteps < 1 {
		log.Printf("vSteps %d is not positive, using %d", c.VSteps, DefaultSteps)
		c.VSteps = DefaultSteps
	}
	if c.Width < 1 {
		c.Width = defaultWidth
	}
	if c.Height < 1 {
		c.Height = defaultHeight
	}
	if c.Surface == "" {
		c.Surface = "richmond"
	}
}

func (c Config) Topology() Topology {
	if c.Wireframe {
		return TopologyWireframe
	}
	return TopologySurface
}

// ParseSteps reads a resolution. Text that is not a positive integer yields
// DefaultSteps.
func ParseSteps(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultSteps
	}
	return NormalizeSteps(n)
}

// ParseVector3 reads "x,y,z".
func ParseVector3(s string) (Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Vector3{}, fmt.Errorf("vector %q: want 3 comma-separated components, got %d", s, len(parts))
	}
	var xyz [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Vector3{}, fmt.Errorf("vector %q component %d: %w", s, i, err)
		}
		xyz[i] = v
	}
	return NewVector3FromArray(xyz[:]), nil
}
