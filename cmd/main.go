package main

import (
	"flag"
	"log"
	"strconv"
	"strings"

	"github.com/smasonuk/gosurf3d"
	"github.com/smasonuk/gosurf3d/viewer"
)

func vectorFlag(name, usage string, dst **gosurf3d.Vector3) {
	flag.Func(name, usage, func(s string) error {
		v, err := gosurf3d.ParseVector3(s)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	})
}

func main() {
	cfg := gosurf3d.DefaultConfig()

	flag.StringVar(&cfg.Surface, "surface", cfg.Surface, "surface to show: "+strings.Join(gosurf3d.SurfaceNames(), ", "))
	uSteps := flag.String("u", strconv.Itoa(cfg.USteps), "grid steps along u; non-positive or non-numeric uses the default")
	vSteps := flag.String("v", strconv.Itoa(cfg.VSteps), "grid steps along v; non-positive or non-numeric uses the default")
	flag.BoolVar(&cfg.Wireframe, "wireframe", cfg.Wireframe, "draw U and V lines instead of shaded triangles")
	flag.Func("distance", "view distance along the view axis", func(s string) error {
		d, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		cfg.ViewDistance = &d
		return nil
	})
	vectorFlag("direction", "initial view direction x,y,z (default 0,0,10)", &cfg.ViewDirection)
	vectorFlag("up", "initial view up x,y,z (default 0,1,0)", &cfg.ViewUp)
	vectorFlag("center", "rotation center x,y,z (default origin)", &cfg.RotationCenter)
	flag.BoolVar(&cfg.CenterOnMesh, "center-mesh", cfg.CenterOnMesh, "rotate about the middle of the mesh bounding box")
	flag.BoolVar(&cfg.AnimateLight, "animate-light", cfg.AnimateLight, "orbit the light around the surface")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	flag.StringVar(&cfg.ExportPath, "export", "", "write the mesh as PLY to this file and exit")
	flag.Parse()

	cfg.USteps = gosurf3d.ParseSteps(*uSteps)
	cfg.VSteps = gosurf3d.ParseSteps(*vSteps)

	scene, err := gosurf3d.NewScene(cfg)
	if err != nil {
		log.Fatalf("Error creating scene: %v", err)
	}

	if cfg.ExportPath != "" {
		if err := scene.Mesh().SavePLY(cfg.ExportPath); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %s", cfg.ExportPath)
		return
	}

	if err := viewer.Run(scene); err != nil {
		log.Fatal(err)
	}
}
