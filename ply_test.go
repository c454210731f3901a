package gosurf3d

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestWritePLY(t *testing.T) {
	mesh := NewTessellator(TopologySurface).GenerateSurface(PlaneSurface{}, 1, 1)

	var buf bytes.Buffer
	if err := mesh.WritePLY(&buf); err != nil {
		t.Fatalf("WritePLY: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	header := []string{
		"ply",
		"format ascii 1.0",
		"comment Generated by gosurf3d: plane 1x1",
		"element vertex 4",
		"property float x",
		"property float y",
		"property float z",
		"property float nx",
		"property float ny",
		"property float nz",
		"element face 2",
		"property list uchar int vertex_indices",
		"end_header",
	}
	if len(lines) != len(header)+4+2 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	diff(t, header, lines[:len(header)])
	diff(t, []string{"3 0 2 1", "3 1 2 3"}, lines[len(header)+4:])

	want := [][6]float64{
		{-1, -1, 0, 0, 0, 1},
		{-1, 1, 0, 0, 0, 1},
		{1, -1, 0, 0, 0, 1},
		{1, 1, 0, 0, 0, 1},
	}
	for i, line := range lines[len(header) : len(header)+4] {
		fields := strings.Fields(line)
		if len(fields) != 6 {
			t.Fatalf("vertex line %q", line)
		}
		var got [6]float64
		for k, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				t.Fatalf("vertex line %q: %v", line, err)
			}
			got[k] = v
		}
		diff(t, want[i], got, approx)
	}
}

func TestWritePLYWireframe(t *testing.T) {
	mesh := NewTessellator(TopologyWireframe).GenerateSurface(PlaneSurface{}, 2, 2)
	if err := mesh.WritePLY(&bytes.Buffer{}); !errors.Is(err, ErrNoTopology) {
		t.Errorf("err = %v, want ErrNoTopology", err)
	}

	err := mesh.SavePLY(filepath.Join(t.TempDir(), "wire.ply"))
	if !errors.Is(err, ErrNoTopology) {
		t.Errorf("SavePLY err = %v, want wrapped ErrNoTopology", err)
	}
}

func TestSavePLY(t *testing.T) {
	mesh := NewTessellator(TopologySurface).GenerateSurface(RichmondSurface{}, 4, 4)
	path := filepath.Join(t.TempDir(), "richmond.ply")
	if err := mesh.SavePLY(path); err != nil {
		t.Fatalf("SavePLY: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("ply\nformat ascii 1.0\n")) {
		t.Errorf("unexpected header: %q", data[:40])
	}
	if !bytes.Contains(data, []byte("element vertex 25\n")) || !bytes.Contains(data, []byte("element face 32\n")) {
		t.Errorf("wrong element counts")
	}

	if err := mesh.SavePLY(filepath.Join(t.TempDir(), "missing", "x.ply")); err == nil {
		t.Error("SavePLY into a missing directory succeeded")
	}
}
