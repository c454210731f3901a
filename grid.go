package gosurf3d

// Grid is the canonical sample storage of a tessellation: (USteps+1) x
// (VSteps+1) points stored row-major in u then v. U-lines are contiguous
// runs of Points; V-lines are gathered from it on demand, so neither line
// set is stored twice.
type Grid struct {
	USteps int
	VSteps int
	Points []Vector3
}

func newGrid(uSteps, vSteps int) *Grid {
	return &Grid{
		USteps: uSteps,
		VSteps: vSteps,
		Points: make([]Vector3, 0, (uSteps+1)*(vSteps+1)),
	}
}

// Index returns the position of sample (i, j) in Points.
func (g *Grid) Index(i, j int) int {
	return i*(g.VSteps+1) + j
}

func (g *Grid) At(i, j int) Vector3 {
	return g.Points[g.Index(i, j)]
}

// ULine returns the samples with u fixed at index i. The slice aliases the
// grid storage and must not be modified.
func (g *Grid) ULine(i int) []Vector3 {
	start := g.Index(i, 0)
	end := start + g.VSteps + 1
	return g.Points[start:end:end]
}

// VLine returns the samples with v fixed at index j, in increasing u order.
func (g *Grid) VLine(j int) []Vector3 {
	line := make([]Vector3, g.USteps+1)
	for i := range line {
		line[i] = g.At(i, j)
	}
	return line
}

func (g *Grid) ULines() [][]Vector3 {
	lines := make([][]Vector3, g.USteps+1)
	for i := range lines {
		lines[i] = g.ULine(i)
	}
	return lines
}

// VLines is the transpose of ULines: VLines()[j][i] == ULines()[i][j].
func (g *Grid) VLines() [][]Vector3 {
	lines := make([][]Vector3, g.VSteps+1)
	for j := range lines {
		lines[j] = g.VLine(j)
	}
	return lines
}
