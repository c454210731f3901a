package viewer

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/smasonuk/gosurf3d"
)

// maxBatchVertices keeps every DrawTriangles call addressable with uint16
// indices.
const maxBatchVertices = 3 * 16000

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// triangleBatcher implements gosurf3d.Batcher on an ebiten image. Triangles
// are buffered and drawn in order; strips are stroked immediately.
type triangleBatcher struct {
	screen      *ebiten.Image
	strokeWidth float32
	vertices    []ebiten.Vertex
	indices     []uint16
}

func newTriangleBatcher() *triangleBatcher {
	return &triangleBatcher{
		strokeWidth: 1,
		vertices:    make([]ebiten.Vertex, 0, maxBatchVertices),
		indices:     make([]uint16, 0, maxBatchVertices),
	}
}

func (b *triangleBatcher) begin(screen *ebiten.Image) {
	b.screen = screen
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

func (b *triangleBatcher) AddTriangle(v1, v2, v3 gosurf3d.ScreenVertex) {
	if len(b.vertices)+3 > maxBatchVertices {
		b.flush()
	}
	base := uint16(len(b.vertices))
	b.vertices = append(b.vertices, toVertex(v1), toVertex(v2), toVertex(v3))
	b.indices = append(b.indices, base, base+1, base+2)
}

func (b *triangleBatcher) AddStrip(points []gosurf3d.Vector2, clr color.RGBA) {
	drawPolyline(b.screen, points, b.strokeWidth, clr)
}

func (b *triangleBatcher) flush() {
	if len(b.vertices) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	b.screen.DrawTriangles(b.vertices, b.indices, whiteSub, op)
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

func toVertex(v gosurf3d.ScreenVertex) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   v.X,
		DstY:   v.Y,
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(v.Color.R),
		ColorG: float32(v.Color.G),
		ColorB: float32(v.Color.B),
		ColorA: 1,
	}
}

// drawPolyline strokes an open path through points.
func drawPolyline(screen *ebiten.Image, points []gosurf3d.Vector2, strokeWidth float32, clr color.RGBA) {
	if len(points) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}

	strokeOp := &vector.StrokeOptions{
		Width:    strokeWidth,
		LineJoin: vector.LineJoinRound,
	}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOp)

	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0
	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}

	drawOp := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	}
	screen.DrawTriangles(vertices, indices, whiteSub, drawOp)
}
