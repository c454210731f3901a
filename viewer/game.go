// Package viewer shows a gosurf3d.Scene in an ebiten window.
package viewer

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/smasonuk/gosurf3d"
)

type Game struct {
	scene   *gosurf3d.Scene
	width   int
	height  int
	input   pointerInput
	batcher *triangleBatcher
	start   time.Time
	stats   gosurf3d.FrameStats
}

func NewGame(scene *gosurf3d.Scene) *Game {
	w, h := scene.Camera().Viewport()
	return &Game{
		scene:   scene,
		width:   w,
		height:  h,
		batcher: newTriangleBatcher(),
		start:   time.Now(),
	}
}

// Run opens the window and blocks until it is closed.
func Run(scene *gosurf3d.Scene) error {
	g := NewGame(scene)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("gosurf3d: " + scene.Surface().Name())
	// Frames are only repainted when the scene changes or the light moves.
	ebiten.SetScreenClearedEveryFrame(false)
	log.Printf("Viewer started: %dx%d, surface %s", g.width, g.height, scene.Surface().Name())
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	g.input.update(g.scene.Rotator(), g.width, g.height)
	g.handleKeys()
	return nil
}

func (g *Game) handleKeys() {
	step := 1
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		step = 10
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.scene.AdjustSteps(step, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.scene.AdjustSteps(-step, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.scene.AdjustSteps(0, step)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.scene.AdjustSteps(0, -step)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.scene.SetWireframe(!g.scene.Wireframe())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.scene.NextSurface()
		ebiten.SetWindowTitle("gosurf3d: " + g.scene.Surface().Name())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.scene.ResetView(); err != nil {
			log.Printf("reset view: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.scene.SetAnimateLight(!g.scene.AnimateLight())
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.scene.TakeDirty() && !g.scene.AnimateLight() {
		return
	}
	screen.Fill(color.White)

	if g.scene.AnimateLight() {
		g.scene.SetLightTime(time.Since(g.start))
	}

	g.batcher.begin(screen)
	g.stats = g.scene.Render(g.batcher)
	g.batcher.flush()

	u, v := g.scene.Steps()
	mode := "surface"
	if g.scene.Wireframe() {
		mode = "wireframe"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%s %s  u=%d v=%d  tris=%d strips=%d  FPS: %0.2f\narrows: steps  W: wireframe  Tab: surface  R: reset  L: light",
		g.scene.Surface().Name(), mode, u, v, g.stats.Triangles, g.stats.Strips, ebiten.ActualFPS(),
	))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
