package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/smasonuk/gosurf3d"
)

// minMovePixels filters out ticks where the pointer did not move.
const minMovePixels = 1

// pointerInput polls ebiten's mouse and touch state once per tick and turns
// it into trackball gesture calls.
type pointerInput struct {
	lastCursor  gosurf3d.Vector2
	touchIDs    []ebiten.TouchID
	lastTouch   gosurf3d.Vector2
	touchActive bool
}

func cursor() gosurf3d.Vector2 {
	x, y := ebiten.CursorPosition()
	return gosurf3d.NewVector2(float64(x), float64(y))
}

func (in *pointerInput) update(r *gosurf3d.TrackballRotator, width, height int) {
	in.updateMouse(r, width, height)
	in.updateTouch(r, width, height)
}

func (in *pointerInput) updateMouse(r *gosurf3d.TrackballRotator, width, height int) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.lastCursor = cursor()
		r.Press(in.lastCursor, width, height)
		return
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		r.Release()
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		p := cursor()
		if p.Sub(in.lastCursor).Length() >= minMovePixels {
			r.Move(p)
			in.lastCursor = p
		}
	}
}

func (in *pointerInput) updateTouch(r *gosurf3d.TrackballRotator, width, height int) {
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	contacts := make([]gosurf3d.Vector2, len(in.touchIDs))
	for i, id := range in.touchIDs {
		x, y := ebiten.TouchPosition(id)
		contacts[i] = gosurf3d.NewVector2(float64(x), float64(y))
	}

	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		r.TouchStart(contacts, width, height)
		in.touchActive = len(contacts) == 1
		if in.touchActive {
			in.lastTouch = contacts[0]
		}
		return
	}
	if !in.touchActive {
		return
	}
	switch {
	case len(contacts) == 0:
		r.TouchEnd()
		in.touchActive = false
	case len(contacts) != 1:
		r.TouchCancel()
		in.touchActive = false
	case contacts[0].Sub(in.lastTouch).Length() >= minMovePixels:
		r.TouchMove(contacts)
		in.lastTouch = contacts[0]
	}
}
