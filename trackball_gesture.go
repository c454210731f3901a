package gosurf3d

import "math"

type GestureState int

const (
	GestureIdle GestureState = iota
	GestureDragging
)

func (s GestureState) String() string {
	if s == GestureDragging {
		return "dragging"
	}
	return "idle"
}

type pointerSource int

const (
	sourceNone pointerSource = iota
	sourceMouse
	sourceTouch
)

type gesture struct {
	state   GestureState
	source  pointerSource
	prev    Vector2
	centerX float64
	centerY float64
	radius2 float64
}

func (r *TrackballRotator) GestureState() GestureState {
	return r.gesture.state
}

// Press starts a mouse drag at p on a width x height viewport. A press while
// a drag is already running is ignored.
func (r *TrackballRotator) Press(p Vector2, width, height int) {
	if r.gesture.state == GestureDragging {
		return
	}
	r.begin(sourceMouse, p, width, height)
}

// Move continues a mouse drag. It reports whether the orientation changed.
func (r *TrackballRotator) Move(p Vector2) bool {
	if r.gesture.state != GestureDragging || r.gesture.source != sourceMouse {
		return false
	}
	r.dragTo(p)
	return true
}

// Release ends a mouse drag. Rotation already applied stays applied.
func (r *TrackballRotator) Release() {
	if r.gesture.source == sourceMouse {
		r.end()
	}
}

// TouchStart starts a touch drag. Anything other than exactly one contact
// cancels the touch gesture instead.
func (r *TrackballRotator) TouchStart(contacts []Vector2, width, height int) {
	if len(contacts) != 1 {
		r.TouchCancel()
		return
	}
	if r.gesture.state == GestureDragging && r.gesture.source == sourceMouse {
		return
	}
	r.begin(sourceTouch, contacts[0], width, height)
}

// TouchMove continues a touch drag; a second finger cancels it.
func (r *TrackballRotator) TouchMove(contacts []Vector2) bool {
	if len(contacts) != 1 || r.gesture.state != GestureDragging || r.gesture.source != sourceTouch {
		r.TouchCancel()
		return false
	}
	r.dragTo(contacts[0])
	return true
}

func (r *TrackballRotator) TouchEnd() {
	r.TouchCancel()
}

func (r *TrackballRotator) TouchCancel() {
	if r.gesture.source == sourceTouch {
		r.end()
	}
}

func (r *TrackballRotator) begin(src pointerSource, p Vector2, width, height int) {
	cx := float64(width) / 2
	cy := float64(height) / 2
	radius := math.Min(cx, cy)
	r.gesture = gesture{
		state:   GestureDragging,
		source:  src,
		prev:    p,
		centerX: cx,
		centerY: cy,
		radius2: radius * radius,
	}
}

func (r *TrackballRotator) dragTo(p Vector2) {
	ray1 := r.toRay(r.gesture.prev)
	ray2 := r.toRay(p)
	r.applyTransvection(ray1, ray2)
	r.gesture.prev = p
	if r.onChange != nil {
		r.onChange()
	}
}

func (r *TrackballRotator) end() {
	r.gesture = gesture{}
}
