package dragview

// NoPointer is the ActivePointerID sentinel between gestures.
const NoPointer = -1

// GestureState is the complete state of the drag state machine. It is a plain
// value: Intercept and Handle return an updated copy rather than mutating the
// receiver, so a gesture can be stepped and inspected without a host.
type GestureState struct {
	// Orientation selects the draggable axes. Read on every move.
	Orientation Orientation
	// TouchSlop is the distance a pointer must travel on an enabled axis
	// before the gesture is treated as a drag.
	TouchSlop float64

	// ActivePointerID is the pointer driving the gesture, or NoPointer.
	ActivePointerID int
	// InitialTouch is where the active pointer went down (or was handed off).
	// Drag intent is measured from here.
	InitialTouch Point
	// LastTouch is the coordinate translation deltas are measured from. It
	// only advances once the gesture is dragging.
	LastTouch Point
	// DragOffset is the net translation applied during the current gesture.
	DragOffset Vec2
	// Dragging is true once the slop has been exceeded on an enabled axis.
	// It never reverts within a gesture.
	Dragging bool

	dragReported bool // EventDragStart already emitted for this gesture
}

// NewGestureState returns an idle state that drags on both axes.
func NewGestureState(touchSlop float64) GestureState {
	return GestureState{
		Orientation:     OrientationAll,
		TouchSlop:       touchSlop,
		ActivePointerID: NoPointer,
	}
}

// Decision describes what the host side must do after Handle processed an
// event. Controller applies it to a Container.
type Decision struct {
	// Handled is false only when a move arrived for a pointer that is no
	// longer in the event. Nothing else in the decision is set then.
	Handled bool
	// Claim mirrors Dragging after the event.
	Claim bool

	// PointerID and Point are the active pointer and its rounded coordinate
	// for moves.
	PointerID int
	Point     Point

	// DragStarted is set on the first dragging move of the gesture.
	DragStarted bool
	// Dragged is set on every move processed while dragging.
	Dragged bool
	// DragEnded is set when an up or cancel terminates a drag.
	DragEnded bool
	// Canceled is set alongside DragEnded when the terminating event was a cancel.
	Canceled bool

	// Delta is the translation to add to the container, already gated by
	// the orientation.
	Delta Vec2
	// RequestExclusive asks ancestors to stop intercepting the gesture.
	RequestExclusive bool

	// Forward passes the original event to the container's default handling.
	Forward bool
	// ForwardCancel passes a synthetic cancel copy of the event to the
	// container's default handling instead of the original.
	ForwardCancel bool
}

// Intercept runs the detection pass for ev and reports whether the gesture is
// claimed as a drag. It tracks pointers and may flip Dragging, but never
// produces translation or advances LastTouch. Up and cancel end an unclaimed
// gesture here; a claimed drag is left for Handle to finalize so it still
// sees its terminating event.
func (g GestureState) Intercept(ev MotionEvent) (GestureState, bool) {
	switch ev.Action {
	case ActionDown:
		g = g.begin(ev)
	case ActionPointerDown:
		g = g.pointerDown(ev, ev.ActionIndex)
	case ActionMove:
		idx := ev.FindPointerIndex(g.ActivePointerID)
		if idx < 0 {
			return g, false
		}
		if !g.Dragging {
			g.Dragging = g.exceedsSlop(ev.Point(idx))
		}
	case ActionPointerUp:
		g = g.pointerUp(ev)
	case ActionUp, ActionCancel:
		// A claimed drag is finished by Handle; an unclaimed gesture may
		// never reach Handle, so it ends here.
		if !g.Dragging {
			g.ActivePointerID = NoPointer
		}
	}
	return g, g.Dragging
}

// Handle runs the committal pass for ev: pointer tracking, drag detection,
// delta computation and the forwarding decision.
func (g GestureState) Handle(ev MotionEvent) (GestureState, Decision) {
	d := Decision{Handled: true, PointerID: g.ActivePointerID}

	switch ev.Action {
	case ActionDown:
		g = g.begin(ev)
		d.PointerID = g.ActivePointerID
		d.Point = g.InitialTouch
		d.Forward = true

	case ActionPointerDown:
		g = g.pointerDown(ev, ev.ActionIndex)
		d.PointerID = g.ActivePointerID
		d.Point = g.InitialTouch
		d.Forward = !g.Dragging

	case ActionMove:
		idx := ev.FindPointerIndex(g.ActivePointerID)
		if idx < 0 {
			return g, Decision{}
		}
		p := ev.Point(idx)
		d.Point = p

		if !g.Dragging {
			g.Dragging = g.exceedsSlop(p)
		}
		if g.Dragging {
			if !g.dragReported {
				g.dragReported = true
				d.DragStarted = true
			}
			d.Dragged = true
			d.RequestExclusive = true
			d.Delta = g.axisDelta(p)
			g.DragOffset.X += d.Delta.X
			g.DragOffset.Y += d.Delta.Y
			g.LastTouch = p
		}
		d.Forward = !g.Dragging

	case ActionPointerUp:
		g = g.pointerUp(ev)
		d.PointerID = g.ActivePointerID
		d.Point = g.LastTouch
		d.Forward = !g.Dragging

	case ActionUp, ActionCancel:
		d.Point = g.LastTouch
		if g.Dragging {
			d.DragEnded = true
			d.Canceled = ev.Action == ActionCancel
			d.ForwardCancel = true
		} else {
			d.Forward = true
		}
		g.Dragging = false
		g.dragReported = false
		g.ActivePointerID = NoPointer

	default:
		d.Forward = !g.Dragging
	}

	d.Claim = g.Dragging
	return g, d
}

// begin resets the per-gesture state and starts tracking pointer 0.
func (g GestureState) begin(ev MotionEvent) GestureState {
	g.Dragging = false
	g.dragReported = false
	g.DragOffset = Vec2{}
	g.ActivePointerID = NoPointer
	return g.pointerDown(ev, 0)
}

// pointerDown makes the pointer at index the active one and baselines both
// reference coordinates on it.
func (g GestureState) pointerDown(ev MotionEvent, index int) GestureState {
	if index < 0 || index >= len(ev.Pointers) {
		return g
	}
	p := ev.Point(index)
	g.ActivePointerID = ev.PointerID(index)
	g.InitialTouch = p
	g.LastTouch = p
	return g
}

// pointerUp hands the gesture to the oldest remaining pointer when the active
// one lifts. Lifts of other pointers are ignored.
func (g GestureState) pointerUp(ev MotionEvent) GestureState {
	if g.ActivePointerID == NoPointer || ev.PointerID(ev.ActionIndex) != g.ActivePointerID {
		return g
	}
	next := -1
	for i := range ev.Pointers {
		if i != ev.ActionIndex {
			next = i
			break
		}
	}
	if next < 0 {
		g.ActivePointerID = NoPointer
		return g
	}
	return g.pointerDown(ev, next)
}

// exceedsSlop reports whether p is further than TouchSlop from InitialTouch on
// an enabled axis.
func (g GestureState) exceedsSlop(p Point) bool {
	dx := p.X - g.InitialTouch.X
	dy := p.Y - g.InitialTouch.Y
	return (g.Orientation.Horizontal() && float64(abs(dx)) > g.TouchSlop) ||
		(g.Orientation.Vertical() && float64(abs(dy)) > g.TouchSlop)
}

// axisDelta returns the movement since LastTouch on the enabled axes.
func (g GestureState) axisDelta(p Point) Vec2 {
	var d Vec2
	if g.Orientation.Horizontal() {
		d.X = float64(p.X - g.LastTouch.X)
	}
	if g.Orientation.Vertical() {
		d.Y = float64(p.Y - g.LastTouch.Y)
	}
	return d
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
