package dragview

// Vec2 is a 2D vector used for translations and deltas throughout the API.
type Vec2 struct {
	X, Y float64
}

// Point is a pointer coordinate rounded to whole units, the resolution the
// controller tracks touches at.
type Point struct {
	X, Y int
}

// roundCoord rounds a raw pointer coordinate by adding 0.5 and truncating
// toward zero, the way host toolkits convert touch coordinates. Negative
// coordinates therefore land one unit closer to zero than true rounding.
func roundCoord(v float64) int {
	return int(v + 0.5)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Orientation selects which translation axes a Controller may drag along.
// Values can be combined with bitwise OR; OrientationHorizontal|OrientationVertical
// equals OrientationAll.
type Orientation uint8

const (
	OrientationNone       Orientation = 0                                           // no axis is draggable
	OrientationHorizontal Orientation = 2                                           // X axis only
	OrientationVertical   Orientation = 4                                           // Y axis only
	OrientationAll        Orientation = OrientationHorizontal | OrientationVertical // both axes
)

// Horizontal reports whether the X axis is enabled.
func (o Orientation) Horizontal() bool {
	return o&OrientationHorizontal != 0
}

// Vertical reports whether the Y axis is enabled.
func (o Orientation) Vertical() bool {
	return o&OrientationVertical != 0
}

func (o Orientation) String() string {
	switch o & OrientationAll {
	case OrientationNone:
		return "none"
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return "all"
	}
}

// Action identifies the lifecycle phase a MotionEvent reports.
type Action uint8

const (
	ActionDown        Action = iota // first pointer went down; starts a gesture
	ActionUp                        // last pointer went up; ends the gesture
	ActionMove                      // one or more pointers moved
	ActionCancel                    // the host aborted the gesture
	ActionPointerDown               // an additional pointer went down
	ActionPointerUp                 // a non-last pointer went up
)

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionUp:
		return "up"
	case ActionMove:
		return "move"
	case ActionCancel:
		return "cancel"
	case ActionPointerDown:
		return "pointer_down"
	case ActionPointerUp:
		return "pointer_up"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of drag lifecycle event.
type EventType uint8

const (
	EventDragStart EventType = iota // fires when movement exceeds the touch slop
	EventDrag                       // fires on each move while dragging
	EventDragEnd                    // fires when a drag is released or canceled
)

func (t EventType) String() string {
	switch t {
	case EventDragStart:
		return "drag_start"
	case EventDrag:
		return "drag"
	case EventDragEnd:
		return "drag_end"
	default:
		return "unknown"
	}
}

// Pointer is the state of one down pointer inside a MotionEvent.
type Pointer struct {
	ID   int
	X, Y float64
}

// MotionEvent is a snapshot of every pointer currently down, tagged with the
// lifecycle action that produced it. For ActionPointerDown and ActionPointerUp,
// ActionIndex is the index into Pointers of the pointer that changed state.
type MotionEvent struct {
	Action      Action
	ActionIndex int
	Pointers    []Pointer
}

// PointerCount returns the number of pointers in the event.
func (e MotionEvent) PointerCount() int {
	return len(e.Pointers)
}

// FindPointerIndex returns the index of the pointer with the given id, or -1
// if the event does not contain it.
func (e MotionEvent) FindPointerIndex(id int) int {
	if id == NoPointer {
		return -1
	}
	for i := range e.Pointers {
		if e.Pointers[i].ID == id {
			return i
		}
	}
	return -1
}

// PointerID returns the id of the pointer at index i, or NoPointer if i is
// out of range.
func (e MotionEvent) PointerID(i int) int {
	if i < 0 || i >= len(e.Pointers) {
		return NoPointer
	}
	return e.Pointers[i].ID
}

// Point returns the rounded coordinate of the pointer at index i.
func (e MotionEvent) Point(i int) Point {
	p := e.Pointers[i]
	return Point{X: roundCoord(p.X), Y: roundCoord(p.Y)}
}

// WithAction returns a copy of the event carrying a different action. The
// pointer slice is copied so the result can outlive the original.
func (e MotionEvent) WithAction(a Action) MotionEvent {
	ptrs := make([]Pointer, len(e.Pointers))
	copy(ptrs, e.Pointers)
	return MotionEvent{Action: a, ActionIndex: e.ActionIndex, Pointers: ptrs}
}
