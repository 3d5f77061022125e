package dragview

// PointerSample is the position of one pressed pointer in a frame.
type PointerSample struct {
	ID   int
	X, Y float64
}

// PointerTracker turns per-frame snapshots of pressed pointers into the
// MotionEvent lifecycle stream a Controller consumes. Pointers keep the order
// they went down in, oldest first.
type PointerTracker struct {
	down   []Pointer
	events []MotionEvent
}

// Down returns the number of pointers currently tracked as down.
func (t *PointerTracker) Down() int {
	return len(t.down)
}

// Frame diffs samples against the tracked pointers and returns the events for
// this frame in order: one move if any tracked pointer changed position, then
// an up for each pointer that disappeared, then a down for each new pointer.
// The returned slice is reused by the next call.
func (t *PointerTracker) Frame(samples []PointerSample) []MotionEvent {
	t.events = t.events[:0]

	moved := false
	for i := range t.down {
		s, ok := findSample(samples, t.down[i].ID)
		if !ok {
			continue
		}
		if s.X != t.down[i].X || s.Y != t.down[i].Y {
			t.down[i].X = s.X
			t.down[i].Y = s.Y
			moved = true
		}
	}
	if moved {
		t.emit(ActionMove, 0)
	}

	// Lifted pointers, scanning backward so removal keeps indices valid.
	for i := len(t.down) - 1; i >= 0; i-- {
		if _, ok := findSample(samples, t.down[i].ID); ok {
			continue
		}
		if len(t.down) == 1 {
			t.emit(ActionUp, 0)
		} else {
			t.emit(ActionPointerUp, i)
		}
		t.down = append(t.down[:i], t.down[i+1:]...)
	}

	for _, s := range samples {
		if t.indexOf(s.ID) >= 0 {
			continue
		}
		t.down = append(t.down, Pointer{ID: s.ID, X: s.X, Y: s.Y})
		if len(t.down) == 1 {
			t.emit(ActionDown, 0)
		} else {
			t.emit(ActionPointerDown, len(t.down)-1)
		}
	}
	return t.events
}

// Cancel drops every tracked pointer and returns a single cancel event, or
// nil if nothing was down. Hosts call this when they lose input focus.
func (t *PointerTracker) Cancel() []MotionEvent {
	t.events = t.events[:0]
	if len(t.down) == 0 {
		return nil
	}
	t.emit(ActionCancel, 0)
	t.down = t.down[:0]
	return t.events
}

func (t *PointerTracker) emit(action Action, index int) {
	ptrs := make([]Pointer, len(t.down))
	copy(ptrs, t.down)
	t.events = append(t.events, MotionEvent{Action: action, ActionIndex: index, Pointers: ptrs})
}

func (t *PointerTracker) indexOf(id int) int {
	for i := range t.down {
		if t.down[i].ID == id {
			return i
		}
	}
	return -1
}

func findSample(samples []PointerSample, id int) (PointerSample, bool) {
	for _, s := range samples {
		if s.ID == id {
			return s, true
		}
	}
	return PointerSample{}, false
}
