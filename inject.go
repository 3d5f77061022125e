package dragview

// Injector builds synthetic MotionEvent streams. It keeps its own set of
// pressed pointers and runs them through a PointerTracker, so the resulting
// stream has the same shape as real input: the first press is ActionDown,
// later presses are ActionPointerDown, and so on.
type Injector struct {
	tracker PointerTracker
	samples []PointerSample
	nextID  int
	queue   []MotionEvent
}

// Press presses a new pointer at (x, y) and returns its id. Ids are assigned
// in press order starting at 0.
func (in *Injector) Press(x, y float64) int {
	id := in.nextID
	in.nextID++
	in.samples = append(in.samples, PointerSample{ID: id, X: x, Y: y})
	in.frame()
	return id
}

// Move moves pointer id to (x, y). Unknown ids are ignored.
func (in *Injector) Move(id int, x, y float64) {
	for i := range in.samples {
		if in.samples[i].ID == id {
			in.samples[i].X = x
			in.samples[i].Y = y
			in.frame()
			return
		}
	}
}

// Release lifts pointer id. Unknown ids are ignored.
func (in *Injector) Release(id int) {
	for i := range in.samples {
		if in.samples[i].ID == id {
			in.samples = append(in.samples[:i], in.samples[i+1:]...)
			in.frame()
			return
		}
	}
}

// Cancel queues a cancel for the whole gesture and forgets every pointer.
func (in *Injector) Cancel() {
	in.queue = append(in.queue, in.tracker.Cancel()...)
	in.samples = in.samples[:0]
}

// Drag moves pointer id to (toX, toY) over the given number of move events,
// linearly interpolated from its current position. Minimum steps is 1.
func (in *Injector) Drag(id int, toX, toY float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	var from PointerSample
	found := false
	for _, s := range in.samples {
		if s.ID == id {
			from, found = s, true
			break
		}
	}
	if !found {
		return
	}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		in.Move(id, from.X+(toX-from.X)*t, from.Y+(toY-from.Y)*t)
	}
}

// Click queues a press followed by a release at the same coordinates.
func (in *Injector) Click(x, y float64) {
	in.Release(in.Press(x, y))
}

// Events drains and returns the queued events.
func (in *Injector) Events() []MotionEvent {
	out := in.queue
	in.queue = nil
	return out
}

func (in *Injector) frame() {
	in.queue = append(in.queue, in.tracker.Frame(in.samples)...)
}
