package dragview

import (
	"bytes"
	"strings"
	"testing"
)

// recordingContainer is a Container that records every call made on it.
type recordingContainer struct {
	x, y      float64
	reads     int
	sets      int
	exclusive int
	forwarded []MotionEvent
}

func (c *recordingContainer) Translation() (float64, float64) {
	c.reads++
	return c.x, c.y
}

func (c *recordingContainer) SetTranslation(x, y float64) {
	c.sets++
	c.x, c.y = x, y
}

func (c *recordingContainer) RequestExclusiveGesture() {
	c.exclusive++
}

func (c *recordingContainer) DefaultEventHandling(ev MotionEvent) bool {
	c.forwarded = append(c.forwarded, ev)
	return true
}

func (c *recordingContainer) calls() int {
	return c.reads + c.sets + c.exclusive + len(c.forwarded)
}

// deliver runs every queued injector event through a Dispatcher.
func deliver(t *testing.T, disp *Dispatcher, in *Injector) (claims []bool) {
	t.Helper()
	for _, ev := range in.Events() {
		claimed, _ := disp.Dispatch(ev)
		claims = append(claims, claimed)
	}
	return claims
}

func TestController_Defaults(t *testing.T) {
	c := NewController(&recordingContainer{}, 12)
	if c.DragOrientation() != OrientationAll {
		t.Errorf("DragOrientation = %v, want all", c.DragOrientation())
	}
	if !c.CanDragHorizontal() || !c.CanDragVertical() {
		t.Error("both axes should be draggable by default")
	}
	if c.TouchSlop() != 12 {
		t.Errorf("TouchSlop = %v, want 12", c.TouchSlop())
	}
	if c.IsDragging() {
		t.Error("new controller should not be dragging")
	}
	if c.State().ActivePointerID != NoPointer {
		t.Errorf("ActivePointerID = %d, want NoPointer", c.State().ActivePointerID)
	}
}

func TestController_NegativeSlopClamped(t *testing.T) {
	c := NewController(&recordingContainer{}, -5)
	if c.TouchSlop() != 0 {
		t.Errorf("TouchSlop = %v, want 0", c.TouchSlop())
	}
}

func TestController_SlopScenario(t *testing.T) {
	panel := NewPanel("p", 100, 100)
	clicked := false
	panel.OnClick = func(ClickContext) { clicked = true }
	c := NewController(panel, 10)
	disp := NewDispatcher(c)
	var in Injector

	id := in.Press(0, 0)
	deliver(t, disp, &in)

	in.Move(id, 3, 4)
	claims := deliver(t, disp, &in)
	if claims[0] || c.IsDragging() {
		t.Fatal("movement within slop should not claim the gesture")
	}
	if panel.X != 0 || panel.Y != 0 {
		t.Errorf("translation = (%v, %v), want (0, 0)", panel.X, panel.Y)
	}

	in.Move(id, 15, 4)
	claims = deliver(t, disp, &in)
	if !claims[0] || !c.IsDragging() {
		t.Fatal("dx=15 > slop should start a drag")
	}
	if panel.X != 15 || panel.Y != 4 {
		t.Errorf("translation = (%v, %v), want (15, 4)", panel.X, panel.Y)
	}

	in.Release(id)
	deliver(t, disp, &in)
	if c.IsDragging() {
		t.Error("dragging should reset on up")
	}
	if panel.X != 15 || panel.Y != 4 {
		t.Errorf("net translation = (%v, %v), want (15, 4)", panel.X, panel.Y)
	}
	if clicked {
		t.Error("a drag must not click")
	}
	if panel.CancelCount() != 1 {
		t.Errorf("CancelCount = %d, want 1 synthetic cancel", panel.CancelCount())
	}
}

func TestController_HorizontalOnlyIgnoresVertical(t *testing.T) {
	panel := NewPanel("p", 100, 100)
	clicked := false
	panel.OnClick = func(ClickContext) { clicked = true }
	c := NewController(panel, 10)
	c.SetDragOrientation(OrientationHorizontal)
	disp := NewDispatcher(c)
	var in Injector

	id := in.Press(0, 0)
	in.Move(id, 0, 50)
	in.Release(id)
	for _, claimed := range deliver(t, disp, &in) {
		if claimed {
			t.Fatal("vertical movement must not claim a horizontal-only drag")
		}
	}
	if panel.X != 0 || panel.Y != 0 {
		t.Errorf("translation = (%v, %v), want (0, 0)", panel.X, panel.Y)
	}
	if !clicked {
		t.Error("default handling should receive the up and click")
	}
}

func TestController_AxisGating(t *testing.T) {
	tests := []struct {
		name         string
		orientation  Orientation
		toX, toY     float64
		wantDragging bool
		wantX, wantY float64
	}{
		{"vertical ignores horizontal", OrientationVertical, 500, 0, false, 0, 0},
		{"horizontal ignores vertical", OrientationHorizontal, 0, 500, false, 0, 0},
		{"vertical moves only y", OrientationVertical, 300, 40, true, 0, 40},
		{"horizontal moves only x", OrientationHorizontal, 40, 300, true, 40, 0},
		{"none never drags", OrientationNone, 300, 300, false, 0, 0},
		// y samples -4..-20 round toward zero to -3..-19
		{"all moves both", OrientationAll, 30, -20, true, 30, -19},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := &recordingContainer{}
			c := NewController(rc, 10)
			c.SetDragOrientation(tt.orientation)
			disp := NewDispatcher(c)
			var in Injector
			id := in.Press(0, 0)
			in.Drag(id, tt.toX, tt.toY, 5)
			deliver(t, disp, &in)

			if c.IsDragging() != tt.wantDragging {
				t.Errorf("IsDragging = %v, want %v", c.IsDragging(), tt.wantDragging)
			}
			if rc.x != tt.wantX || rc.y != tt.wantY {
				t.Errorf("translation = (%v, %v), want (%v, %v)", rc.x, rc.y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestController_DriftFree(t *testing.T) {
	rc := &recordingContainer{x: 7, y: -3}
	c := NewController(rc, 10)
	disp := NewDispatcher(c)
	var in Injector

	id := in.Press(40, 40)
	in.Move(id, 60, 40) // starts the drag
	in.Move(id, 93, 12)
	in.Move(id, -20, 81)
	in.Move(id, 41, 39)
	in.Move(id, 40, 40)
	deliver(t, disp, &in)

	if !c.IsDragging() {
		t.Fatal("expected a drag")
	}
	if rc.x != 7 || rc.y != -3 {
		t.Errorf("translation = (%v, %v), want (7, -3) after returning to start", rc.x, rc.y)
	}
}

func TestController_PointerLockedTracking(t *testing.T) {
	rc := &recordingContainer{}
	c := NewController(rc, 10)
	disp := NewDispatcher(c)
	var in Injector

	id := in.Press(10, 10)
	deliver(t, disp, &in)
	points := [][2]float64{{30, 10}, {45, 22}, {12, 80}, {-5, -5}}
	for _, p := range points {
		in.Move(id, p[0], p[1])
		deliver(t, disp, &in)
		wantX := float64(roundCoord(p[0]) - 10)
		wantY := float64(roundCoord(p[1]) - 10)
		if rc.x != wantX || rc.y != wantY {
			t.Errorf("at %v translation = (%v, %v), want (%v, %v)", p, rc.x, rc.y, wantX, wantY)
		}
	}
}

func TestController_SlopMonotonic(t *testing.T) {
	c := NewController(&recordingContainer{}, 10)
	disp := NewDispatcher(c)
	var in Injector

	id := in.Press(0, 0)
	in.Move(id, 20, 0)
	deliver(t, disp, &in)
	if !c.IsDragging() {
		t.Fatal("expected a drag")
	}

	// Back inside the slop radius: still dragging.
	in.Move(id, 1, 0)
	in.Move(id, 0, 0)
	deliver(t, disp, &in)
	if !c.IsDragging() {
		t.Error("dragging must not revert before the gesture ends")
	}

	in.Release(id)
	deliver(t, disp, &in)
	if c.IsDragging() {
		t.Error("dragging should reset on up")
	}

	// The next gesture starts fresh.
	id = in.Press(0, 0)
	in.Move(id, 5, 5)
	deliver(t, disp, &in)
	if c.IsDragging() {
		t.Error("new gesture should start undragged")
	}
}

func TestController_PassThroughBeforeThreshold(t *testing.T) {
	panel := NewPanel("p", 100, 100)
	clicks := 0
	panel.OnClick = func(ClickContext) { clicks++ }
	c := NewController(panel, 10)
	disp := NewDispatcher(c)
	var in Injector

	id := in.Press(50, 50)
	in.Move(id, 55, 55)
	in.Move(id, 60, 40) // |dx| = 10 is not > 10
	in.Move(id, 41, 59)
	in.Release(id)
	for i, claimed := range deliver(t, disp, &in) {
		if claimed {
			t.Errorf("event %d claimed within slop", i)
		}
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if panel.X != 0 || panel.Y != 0 {
		t.Errorf("translation = (%v, %v), want (0, 0)", panel.X, panel.Y)
	}
}

func TestController_HandoffContinuity(t *testing.T) {
	rc := &recordingContainer{}
	c := NewController(rc, 10)
	disp := NewDispatcher(c)
	var in Injector

	p0 := in.Press(0, 0)
	in.Move(p0, 20, 0)
	deliver(t, disp, &in)
	if rc.x != 20 || rc.y != 0 {
		t.Fatalf("translation = (%v, %v), want (20, 0)", rc.x, rc.y)
	}

	// A second pointer far away becomes active without moving anything.
	p1 := in.Press(200, 300)
	deliver(t, disp, &in)
	if c.State().ActivePointerID != p1 {
		t.Errorf("active pointer = %d, want %d", c.State().ActivePointerID, p1)
	}
	if rc.x != 20 || rc.y != 0 {
		t.Errorf("pointer down moved container to (%v, %v)", rc.x, rc.y)
	}

	in.Move(p1, 210, 300)
	deliver(t, disp, &in)
	if rc.x != 30 || rc.y != 0 {
		t.Errorf("translation = (%v, %v), want (30, 0)", rc.x, rc.y)
	}

	// Active pointer lifts: p0 takes over from its own position.
	in.Release(p1)
	deliver(t, disp, &in)
	if c.State().ActivePointerID != p0 {
		t.Errorf("active pointer after handoff = %d, want %d", c.State().ActivePointerID, p0)
	}
	if rc.x != 30 || rc.y != 0 {
		t.Errorf("handoff jumped container to (%v, %v)", rc.x, rc.y)
	}
	if !c.IsDragging() {
		t.Error("handoff must keep the drag")
	}

	in.Move(p0, 25, 5)
	deliver(t, disp, &in)
	if rc.x != 35 || rc.y != 5 {
		t.Errorf("translation = (%v, %v), want (35, 5)", rc.x, rc.y)
	}
}

func TestController_NonActivePointerUpIgnored(t *testing.T) {
	rc := &recordingContainer{}
	c := NewController(rc, 10)
	disp := NewDispatcher(c)
	var in Injector

	p0 := in.Press(0, 0)
	p1 := in.Press(50, 50)
	in.Move(p1, 80, 50)
	in.Release(p0)
	deliver(t, disp, &in)

	if c.State().ActivePointerID != p1 {
		t.Errorf("active pointer = %d, want %d", c.State().ActivePointerID, p1)
	}
	want := Point{80, 50}
	if c.State().LastTouch != want {
		t.Errorf("LastTouch = %v, want %v", c.State().LastTouch, want)
	}
}

func TestController_MissingActivePointer(t *testing.T) {
	rc := &recordingContainer{}
	c := NewController(rc, 10)

	c.OnEvent(MotionEvent{Action: ActionDown, Pointers: []Pointer{{ID: 4, X: 0, Y: 0}}})
	before := c.State()
	calls := rc.calls()

	stale := MotionEvent{Action: ActionMove, Pointers: []Pointer{{ID: 9, X: 100, Y: 100}}}
	if c.OnInterceptEvent(stale) {
		t.Error("OnInterceptEvent should not claim a move for a missing pointer")
	}
	if c.OnEvent(stale) {
		t.Error("OnEvent should report a move for a missing pointer as unhandled")
	}
	if c.State() != before {
		t.Errorf("state changed: %+v -> %+v", before, c.State())
	}
	if rc.calls() != calls {
		t.Error("container touched for a missing pointer")
	}
}

func TestController_InterceptNeverTouchesContainer(t *testing.T) {
	rc := &recordingContainer{}
	c := NewController(rc, 10)
	var in Injector

	p0 := in.Press(0, 0)
	in.Drag(p0, 100, 100, 10)
	p1 := in.Press(10, 10)
	in.Move(p1, 40, 40)
	in.Release(p1)
	in.Release(p0)

	sawClaim := false
	for _, ev := range in.Events() {
		if c.OnInterceptEvent(ev) {
			sawClaim = true
		}
	}
	if !sawClaim {
		t.Error("expected the intercept pass alone to claim the drag")
	}
	if rc.calls() != 0 {
		t.Errorf("intercept pass made %d container calls", rc.calls())
	}
}

func TestController_RedundantEndIsNoop(t *testing.T) {
	rc := &recordingContainer{}
	c := NewController(rc, 10)

	for _, a := range []Action{ActionCancel, ActionUp, ActionCancel} {
		if !c.OnEvent(MotionEvent{Action: a}) {
			t.Errorf("%v should be handled", a)
		}
	}
	if c.IsDragging() {
		t.Error("redundant end must leave dragging false")
	}
	if rc.sets != 0 || rc.exclusive != 0 {
		t.Error("redundant end must not move the container")
	}
	for _, ev := range rc.forwarded {
		if ev.Action == ActionCancel && len(ev.Pointers) > 0 {
			t.Error("unexpected synthetic cancel")
		}
	}
}

func TestController_CancelMidDrag(t *testing.T) {
	panel := NewPanel("p", 100, 100)
	clicked := false
	panel.OnClick = func(ClickContext) { clicked = true }
	c := NewController(panel, 10)
	disp := NewDispatcher(c)
	var in Injector

	var ended []DragContext
	c.OnDragEnd(func(ctx DragContext) { ended = append(ended, ctx) })

	id := in.Press(10, 10)
	in.Move(id, 40, 10)
	in.Cancel()
	deliver(t, disp, &in)

	if c.IsDragging() {
		t.Error("cancel must end the drag")
	}
	if c.State().ActivePointerID != NoPointer {
		t.Errorf("ActivePointerID = %d, want NoPointer", c.State().ActivePointerID)
	}
	if len(ended) != 1 || !ended[0].Canceled {
		t.Errorf("drag end = %+v, want one canceled end", ended)
	}
	if clicked {
		t.Error("cancel must not click")
	}
}

func TestController_ForwardingSuppressedWhileDragging(t *testing.T) {
	rc := &recordingContainer{}
	c := NewController(rc, 10)
	disp := NewDispatcher(c)
	var in Injector

	id := in.Press(0, 0)
	in.Move(id, 5, 0)
	in.Move(id, 30, 0)
	in.Move(id, 40, 0)
	in.Release(id)
	deliver(t, disp, &in)

	var got []Action
	for _, ev := range rc.forwarded {
		got = append(got, ev.Action)
	}
	want := []Action{ActionDown, ActionMove, ActionCancel}
	if len(got) != len(want) {
		t.Fatalf("forwarded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("forwarded[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if rc.exclusive != 2 {
		t.Errorf("exclusive requests = %d, want 2 (one per dragging move)", rc.exclusive)
	}
}

func TestController_SyntheticCancelCarriesPointers(t *testing.T) {
	rc := &recordingContainer{}
	c := NewController(rc, 10)
	disp := NewDispatcher(c)
	var in Injector

	id := in.Press(0, 0)
	in.Move(id, 30, 0)
	in.Release(id)
	deliver(t, disp, &in)

	last := rc.forwarded[len(rc.forwarded)-1]
	if last.Action != ActionCancel {
		t.Fatalf("last forwarded = %v, want cancel", last.Action)
	}
	if len(last.Pointers) != 1 || last.Pointers[0].X != 30 {
		t.Errorf("synthetic cancel pointers = %+v", last.Pointers)
	}
}

func TestController_OrientationChangeMidGesture(t *testing.T) {
	rc := &recordingContainer{}
	c := NewController(rc, 10)
	disp := NewDispatcher(c)
	var in Injector

	id := in.Press(0, 0)
	in.Move(id, 20, 20)
	deliver(t, disp, &in)

	c.SetDragOrientation(OrientationVertical)
	in.Move(id, 50, 30)
	deliver(t, disp, &in)
	if rc.x != 20 || rc.y != 30 {
		t.Errorf("translation = (%v, %v), want (20, 30)", rc.x, rc.y)
	}
}

func TestController_Callbacks(t *testing.T) {
	c := NewController(&recordingContainer{}, 10)
	disp := NewDispatcher(c)
	var in Injector

	var starts, drags, ends []DragContext
	c.OnDragStart(func(ctx DragContext) { starts = append(starts, ctx) })
	c.OnDrag(func(ctx DragContext) { drags = append(drags, ctx) })
	c.OnDragEnd(func(ctx DragContext) { ends = append(ends, ctx) })

	id := in.Press(0, 0)
	in.Move(id, 4, 0)
	in.Move(id, 15, 4)
	in.Move(id, 20, 6)
	in.Release(id)
	deliver(t, disp, &in)

	if len(starts) != 1 {
		t.Fatalf("drag starts = %d, want 1", len(starts))
	}
	if s := starts[0]; s.X != 15 || s.Y != 4 || s.DeltaX != 15 || s.DeltaY != 4 {
		t.Errorf("start = %+v", s)
	}
	if len(drags) != 2 {
		t.Fatalf("drags = %d, want 2", len(drags))
	}
	if d := drags[1]; d.DeltaX != 5 || d.DeltaY != 2 || d.OffsetX != 20 || d.OffsetY != 6 {
		t.Errorf("second drag = %+v", d)
	}
	if len(ends) != 1 {
		t.Fatalf("drag ends = %d, want 1", len(ends))
	}
	if e := ends[0]; e.Canceled || e.OffsetX != 20 || e.OffsetY != 6 || e.PointerID != id {
		t.Errorf("end = %+v", e)
	}
}

func TestController_CallbackRemove(t *testing.T) {
	c := NewController(&recordingContainer{}, 10)
	disp := NewDispatcher(c)
	var in Injector

	count := 0
	h := c.OnDrag(func(DragContext) { count++ })
	other := 0
	c.OnDrag(func(DragContext) { other++ })
	h.Remove()
	h.Remove() // second remove is harmless

	id := in.Press(0, 0)
	in.Move(id, 30, 0)
	deliver(t, disp, &in)

	if count != 0 {
		t.Errorf("removed callback fired %d times", count)
	}
	if other != 1 {
		t.Errorf("remaining callback fired %d times, want 1", other)
	}

	var zero CallbackHandle
	zero.Remove()
}

type sliceSink struct {
	events []DragEvent
}

func (s *sliceSink) EmitEvent(e DragEvent) {
	s.events = append(s.events, e)
}

func TestController_EventSink(t *testing.T) {
	c := NewController(&recordingContainer{}, 10)
	sink := &sliceSink{}
	c.SetEventSink(sink)
	disp := NewDispatcher(c)
	var in Injector

	id := in.Press(0, 0)
	in.Move(id, 30, 0)
	in.Release(id)
	deliver(t, disp, &in)

	want := []EventType{EventDragStart, EventDrag, EventDragEnd}
	if len(sink.events) != len(want) {
		t.Fatalf("sink got %d events, want %d", len(sink.events), len(want))
	}
	for i := range want {
		if sink.events[i].Type != want[i] {
			t.Errorf("event %d = %v, want %v", i, sink.events[i].Type, want[i])
		}
	}
}

func TestController_DebugOutput(t *testing.T) {
	var buf bytes.Buffer
	c := NewController(&recordingContainer{}, 10)
	c.SetDebugWriter(&buf)

	var in Injector
	id := in.Press(0, 0)
	in.Move(id, 30, 0)
	events := in.Events()

	c.OnEvent(events[0])
	if buf.Len() != 0 {
		t.Fatalf("debug output written while disabled: %q", buf.String())
	}

	c.SetDebugMode(true)
	c.OnInterceptEvent(events[1])
	c.OnEvent(events[1])
	c.OnEvent(MotionEvent{Action: ActionMove, Pointers: []Pointer{{ID: 99}}})

	out := buf.String()
	for _, want := range []string{
		"[dragview] intercept move",
		"[dragview] move: xy=[30, 0]",
		"not in event, ignored",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}

	c.SetDebugWriter(nil)
	c.OnEvent(MotionEvent{Action: ActionUp})
}
