package dragview

// DragContext carries drag event data to callbacks.
type DragContext struct {
	PointerID int
	// X and Y are the rounded coordinate of the active pointer.
	X, Y float64
	// StartX and StartY are where the active pointer went down or was
	// handed off.
	StartX, StartY float64
	// DeltaX and DeltaY are the translation applied by this event.
	DeltaX, DeltaY float64
	// OffsetX and OffsetY are the net translation applied since the gesture began.
	OffsetX, OffsetY float64
	// Canceled is set on EventDragEnd when the host canceled the gesture.
	Canceled bool
}

// DragEvent is a DragContext tagged with its type, as delivered to an EventSink.
type DragEvent struct {
	Type EventType
	DragContext
}

// EventSink is the interface for optional event forwarding (for example into
// an ECS world). When set on a Controller, every drag lifecycle event is
// emitted to it after the registered callbacks run.
type EventSink interface {
	EmitEvent(event DragEvent)
}

// --- Handler registry ---

type dragHandler struct {
	id uint32
	fn func(DragContext)
}

type handlerRegistry struct {
	dragStart []dragHandler
	drag      []dragHandler
	dragEnd   []dragHandler
	nextID    uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventDragStart:
		h.reg.dragStart = removeDragHandler(h.reg.dragStart, h.id)
	case EventDrag:
		h.reg.drag = removeDragHandler(h.reg.drag, h.id)
	case EventDragEnd:
		h.reg.dragEnd = removeDragHandler(h.reg.dragEnd, h.id)
	}
}

func removeDragHandler(s []dragHandler, id uint32) []dragHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = dragHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) add(event EventType, fn func(DragContext)) CallbackHandle {
	r.nextID++
	h := dragHandler{id: r.nextID, fn: fn}
	switch event {
	case EventDragStart:
		r.dragStart = append(r.dragStart, h)
	case EventDrag:
		r.drag = append(r.drag, h)
	case EventDragEnd:
		r.dragEnd = append(r.dragEnd, h)
	}
	return CallbackHandle{id: h.id, reg: r, event: event}
}

// OnDragStart registers a callback fired when a gesture becomes a drag.
func (c *Controller) OnDragStart(fn func(DragContext)) CallbackHandle {
	return c.handlers.add(EventDragStart, fn)
}

// OnDrag registers a callback fired on every move while dragging, after the
// container has been translated.
func (c *Controller) OnDrag(fn func(DragContext)) CallbackHandle {
	return c.handlers.add(EventDrag, fn)
}

// OnDragEnd registers a callback fired when a drag ends on up or cancel.
func (c *Controller) OnDragEnd(fn func(DragContext)) CallbackHandle {
	return c.handlers.add(EventDragEnd, fn)
}

// --- Event dispatch ---

func (c *Controller) fireDragEvent(event EventType, d Decision) {
	ctx := DragContext{
		PointerID: d.PointerID,
		X:         float64(d.Point.X),
		Y:         float64(d.Point.Y),
		StartX:    float64(c.state.InitialTouch.X),
		StartY:    float64(c.state.InitialTouch.Y),
		DeltaX:    d.Delta.X,
		DeltaY:    d.Delta.Y,
		OffsetX:   c.state.DragOffset.X,
		OffsetY:   c.state.DragOffset.Y,
		Canceled:  d.Canceled,
	}

	var handlers []dragHandler
	switch event {
	case EventDragStart:
		handlers = c.handlers.dragStart
	case EventDrag:
		handlers = c.handlers.drag
	case EventDragEnd:
		handlers = c.handlers.dragEnd
	}
	for _, h := range handlers {
		h.fn(ctx)
	}

	if c.sink != nil {
		c.sink.EmitEvent(DragEvent{Type: event, DragContext: ctx})
	}
}
