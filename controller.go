package dragview

import (
	"io"
	"os"
)

// Container is the widget a Controller drags. The controller only reads and
// writes its translation, asks ancestors to stop intercepting, and forwards
// events it does not claim to the container's own handling.
type Container interface {
	// Translation returns the current translation of the container.
	Translation() (x, y float64)
	// SetTranslation replaces the translation of the container.
	SetTranslation(x, y float64)
	// RequestExclusiveGesture tells ancestors not to steal the current gesture.
	RequestExclusiveGesture()
	// DefaultEventHandling runs the container's normal behavior (click,
	// press state) for ev and reports whether it consumed it.
	DefaultEventHandling(ev MotionEvent) bool
}

// Controller drives a Container from a stream of MotionEvents. The host calls
// OnInterceptEvent during its early dispatch pass and OnEvent during the
// handling pass. Calls must be serial; the controller does no locking.
type Controller struct {
	container Container
	state     GestureState

	handlers handlerRegistry
	sink     EventSink

	debug    bool
	debugOut io.Writer
}

// NewController returns a controller for c that starts a drag once the
// pointer travels more than touchSlop on an enabled axis. Both axes are
// enabled by default.
func NewController(c Container, touchSlop float64) *Controller {
	if touchSlop < 0 {
		touchSlop = 0
	}
	return &Controller{
		container: c,
		state:     NewGestureState(touchSlop),
		debugOut:  os.Stderr,
	}
}

// SetDragOrientation sets which axes are draggable. It takes effect on the
// next event.
func (c *Controller) SetDragOrientation(o Orientation) {
	c.state.Orientation = o & OrientationAll
}

// DragOrientation returns the draggable axes.
func (c *Controller) DragOrientation() Orientation {
	return c.state.Orientation
}

// CanDragHorizontal reports whether the X axis is draggable.
func (c *Controller) CanDragHorizontal() bool {
	return c.state.Orientation.Horizontal()
}

// CanDragVertical reports whether the Y axis is draggable.
func (c *Controller) CanDragVertical() bool {
	return c.state.Orientation.Vertical()
}

// TouchSlop returns the drag threshold fixed at construction.
func (c *Controller) TouchSlop() float64 {
	return c.state.TouchSlop
}

// IsDragging reports whether the current gesture has been claimed as a drag.
func (c *Controller) IsDragging() bool {
	return c.state.Dragging
}

// State returns a copy of the gesture state.
func (c *Controller) State() GestureState {
	return c.state
}

// Container returns the container being dragged.
func (c *Controller) Container() Container {
	return c.container
}

// SetEventSink sets the optional sink that receives every drag lifecycle event.
func (c *Controller) SetEventSink(sink EventSink) {
	c.sink = sink
}

// OnInterceptEvent reports whether the controller claims the gesture. It
// returns true once the slop has been exceeded, so ancestors keep receiving
// events until then. The container is never touched.
func (c *Controller) OnInterceptEvent(ev MotionEvent) bool {
	var claim bool
	c.state, claim = c.state.Intercept(ev)
	c.debugIntercept(ev, claim)
	return claim
}

// OnEvent handles ev: it tracks pointers, detects drag intent, translates the
// container and forwards unclaimed events to its default handling. It returns
// false only when a move arrives for a pointer that is no longer down.
func (c *Controller) OnEvent(ev MotionEvent) bool {
	next, d := c.state.Handle(ev)
	c.state = next
	if !d.Handled {
		c.debugUnhandled(ev)
		return false
	}

	if d.RequestExclusive {
		c.container.RequestExclusiveGesture()
	}
	if d.Delta != (Vec2{}) {
		x, y := c.container.Translation()
		c.container.SetTranslation(x+d.Delta.X, y+d.Delta.Y)
	}
	c.debugHandle(ev, d)

	if d.DragStarted {
		c.fireDragEvent(EventDragStart, d)
	}
	if d.Dragged {
		c.fireDragEvent(EventDrag, d)
	}

	if d.ForwardCancel {
		c.container.DefaultEventHandling(ev.WithAction(ActionCancel))
	}
	if d.Forward {
		c.container.DefaultEventHandling(ev)
	}

	if d.DragEnded {
		c.fireDragEvent(EventDragEnd, d)
	}
	return true
}
