package dragview

import (
	"fmt"
	"io"
)

// SetDebugMode enables or disables debug mode. When enabled, every decision
// the controller makes is logged to the debug writer (stderr by default).
func (c *Controller) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// SetDebugWriter redirects debug output. A nil writer discards it.
func (c *Controller) SetDebugWriter(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	c.debugOut = w
}

func (c *Controller) debugIntercept(ev MotionEvent, claim bool) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(c.debugOut, "[dragview] intercept %s: active=%d dragging=%v claim=%v\n",
		ev.Action, c.state.ActivePointerID, c.state.Dragging, claim)
}

func (c *Controller) debugUnhandled(ev MotionEvent) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(c.debugOut, "[dragview] %s: active pointer %d not in event, ignored\n",
		ev.Action, c.state.ActivePointerID)
}

// debugHandle mirrors one handled event. Called after the translation has
// been applied so the logged translation is current.
func (c *Controller) debugHandle(ev MotionEvent, d Decision) {
	if !c.debug {
		return
	}
	tx, ty := c.container.Translation()
	if ev.Action == ActionMove {
		_, _ = fmt.Fprintf(c.debugOut,
			"[dragview] move: xy=[%d, %d] init=[%d, %d] delta=[%v, %v] translation=[%v, %v] dragging=%v\n",
			d.Point.X, d.Point.Y, c.state.InitialTouch.X, c.state.InitialTouch.Y,
			d.Delta.X, d.Delta.Y, tx, ty, c.state.Dragging)
		return
	}
	_, _ = fmt.Fprintf(c.debugOut,
		"[dragview] %s: active=%d dragging=%v forward=%v cancel=%v translation=[%v, %v]\n",
		ev.Action, c.state.ActivePointerID, c.state.Dragging, d.Forward, d.ForwardCancel, tx, ty)
}
