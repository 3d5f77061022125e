package dragview

// Dispatcher delivers events to a Controller the way a two-phase host does:
// the intercept pass runs for every event until the controller claims the
// gesture, then only the handling pass runs until the gesture ends.
type Dispatcher struct {
	ctrl    *Controller
	claimed bool
}

// NewDispatcher creates a dispatcher for c.
func NewDispatcher(c *Controller) *Dispatcher {
	return &Dispatcher{ctrl: c}
}

// Controller returns the controller events are delivered to.
func (d *Dispatcher) Controller() *Controller {
	return d.ctrl
}

// Claimed reports whether the current gesture has been claimed.
func (d *Dispatcher) Claimed() bool {
	return d.claimed
}

// Dispatch delivers ev and reports the claim state after the intercept pass
// and whether the handling pass consumed it.
func (d *Dispatcher) Dispatch(ev MotionEvent) (claimed, consumed bool) {
	if ev.Action == ActionDown {
		d.claimed = false
	}
	if !d.claimed {
		d.claimed = d.ctrl.OnInterceptEvent(ev)
	}
	claimed = d.claimed
	consumed = d.ctrl.OnEvent(ev)

	if ev.Action == ActionUp || ev.Action == ActionCancel {
		d.claimed = false
	}
	return claimed, consumed
}
