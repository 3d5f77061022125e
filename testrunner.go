package dragview

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action      string  `json:"action"`
	Pointer     int     `json:"pointer,omitempty"`
	X           float64 `json:"x,omitempty"`
	Y           float64 `json:"y,omitempty"`
	ToX         float64 `json:"toX,omitempty"`
	ToY         float64 `json:"toY,omitempty"`
	Steps       int     `json:"steps,omitempty"`
	Orientation string  `json:"orientation,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// StepResult records what the controller decided for one delivered event.
type StepResult struct {
	Event    MotionEvent
	Claimed  bool
	Consumed bool
	Dragging bool
	// TranslationX and TranslationY are the container translation after the event.
	TranslationX, TranslationY float64
}

// ScriptRunner replays a gesture script through a Controller. Scripts look like:
//
//	{"steps": [
//	  {"action": "press", "x": 0, "y": 0},
//	  {"action": "move", "pointer": 0, "x": 15, "y": 4},
//	  {"action": "release", "pointer": 0}
//	]}
//
// Actions are press, move, drag (toX, toY, steps), release, cancel and
// orient (orientation: none, horizontal, vertical, all). Pointer ids are
// assigned in press order starting at 0.
type ScriptRunner struct {
	steps []scriptStep
}

// LoadGestureScript parses a JSON gesture script.
func LoadGestureScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("dragview: parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("dragview: parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "move", "drag", "release", "cancel":
		case "orient":
			var o Orientation
			if err := o.UnmarshalText([]byte(st.Orientation)); err != nil {
				return nil, fmt.Errorf("dragview: parse gesture script: step %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("dragview: parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Len returns the number of steps in the script.
func (r *ScriptRunner) Len() int {
	return len(r.steps)
}

// Run replays the script through c using a Dispatcher and returns one result
// per delivered event.
func (r *ScriptRunner) Run(c *Controller) []StepResult {
	disp := NewDispatcher(c)
	var in Injector
	var results []StepResult

	for _, st := range r.steps {
		switch st.Action {
		case "press":
			in.Press(st.X, st.Y)
		case "move":
			in.Move(st.Pointer, st.X, st.Y)
		case "drag":
			in.Drag(st.Pointer, st.ToX, st.ToY, st.Steps)
		case "release":
			in.Release(st.Pointer)
		case "cancel":
			in.Cancel()
		case "orient":
			var o Orientation
			_ = o.UnmarshalText([]byte(st.Orientation))
			c.SetDragOrientation(o)
		}

		for _, ev := range in.Events() {
			claimed, consumed := disp.Dispatch(ev)
			tx, ty := c.Container().Translation()
			results = append(results, StepResult{
				Event:        ev,
				Claimed:      claimed,
				Consumed:     consumed,
				Dragging:     c.IsDragging(),
				TranslationX: tx,
				TranslationY: ty,
			})
		}
	}
	return results
}
