package dragview

import (
	"github.com/hajimehoshi/ebiten/v2"
)

type sceneEntry struct {
	panel *Panel
	disp  *Dispatcher
}

// Scene hosts a set of draggable panels. It routes each gesture to the
// topmost panel under the first pointer and delivers the rest of the gesture
// to that panel's controller, whether or not later pointers are over it.
type Scene struct {
	// ClearColor fills the screen before panels are drawn. A zero alpha
	// leaves the screen untouched.
	ClearColor Color

	entries []*sceneEntry
	target  *sceneEntry
	source  *EbitenSource
	tweens  []*TranslationTween
}

// NewScene creates an empty scene reading from Ebitengine mouse and touch input.
func NewScene() *Scene {
	return &Scene{source: NewEbitenSource()}
}

// Source returns the scene's input source.
func (s *Scene) Source() *EbitenSource {
	return s.source
}

// AddPanel adds p on top of every existing panel and returns the controller
// that drags it.
func (s *Scene) AddPanel(p *Panel, touchSlop float64) *Controller {
	c := NewController(p, touchSlop)
	s.entries = append(s.entries, &sceneEntry{panel: p, disp: NewDispatcher(c)})
	return c
}

// Panels returns the scene's panels in draw order.
func (s *Scene) Panels() []*Panel {
	out := make([]*Panel, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.panel
	}
	return out
}

// AddTween registers a tween to be advanced by Update until it is done.
func (s *Scene) AddTween(t *TranslationTween) {
	s.tweens = append(s.tweens, t)
}

// hitTest finds the topmost panel containing (x, y).
func (s *Scene) hitTest(x, y float64) *sceneEntry {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].panel.Bounds().Contains(x, y) {
			return s.entries[i]
		}
	}
	return nil
}

// Dispatch routes one event. It returns false when no panel is handling the
// current gesture or the handling controller did not consume the event.
func (s *Scene) Dispatch(ev MotionEvent) bool {
	if ev.Action == ActionDown && len(ev.Pointers) > 0 {
		s.target = s.hitTest(ev.Pointers[0].X, ev.Pointers[0].Y)
	}
	if s.target == nil {
		return false
	}
	_, consumed := s.target.disp.Dispatch(ev)
	if ev.Action == ActionUp || ev.Action == ActionCancel {
		s.target = nil
	}
	return consumed
}

// Update polls input, dispatches the resulting events and advances tweens.
// dt is the tick length in seconds.
func (s *Scene) Update(dt float32) {
	for _, ev := range s.source.Poll() {
		s.Dispatch(ev)
	}
	s.updateTweens(dt)
}

func (s *Scene) updateTweens(dt float32) {
	live := s.tweens[:0]
	for _, t := range s.tweens {
		t.Update(dt)
		if !t.Done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
}

// Draw renders every panel in order.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	for _, e := range s.entries {
		e.panel.Draw(screen)
	}
}
