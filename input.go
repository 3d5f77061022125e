package dragview

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// mousePointerID is the pointer id used for the mouse. Touch ids are offset
// past it so the two never collide.
const mousePointerID = 0

// EbitenSource polls Ebitengine's mouse and touch state once per tick and
// produces MotionEvents. The left mouse button acts as pointer 0; every touch
// becomes its own pointer.
type EbitenSource struct {
	// Mouse enables the left mouse button as a pointer. Default true.
	Mouse bool
	// ScreenToWorld optionally converts screen coordinates before they are
	// reported. Nil means identity.
	ScreenToWorld func(x, y float64) (float64, float64)

	tracker  PointerTracker
	touchIDs []ebiten.TouchID
	samples  []PointerSample
}

// NewEbitenSource creates a source that reads both mouse and touch input.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{Mouse: true}
}

// Poll reads the current input state and returns this tick's events. Call it
// from ebiten.Game.Update. The returned slice is reused by the next call.
func (s *EbitenSource) Poll() []MotionEvent {
	s.samples = s.samples[:0]

	if s.Mouse && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		s.samples = append(s.samples, s.sample(mousePointerID, float64(mx), float64(my)))
	}

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, tid := range s.touchIDs {
		tx, ty := ebiten.TouchPosition(tid)
		s.samples = append(s.samples, s.sample(int(tid)+1, float64(tx), float64(ty)))
	}

	return s.tracker.Frame(s.samples)
}

// Cancel aborts any gesture in progress. See PointerTracker.Cancel.
func (s *EbitenSource) Cancel() []MotionEvent {
	return s.tracker.Cancel()
}

func (s *EbitenSource) sample(id int, x, y float64) PointerSample {
	if s.ScreenToWorld != nil {
		x, y = s.ScreenToWorld(x, y)
	}
	return PointerSample{ID: id, X: x, Y: y}
}
