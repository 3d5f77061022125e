package dragview

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TranslationTween animates a Container's translation toward a target. The
// Controller never animates; hosts use this to settle a container after a
// drag (for example snapping it home) and call Update(dt) each frame, or
// hand it to Scene.AddTween.
type TranslationTween struct {
	target Container
	tweenX *gween.Tween
	tweenY *gween.Tween
	Done   bool
}

// TweenTranslation creates a tween that moves c from its current translation
// to (toX, toY) over duration seconds using the easing function. A nil fn
// means linear.
func TweenTranslation(c Container, toX, toY float64, duration float32, fn ease.TweenFunc) *TranslationTween {
	if fn == nil {
		fn = ease.Linear
	}
	x, y := c.Translation()
	return &TranslationTween{
		target: c,
		tweenX: gween.New(float32(x), float32(toX), duration, fn),
		tweenY: gween.New(float32(y), float32(toY), duration, fn),
	}
}

// Update advances the tween by dt seconds and writes the translation.
func (t *TranslationTween) Update(dt float32) {
	if t.Done {
		return
	}
	x, doneX := t.tweenX.Update(dt)
	y, doneY := t.tweenY.Update(dt)
	t.target.SetTranslation(float64(x), float64(y))
	t.Done = doneX && doneY
}

// Stop ends the tween where it is. Hosts stop a settling tween when a new
// drag starts so the two do not fight over the translation.
func (t *TranslationTween) Stop() {
	t.Done = true
}
