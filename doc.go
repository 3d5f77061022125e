// Package dragview makes a container draggable by pointer and touch input.
//
// A [Controller] consumes a stream of [MotionEvent]s and decides, gesture by
// gesture, whether the pointer is dragging the container or merely tapping
// it. Movement stays with the container's default handling (clicks, press
// state) until the active pointer travels further than the touch slop on an
// axis enabled by the [Orientation]. From then on the gesture is claimed: the
// container follows the pointer 1:1 and its default handling receives a
// synthetic cancel instead of the terminating up.
//
// # Host contract
//
// Hosts deliver every event in two passes, matching a platform's interception
// model. [Controller.OnInterceptEvent] reports whether the gesture is claimed
// and never touches the container; [Controller.OnEvent] does the work.
// [Dispatcher] implements the usual delivery rule, and [Scene] routes gestures
// among several panels for an [Ebitengine] game:
//
//	scene := dragview.NewScene()
//	panel := dragview.NewPanel("card", 120, 80)
//	ctrl := scene.AddPanel(panel, dragview.DefaultTouchSlop)
//	ctrl.SetDragOrientation(dragview.OrientationHorizontal)
//
//	// in ebiten.Game.Update / Draw:
//	scene.Update(1.0 / float32(ebiten.TPS()))
//	scene.Draw(screen)
//
// [Run] wraps the same loop in a window for programs that need nothing else.
//
// Multi-touch is handled by pointer handoff: when the pointer driving a drag
// lifts while others stay down, the oldest remaining pointer takes over from
// its own position, so the container does not jump.
//
// # Pure state
//
// The state machine itself is [GestureState], a plain value with
// [GestureState.Intercept] and [GestureState.Handle] methods that return the
// next state and a [Decision]. It can be driven and inspected without any
// container or host.
//
// # Tooling
//
// [Config] loads settings from TOML, [Injector] and [ScriptRunner] build and
// replay synthetic gestures, and [TweenTranslation] (via [gween]) settles a
// container after a drag. Drag lifecycle events can be forwarded to an ECS
// through an [EventSink]; see the dragview/ecs module for a [Donburi] adapter.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package dragview
