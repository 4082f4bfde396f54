// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

// Key is one of the control keys understood by the [Controller].
type Key int32

const (
	// KeyNone is any key that has no camera binding.
	KeyNone Key = iota

	// KeyRotateLeft decreases yaw (a, A).
	KeyRotateLeft

	// KeyRotateRight increases yaw (d, D).
	KeyRotateRight

	// KeyCloser moves the eye toward the target (w, W).
	KeyCloser

	// KeyFarther moves the eye away from the target (s, S).
	KeyFarther

	// KeyQuit ends the program (Escape).
	KeyQuit
)

// EscapeCode is the character code of the Escape key.
const EscapeCode = 27

// KeyFromRune returns the [Key] bound to the given character, ignoring case.
func KeyFromRune(r rune) Key {
	switch r {
	case 'a', 'A':
		return KeyRotateLeft
	case 'd', 'D':
		return KeyRotateRight
	case 'w', 'W':
		return KeyCloser
	case 's', 'S':
		return KeyFarther
	case EscapeCode:
		return KeyQuit
	}
	return KeyNone
}

// Action is what the caller must do after an input event.
type Action int32

const (
	// None means keep running.
	None Action = iota

	// Quit means end the process with exit code 0.
	Quit
)

// Controller owns the camera [State] and is the only thing that mutates it.
// It is driven from the window event loop and is not safe for concurrent use.
type Controller struct {

	// State is the current camera state.
	State State

	// Redraw is called whenever the state may have changed.
	Redraw func()

	// last pointer position; valid only if hasLast
	lastX, lastY float64
	hasLast      bool
}

// NewController returns a controller starting at the [Default] state.
func NewController(redraw func()) *Controller {
	return &Controller{State: Default(), Redraw: redraw}
}

// OnKey applies the given key. Every key other than [KeyQuit] requests
// a redraw, including keys without a binding.
func (c *Controller) OnKey(k Key) Action {
	switch k {
	case KeyRotateLeft:
		c.State.Rotate(-KeyStep, 0)
	case KeyRotateRight:
		c.State.Rotate(KeyStep, 0)
	case KeyCloser:
		c.State.Zoom(-ZoomStep)
	case KeyFarther:
		c.State.Zoom(ZoomStep)
	case KeyQuit:
		return Quit
	}
	c.redraw()
	return None
}

// OnRune applies the key bound to the given character.
func (c *Controller) OnRune(r rune) Action {
	return c.OnKey(KeyFromRune(r))
}

// OnPointerMove orbits the camera by the pointer motion since the last event.
// The first event after construction or [Controller.ResetPointer] only records
// the reference position.
func (c *Controller) OnPointerMove(x, y float64) {
	if !c.hasLast {
		c.lastX, c.lastY = x, y
		c.hasLast = true
		return
	}
	dx := float32(x - c.lastX)
	dy := float32(y - c.lastY)
	c.lastX, c.lastY = x, y
	c.State.Rotate(dx*PointerGain, dy*PointerGain)
	c.redraw()
}

// ResetPointer forgets the reference position, so that the next pointer
// event does not produce a jump (for example after the pointer left the window).
func (c *Controller) ResetPointer() {
	c.hasLast = false
}

// HasPointer returns whether a reference pointer position is recorded.
func (c *Controller) HasPointer() bool {
	return c.hasLast
}

func (c *Controller) redraw() {
	if c.Redraw != nil {
		c.Redraw()
	}
}
