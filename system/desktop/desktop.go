// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop provides the room window on desktop platforms using
// glfw, and dispatches its input events to the camera controller.
package desktop

import (
	"fmt"
	"image"
	"log/slog"
	"runtime"

	"cogentcore.org/room/camera"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// some operating systems require us to be on the main thread
	runtime.LockOSThread()
}

// Options are the options for a new window.
type Options struct {

	// Size is the initial size of the window content area.
	Size image.Point

	// Pos is the initial position of the window on the screen.
	Pos image.Point

	// Title is the window title.
	Title string
}

// Renderer is what the window drives: frames, resizes and texture reloads.
type Renderer interface {
	Resize(width, height int)
	Frame()
	ReloadTexture(path string) bool
}

// Window is a glfw window with an OpenGL context.
type Window struct {
	glw *glfw.Window

	ctrl     *camera.Controller
	renderer Renderer

	// dirty is set when a redraw has been requested.
	dirty bool

	// quit is set when the user asked to quit.
	quit bool
}

// NewWindow initializes glfw and creates a window with a current
// OpenGL 4.1 core context.
func NewWindow(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initializing glfw: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.RedBits, 8)
	glfw.WindowHint(glfw.GreenBits, 8)
	glfw.WindowHint(glfw.BlueBits, 8)
	glfw.WindowHint(glfw.Visible, glfw.False)

	sz := opts.Size
	sz.X, sz.Y = max(sz.X, 1), max(sz.Y, 1)
	glw, err := glfw.CreateWindow(sz.X, sz.Y, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("creating window: %w", err)
	}
	glw.SetPos(opts.Pos.X, opts.Pos.Y)
	glw.MakeContextCurrent()
	glfw.SwapInterval(1)
	glw.Show()

	w := &Window{glw: glw}
	glw.SetKeyCallback(w.KeyEvent)
	glw.SetCharCallback(w.CharEvent)
	glw.SetCursorPosCallback(w.CursorPosEvent)
	glw.SetCursorEnterCallback(w.CursorEnterEvent)
	glw.SetFramebufferSizeCallback(w.FbResized)
	glw.SetRefreshCallback(w.Refresh)
	slog.Info("created window", "title", opts.Title, "size", sz, "pos", opts.Pos)
	return w, nil
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.glw.SwapBuffers()
}

// Redraw requests that a frame be rendered on the next loop iteration.
func (w *Window) Redraw() {
	w.dirty = true
}

// Quit requests that the event loop stop.
func (w *Window) Quit() {
	w.quit = true
}

// Destroy destroys the window and terminates glfw.
func (w *Window) Destroy() {
	w.glw.Destroy()
	glfw.Terminate()
}

// Wake unblocks the event loop if it is waiting for events.
// It may be called from any goroutine.
func Wake() {
	glfw.PostEmptyEvent()
}

// Run attaches the controller and renderer to the window and runs the
// event loop until the user quits or closes the window. Frames are only
// rendered after a redraw was requested. Paths received on reload are
// passed to the renderer to reload the matching textures.
func (w *Window) Run(ctrl *camera.Controller, r Renderer, reload <-chan string) error {
	w.ctrl = ctrl
	w.renderer = r
	ctrl.Redraw = w.Redraw
	fw, fh := w.glw.GetFramebufferSize()
	w.FbResized(w.glw, fw, fh)
	for !w.quit && !w.glw.ShouldClose() {
		w.update(reload)
		if w.quit {
			break
		}
		glfw.WaitEvents()
	}
	slog.Info("event loop done", "quit", w.quit)
	return nil
}

// update applies pending texture reloads and renders a frame if one
// was requested.
func (w *Window) update(reload <-chan string) {
	for done := false; !done; {
		select {
		case p := <-reload:
			if w.renderer.ReloadTexture(p) {
				w.Redraw()
			}
		default:
			done = true
		}
	}
	if w.dirty {
		w.dirty = false
		w.renderer.Frame()
	}
}

func (w *Window) dispatch(act camera.Action) {
	if act == camera.Quit {
		w.Quit()
	}
}

// KeyEvent handles physical keys that produce no character, namely Escape.
func (w *Window) KeyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	if ky == glfw.KeyEscape {
		w.dispatch(w.ctrl.OnKey(camera.KeyQuit))
	}
}

// CharEvent handles character input.
func (w *Window) CharEvent(gw *glfw.Window, char rune) {
	w.dispatch(w.ctrl.OnRune(char))
}

// CursorPosEvent handles pointer motion.
func (w *Window) CursorPosEvent(gw *glfw.Window, x, y float64) {
	w.ctrl.OnPointerMove(x, y)
}

// CursorEnterEvent forgets the pointer reference when it leaves the window.
func (w *Window) CursorEnterEvent(gw *glfw.Window, entered bool) {
	if !entered {
		w.ctrl.ResetPointer()
	}
}

// FbResized handles framebuffer size changes.
func (w *Window) FbResized(gw *glfw.Window, width, height int) {
	w.renderer.Resize(width, height)
	w.Redraw()
}

// Refresh handles requests from the window system to repaint.
func (w *Window) Refresh(gw *glfw.Window) {
	w.Redraw()
}
