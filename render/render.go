// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render runs the per-frame render pass of the room scene:
// it owns the projection and the scene textures, reads the camera state,
// and submits every batch of every group to a [Backend] in a fixed order.
package render

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/room/camera"
	"cogentcore.org/room/room"
	"cogentcore.org/room/texture"
	"github.com/go-gl/mathgl/mgl32"
)

// Projection parameters.
const (
	FieldOfView = 45 // vertical, in degrees
	Near        = 1
	Far         = 100
)

// Backend is the graphics API that executes the render pass.
// All methods are called from the thread that owns the graphics context.
type Backend interface {
	texture.Uploader

	// Init prepares the backend for drawing.
	Init() error

	// Viewport sets the drawable area in pixels.
	Viewport(width, height int)

	// Clear clears the color and depth buffers.
	Clear()

	// Draw draws one batch with the given projection and model-view matrices,
	// with tex bound for sampling. tex is [texture.None] for untextured
	// batches and for textures that failed to load.
	Draw(b *room.Batch, proj, modelView mgl32.Mat4, tex texture.Handle)

	// Present shows the completed frame.
	Present()
}

// Aspect returns the aspect ratio for a window of the given size.
// Sizes below one pixel count as one, so the ratio is always finite.
func Aspect(width, height int) float32 {
	return float32(max(width, 1)) / float32(max(height, 1))
}

// Projection returns the perspective projection for a window of the given size.
func Projection(width, height int) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), Aspect(width, height), Near, Far)
}

// Renderer draws the room scene from the camera state.
type Renderer struct {

	// Backend executes the drawing.
	Backend Backend

	// Camera is read at the start of every frame.
	Camera *camera.State

	// Groups is the scene, drawn in order.
	Groups []*room.Group

	// TextureOptions apply to every scene texture.
	TextureOptions texture.Options

	proj     mgl32.Mat4
	textures map[room.Slot]texture.Handle
	paths    map[room.Slot]string
	frames   int
}

// New returns a renderer for the full room scene, with the projection of
// a 1x1 window until [Renderer.Resize] is called.
func New(b Backend, cam *camera.State) *Renderer {
	return &Renderer{
		Backend:        b,
		Camera:         cam,
		Groups:         room.Groups(),
		TextureOptions: texture.DefaultOptions(),
		proj:           Projection(1, 1),
		textures:       map[room.Slot]texture.Handle{},
		paths:          map[room.Slot]string{},
	}
}

// LoadTextures loads the image file for each slot. A texture that fails
// to load is logged and left unbound; it never stops rendering.
func (r *Renderer) LoadTextures(paths map[room.Slot]string) {
	for _, slot := range []room.Slot{room.Floor, room.Wall} {
		p, ok := paths[slot]
		if !ok {
			continue
		}
		r.paths[slot] = p
		r.load(slot)
	}
}

func (r *Renderer) load(slot room.Slot) {
	p := r.paths[slot]
	h, err := texture.Load(r.Backend, p, r.TextureOptions)
	if err == nil {
		slog.Info("loaded texture", "slot", slot, "path", p, "handle", h)
	} else {
		errors.Log(fmt.Errorf("%v texture: %w", slot, err))
	}
	r.textures[slot] = h
}

// ReloadTexture reloads every slot that uses the given file, releasing
// its previous texture. It returns whether any slot used the file.
func (r *Renderer) ReloadTexture(path string) bool {
	found := false
	for _, slot := range []room.Slot{room.Floor, room.Wall} {
		p, ok := r.paths[slot]
		if !ok || !samePath(p, path) {
			continue
		}
		found = true
		r.Backend.Delete(r.textures[slot])
		r.load(slot)
	}
	return found
}

func samePath(a, b string) bool {
	aa, err := filepath.Abs(a)
	if err != nil {
		return false
	}
	ba, err := filepath.Abs(b)
	if err != nil {
		return false
	}
	return aa == ba
}

// Texture returns the handle bound for the given slot.
func (r *Renderer) Texture(slot room.Slot) texture.Handle {
	return r.textures[slot]
}

// Resize updates the viewport and projection for a new window size.
func (r *Renderer) Resize(width, height int) {
	height = max(height, 1)
	r.Backend.Viewport(max(width, 0), height)
	r.proj = Projection(width, height)
}

// ProjectionMatrix returns the current projection.
func (r *Renderer) ProjectionMatrix() mgl32.Mat4 {
	return r.proj
}

// Frame renders one complete frame: clear, view transform from the camera,
// every group in order, then present.
func (r *Renderer) Frame() {
	r.Backend.Clear()
	view := r.Camera.View()
	for _, g := range r.Groups {
		for _, b := range g.Batches {
			r.Backend.Draw(b, r.proj, view.Mul4(b.Model), r.textures[b.Texture])
		}
	}
	r.Backend.Present()
	r.frames++
}

// Frames returns the number of frames rendered so far.
func (r *Renderer) Frames() int {
	return r.frames
}
