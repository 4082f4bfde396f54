// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package room is the fixed catalog of geometry that makes up the room
// scene: the room shell, a cupboard, a wall clock, a door and a bed.
// Every group is a constant table of faces in world coordinates, built
// once into vertex meshes for batched submission.
package room

import (
	"cogentcore.org/room/shape"
	"github.com/go-gl/mathgl/mgl32"
)

// Slot identifies which scene texture a batch samples.
type Slot int32

const (
	// NoTexture batches are flat colored.
	NoTexture Slot = iota

	// Floor is the floor texture (wood.jpg by default).
	Floor

	// Wall is the wall texture (wall.jpg by default).
	Wall
)

func (s Slot) String() string {
	switch s {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	}
	return "none"
}

// Primitive is the primitive type a batch is drawn with.
type Primitive int32

const (
	// Triangles draws each three vertices as a filled triangle.
	Triangles Primitive = iota

	// Lines draws each two vertices as a line segment.
	Lines
)

// Batch is one draw call: a mesh drawn with a single primitive type,
// texture binding and model transform.
type Batch struct {

	// Name identifies the batch for logging.
	Name string

	// Primitive is how Mesh is drawn.
	Primitive Primitive

	// Texture is the texture slot bound while drawing.
	Texture Slot

	// Model is the object-to-world transform; identity for everything
	// except the clock parts.
	Model mgl32.Mat4

	// LineWidth is the width in pixels for [Lines] batches.
	LineWidth float32

	// Mesh is the geometry.
	Mesh *shape.Mesh
}

// Group is one named furniture or structure group.
type Group struct {
	Name    string
	Batches []*Batch
}

// Groups returns all scene groups in rendering order:
// room, cupboard, clock, door, bed.
func Groups() []*Group {
	return []*Group{Room(), Cupboard(), Clock(), Door(), Bed()}
}

// quads returns a triangle batch built from the given quads.
func quads(name string, tex Slot, qs []shape.Quad) *Batch {
	ms := &shape.Mesh{}
	ms.AddQuads(qs...)
	return &Batch{Name: name, Primitive: Triangles, Texture: tex, Model: mgl32.Ident4(), Mesh: ms}
}

// textured returns a copy of the quads mapped with [shape.UnitSquare].
func textured(qs []shape.Quad) []shape.Quad {
	out := make([]shape.Quad, len(qs))
	for i, q := range qs {
		q.T = shape.UnitSquare
		out[i] = q
	}
	return out
}

// Colors used by the furniture.
var (
	white     = shape.RGB(255, 255, 255)
	black     = shape.RGB(0, 0, 0)
	darkWood  = shape.RGB(80, 50, 20)
	lightWood = shape.RGB(161, 108, 59)
	handle    = shape.RGB(235, 235, 235)
	panel     = shape.RGB(163, 131, 91)
	bedWood   = shape.RGB(101, 67, 33)
	blanket   = shape.RGB(255, 0, 0)
)
