// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape builds flat vertex meshes from quads, line segments and
// tori, ready for upload into a single interleaved vertex buffer.
package shape

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the number of float32 values per vertex in [Mesh.Floats]:
// position (3), normal (3), texture coordinate (2) and color (4).
const FloatsPerVertex = 3 + 3 + 2 + 4

// Stride is the size in bytes of one interleaved vertex.
const Stride = FloatsPerVertex * 4

// Byte offsets of each attribute within an interleaved vertex.
const (
	PosOffset    = 0
	NormalOffset = 3 * 4
	UVOffset     = 6 * 4
	ColorOffset  = 8 * 4
)

// UnitSquare is the texture mapping used for textured quads: the four
// corners in emission order map to (0,0) (0,1) (1,1) (1,0).
var UnitSquare = [4]mgl32.Vec2{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

// Vertex is one mesh vertex.
type Vertex struct {
	Pos    mgl32.Vec3
	Normal mgl32.Vec3
	UV     mgl32.Vec2
	Color  mgl32.Vec4
}

// Quad is a planar four-vertex face. The points are in emission order,
// which also defines the winding and the face normal.
type Quad struct {

	// P are the corner points.
	P [4]mgl32.Vec3

	// T are the texture coordinates for each corner; zero for flat quads.
	T [4]mgl32.Vec2

	// Color is the face color.
	Color color.RGBA
}

// Normal returns the unit normal of the quad from its winding.
// Degenerate quads return +Z.
func (q *Quad) Normal() mgl32.Vec3 {
	n := q.P[1].Sub(q.P[0]).Cross(q.P[2].Sub(q.P[1]))
	if n.Len() == 0 {
		return mgl32.Vec3{0, 0, 1}
	}
	return n.Normalize()
}

// Mesh is a list of vertices meant to be drawn with a single primitive type.
type Mesh struct {
	Vertices []Vertex
}

// ColorVec returns the color as a float vector in [0, 1].
func ColorVec(c color.RGBA) mgl32.Vec4 {
	return mgl32.Vec4{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

// RGB returns an opaque color from 0-255 components.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// AddQuad appends the quad as the two triangles (0,1,2) and (0,2,3),
// keeping its winding.
func (ms *Mesh) AddQuad(q Quad) {
	n := q.Normal()
	clr := ColorVec(q.Color)
	for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
		ms.Vertices = append(ms.Vertices, Vertex{Pos: q.P[i], Normal: n, UV: q.T[i], Color: clr})
	}
}

// AddQuads appends all the given quads.
func (ms *Mesh) AddQuads(qs ...Quad) {
	for _, q := range qs {
		ms.AddQuad(q)
	}
}

// AddLine appends a line segment from a to b.
func (ms *Mesh) AddLine(a, b mgl32.Vec3, c color.RGBA) {
	clr := ColorVec(c)
	n := mgl32.Vec3{0, 0, 1}
	ms.Vertices = append(ms.Vertices, Vertex{Pos: a, Normal: n, Color: clr}, Vertex{Pos: b, Normal: n, Color: clr})
}

// Len returns the number of vertices.
func (ms *Mesh) Len() int {
	return len(ms.Vertices)
}

// Floats returns the vertices interleaved as described by [FloatsPerVertex].
func (ms *Mesh) Floats() []float32 {
	fs := make([]float32, 0, len(ms.Vertices)*FloatsPerVertex)
	for _, v := range ms.Vertices {
		fs = append(fs, v.Pos[:]...)
		fs = append(fs, v.Normal[:]...)
		fs = append(fs, v.UV[:]...)
		fs = append(fs, v.Color[:]...)
	}
	return fs
}
