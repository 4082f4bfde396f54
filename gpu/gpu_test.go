// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"cogentcore.org/room/room"
	"cogentcore.org/room/texture"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNormalMatrix(t *testing.T) {
	assert.Equal(t, mgl32.Ident3(), NormalMatrix(mgl32.Ident4()))

	// translation does not affect normals
	mv := mgl32.Translate3D(-5, 5, -9)
	assert.Equal(t, mgl32.Ident3(), NormalMatrix(mv))

	// rotation is its own inverse transpose
	rot := mgl32.HomogRotate3DY(mgl32.DegToRad(90))
	n := NormalMatrix(rot).Mul3x1(mgl32.Vec3{1, 0, 0})
	assert.InDeltaSlice(t, []float32{0, 0, -1}, n[:], 1e-6)

	// non-uniform scale keeps normals perpendicular to the surface
	sc := mgl32.Scale3D(2, 1, 1)
	n = NormalMatrix(sc).Mul3x1(mgl32.Vec3{1, 1, 0})
	assert.InDeltaSlice(t, []float32{0.5, 1, 0}, n[:], 1e-6)
}

func TestClampLineWidth(t *testing.T) {
	assert.Equal(t, float32(2), ClampLineWidth(2, [2]float32{1, 10}))
	assert.Equal(t, float32(1), ClampLineWidth(2, [2]float32{1, 1}))
	assert.Equal(t, float32(1), ClampLineWidth(0, [2]float32{1, 10}))
	assert.Equal(t, float32(2), ClampLineWidth(2, [2]float32{}))
}

func TestLineWidthRange(t *testing.T) {
	wide := [2]float32{1, 10}
	assert.Equal(t, wide, LineWidthRange(wide, 0))

	// forward-compatible contexts only accept width 1
	rng := LineWidthRange(wide, gl.CONTEXT_FLAG_FORWARD_COMPATIBLE_BIT)
	assert.Equal(t, [2]float32{1, 1}, rng)
	assert.Equal(t, float32(1), ClampLineWidth(2, rng))

	rng = LineWidthRange(wide, gl.CONTEXT_FLAG_FORWARD_COMPATIBLE_BIT|0x2)
	assert.Equal(t, [2]float32{1, 1}, rng)
}

func TestModes(t *testing.T) {
	assert.Equal(t, uint32(gl.TRIANGLES), Primitive(room.Triangles))
	assert.Equal(t, uint32(gl.LINES), Primitive(room.Lines))

	opts := texture.DefaultOptions()
	assert.Equal(t, int32(gl.REPEAT), WrapMode(opts))
	assert.Equal(t, int32(gl.LINEAR_MIPMAP_LINEAR), MinFilter(opts))
	assert.Equal(t, int32(gl.CLAMP_TO_EDGE), WrapMode(texture.Options{}))
	assert.Equal(t, int32(gl.LINEAR), MinFilter(texture.Options{}))
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, mgl32.Vec4{0.2, 0.3, 0.4, 1}, ClearColor)
	assert.Equal(t, uint32(gl.LESS), DepthFunc)
	b := NewBackend(nil)
	assert.Equal(t, DefaultLight, b.Light)
	assert.Equal(t, mgl32.Vec3{5, 5, 5}, b.Light.Pos)
	b.Present() // no swap function is a no-op
}
