// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadTriangles(t *testing.T) {
	q := Quad{
		P:     [4]mgl32.Vec3{{-15, 8, -10}, {-15, -6, -10}, {15, -6, -10}, {15, 8, -10}},
		T:     UnitSquare,
		Color: RGB(255, 255, 255),
	}
	var ms Mesh
	ms.AddQuad(q)
	require.Equal(t, 6, ms.Len())

	order := []int{0, 1, 2, 0, 2, 3}
	for i, vi := range order {
		assert.Equal(t, q.P[vi], ms.Vertices[i].Pos)
		assert.Equal(t, q.T[vi], ms.Vertices[i].UV)
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, ms.Vertices[i].Normal)
		assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, ms.Vertices[i].Color)
	}
}

func TestQuadNormal(t *testing.T) {
	floor := Quad{P: [4]mgl32.Vec3{{-15, -5, -10}, {-15, -5, 10}, {15, -5, 10}, {15, -5, -10}}}
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, floor.Normal())

	var flat Quad
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, flat.Normal())
}

func TestColorVec(t *testing.T) {
	v := ColorVec(RGB(255, 0, 51))
	assert.Equal(t, mgl32.Vec4{1, 0, 0.2, 1}, v)
}

func TestLine(t *testing.T) {
	var ms Mesh
	ms.AddLine(mgl32.Vec3{}, mgl32.Vec3{0, 0.5, 0}, RGB(0, 0, 0))
	require.Equal(t, 2, ms.Len())
	assert.Equal(t, mgl32.Vec3{0, 0.5, 0}, ms.Vertices[1].Pos)
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, ms.Vertices[1].Color)
}

func TestFloats(t *testing.T) {
	ms := Mesh{Vertices: []Vertex{{
		Pos:    mgl32.Vec3{1, 2, 3},
		Normal: mgl32.Vec3{4, 5, 6},
		UV:     mgl32.Vec2{7, 8},
		Color:  mgl32.Vec4{9, 10, 11, 12},
	}}}
	fs := ms.Floats()
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, fs)
	assert.Equal(t, 48, Stride)
	assert.Equal(t, ColorOffset/4, len(fs)-4)
}

func TestTorus(t *testing.T) {
	tr := NewTorus(1, 0.1, 50, 20)
	var ms Mesh
	tr.AddTo(&ms, RGB(255, 255, 255))
	require.Equal(t, tr.N(), ms.Len())
	assert.Equal(t, 50*20*6, ms.Len())

	for _, v := range ms.Vertices {
		// every point is TubeRadius away from the ring circle
		ring := mgl32.Vec3{v.Pos.X(), v.Pos.Y(), 0}
		center := ring.Normalize()
		assert.InDelta(t, 0.1, v.Pos.Sub(center).Len(), 1e-4)
		assert.InDelta(t, 1, v.Normal.Len(), 1e-4)
	}

	mn, mx := bounds(&ms)
	assert.InDelta(t, -1.1, mn.X(), 1e-4)
	assert.InDelta(t, 1.1, mx.X(), 1e-4)
	assert.InDelta(t, -0.1, mn.Z(), 1e-3)
	assert.InDelta(t, 0.1, mx.Z(), 1e-3)
}

// bounds returns the axis-aligned bounding box of the mesh vertices.
func bounds(ms *Mesh) (mn, mx mgl32.Vec3) {
	mn, mx = ms.Vertices[0].Pos, ms.Vertices[0].Pos
	for _, v := range ms.Vertices[1:] {
		for i := range 3 {
			mn[i] = min(mn[i], v.Pos[i])
			mx[i] = max(mx[i], v.Pos[i])
		}
	}
	return
}
