// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package room

import (
	"testing"

	"cogentcore.org/room/shape"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupOrder(t *testing.T) {
	var names []string
	for _, g := range Groups() {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"room", "cupboard", "clock", "door", "bed"}, names)
}

func TestQuadCounts(t *testing.T) {
	assert.Len(t, FloorQuads, 4)
	assert.Len(t, BackWallQuads, 4)
	assert.Len(t, SideWallQuads, 4)
	assert.Len(t, CupboardQuads, 8)
	assert.Len(t, DoorQuads, 7)
	assert.Len(t, BedFrameQuads, 22)
	assert.Len(t, BlanketQuads, 3)
	assert.Len(t, PillowQuads, 3)
}

func allQuads() map[string][]shape.Quad {
	return map[string][]shape.Quad{
		"floor": FloorQuads, "back wall": BackWallQuads, "side wall": SideWallQuads,
		"cupboard": CupboardQuads, "door": DoorQuads,
		"bed frame": BedFrameQuads, "blanket": BlanketQuads, "pillow": PillowQuads,
	}
}

// Every face is axis aligned: all four points share one coordinate.
func TestQuadsPlanar(t *testing.T) {
	for name, qs := range allQuads() {
		for i, q := range qs {
			shared := 0
			for d := range 3 {
				if q.P[0][d] == q.P[1][d] && q.P[0][d] == q.P[2][d] && q.P[0][d] == q.P[3][d] {
					shared++
				}
			}
			assert.Equal(t, 1, shared, "%s quad %d is not an axis-aligned face", name, i)
			n := q.Normal()
			assert.InDelta(t, 1, n.Len(), 1e-6, "%s quad %d is degenerate", name, i)
		}
	}
}

func TestTextures(t *testing.T) {
	rm := Room()
	require.Len(t, rm.Batches, 3)
	assert.Equal(t, Floor, rm.Batches[0].Texture)
	assert.Equal(t, Wall, rm.Batches[1].Texture)
	assert.Equal(t, Wall, rm.Batches[2].Texture)
	for _, b := range rm.Batches {
		for _, v := range b.Mesh.Vertices {
			assert.Contains(t, shape.UnitSquare[:], v.UV)
			assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, v.Color)
		}
	}

	for _, g := range []*Group{Cupboard(), Clock(), Door(), Bed()} {
		for _, b := range g.Batches {
			assert.Equal(t, NoTexture, b.Texture, "%s: %s", g.Name, b.Name)
			for _, v := range b.Mesh.Vertices {
				if b.Primitive == Lines {
					assert.Equal(t, mgl32.Vec2{}, v.UV)
				}
			}
		}
	}
}

func TestBatchMeshes(t *testing.T) {
	for _, g := range Groups() {
		for _, b := range g.Batches {
			switch b.Primitive {
			case Triangles:
				assert.Zero(t, b.Mesh.Len()%3, b.Name)
			case Lines:
				assert.Equal(t, 2, b.Mesh.Len(), b.Name)
			}
		}
	}
	bed := Bed()
	n := 0
	for _, b := range bed.Batches {
		n += b.Mesh.Len()
	}
	assert.Equal(t, 28*6, n)
}

func TestColors(t *testing.T) {
	assert.Equal(t, shape.RGB(161, 108, 59), CupboardQuads[4].Color, "cupboard top")
	assert.Equal(t, shape.RGB(235, 235, 235), CupboardQuads[7].Color, "cupboard handle")
	for _, q := range BlanketQuads {
		assert.Equal(t, shape.RGB(255, 0, 0), q.Color)
	}
	for _, q := range PillowQuads {
		assert.Equal(t, shape.RGB(255, 255, 255), q.Color)
	}
	for _, q := range DoorQuads[4:] {
		assert.Equal(t, shape.RGB(163, 131, 91), q.Color)
	}
}

func TestClock(t *testing.T) {
	ck := Clock()
	require.Len(t, ck.Batches, 3)
	ring, hour, minute := ck.Batches[0], ck.Batches[1], ck.Batches[2]

	assert.Equal(t, Triangles, ring.Primitive)
	assert.Equal(t, ClockRing.N(), ring.Mesh.Len())
	center := mgl32.TransformCoordinate(mgl32.Vec3{}, ring.Model)
	assert.Equal(t, mgl32.Vec3{-5, 5, -9}, center)

	tip := func(b *Batch) mgl32.Vec3 {
		return mgl32.TransformCoordinate(b.Mesh.Vertices[1].Pos, b.Model)
	}
	// hour tick points to -X (90° about Z), minute tick points down
	ht, mt := tip(hour), tip(minute)
	assert.InDeltaSlice(t, []float32{-5.5, 5, -9}, ht[:], 1e-5)
	assert.InDeltaSlice(t, []float32{-5, 4.3, -9}, mt[:], 1e-5)
	assert.Equal(t, float32(2), hour.LineWidth)
	assert.Equal(t, Lines, minute.Primitive)
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, minute.Mesh.Vertices[0].Color)
}

func TestSlotString(t *testing.T) {
	assert.Equal(t, "floor", Floor.String())
	assert.Equal(t, "wall", Wall.String())
	assert.Equal(t, "none", NoTexture.String())
}
