// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package room

import (
	"cogentcore.org/room/shape"
	"github.com/go-gl/mathgl/mgl32"
)

// FloorQuads is the floor slab, one unit thick.
var FloorQuads = textured([]shape.Quad{
	{P: [4]mgl32.Vec3{{-15, -5, 10}, {-15, -6, 10}, {15, -6, 10}, {15, -5, 10}}, Color: white},
	{P: [4]mgl32.Vec3{{-15, -5, -10}, {-15, -6, -10}, {15, -6, -10}, {15, -5, -10}}, Color: white},
	{P: [4]mgl32.Vec3{{-15, -5, -10}, {-15, -5, 10}, {15, -5, 10}, {15, -5, -10}}, Color: white},
	{P: [4]mgl32.Vec3{{-15, -6, -10}, {-15, -6, 10}, {15, -6, 10}, {15, -6, -10}}, Color: white},
})

// BackWallQuads is the wall behind the door and clock, at z = -10..-11.
var BackWallQuads = textured([]shape.Quad{
	{P: [4]mgl32.Vec3{{-15, 8, -10}, {-15, -6, -10}, {15, -6, -10}, {15, 8, -10}}, Color: white},
	{P: [4]mgl32.Vec3{{-15, 8, -11}, {-15, -6, -11}, {15, -6, -11}, {15, 8, -11}}, Color: white},
	{P: [4]mgl32.Vec3{{-15, 8, -11}, {-15, -6, -11}, {-15, -6, -10}, {-15, 8, -10}}, Color: white},
	{P: [4]mgl32.Vec3{{15, 8, -10}, {15, -6, -10}, {15, -6, -11}, {15, 8, -11}}, Color: white},
})

// SideWallQuads is the wall at x = -15 along which the bed and cupboard stand.
var SideWallQuads = textured([]shape.Quad{
	{P: [4]mgl32.Vec3{{-15, 8, -10}, {-15, -6, -10}, {-15, -6, 10}, {-15, 8, 10}}, Color: white},
	{P: [4]mgl32.Vec3{{-15, 8, 10}, {-15, -6, 10}, {-15, -6, 11}, {-15, 8, 11}}, Color: white},
	{P: [4]mgl32.Vec3{{-15, 8, 11}, {-15, -6, 11}, {-15, -6, 10}, {-15, 8, 10}}, Color: white},
	{P: [4]mgl32.Vec3{{-15, 8, -10}, {-15, -6, -10}, {-15, -6, -11}, {-15, 8, -11}}, Color: white},
})

// Room returns the room shell: the textured floor and the two walls.
// There is no ceiling.
func Room() *Group {
	return &Group{Name: "room", Batches: []*Batch{
		quads("floor", Floor, FloorQuads),
		quads("back wall", Wall, BackWallQuads),
		quads("side wall", Wall, SideWallQuads),
	}}
}
