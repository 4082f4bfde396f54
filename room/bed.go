// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package room

import (
	"cogentcore.org/room/shape"
	"github.com/go-gl/mathgl/mgl32"
)

// BedFrameQuads are the wooden parts of the bed: four posts, the side
// rails between them, and the head and foot boards.
var BedFrameQuads = []shape.Quad{
	// head post at z = 6.5..8, then the side rail
	{P: [4]mgl32.Vec3{{-15, 2, 8}, {-15, -5, 8}, {-13.5, -5, 8}, {-13.5, 2, 8}}, Color: bedWood},
	{P: [4]mgl32.Vec3{{-15, 2, 6.5}, {-15, -5, 6.5}, {-13.5, -5, 6.5}, {-13.5, 2, 6.5}}, Color: bedWood},
	{P: [4]mgl32.Vec3{{-15, 2, 8}, {-15, 2, 6.5}, {-13.5, 2, 6.5}, {-13.5, 2, 8}}, Color: bedWood},
	{P: [4]mgl32.Vec3{{-13.5, 2, 8}, {-13.5, -5, 8}, {-13.5, -5, 6.5}, {-13.5, 2, 6.5}}, Color: bedWood},
	{P: [4]mgl32.Vec3{{-13.5, -1.5, 8}, {-13.5, -3.5, 8}, {1, -3.5, 8}, {1, -1.5, 8}}, Color: bedWood},

	// foot post at z = 6.5..8, then the footboard
	{P: [4]mgl32.Vec3{{1, 2, 8}, {1, -5, 8}, {2.5, -5, 8}, {2.5, 2, 8}}, Color: bedWood},
	{P: [4]mgl32.Vec3{{1, 2, 6.5}, {1, -5, 6.5}, {2.5, -5, 6.5}, {2.5, 2, 6.5}}, Color: bedWood},
	{P: [4]mgl32.Vec3{{1, 2, 8}, {1, 2, 6.5}, {2.5, 2, 6.5}, {2.5, 2, 8}}, Color: bedWood},
	{P: [4]mgl32.Vec3{{2.5, 2, 8}, {2.5, -5, 8}, {2.5, -5, 6.5}, {2.5, 2, 6.5}}, Color: bedWood},
	{P: [4]mgl32.Vec3{{1, 2, 8}, {1, -5, 8}, {1, -5, 6.5}, {1, 2, 6.5}}, Color: bedWood},
	{P: [4]mgl32.Vec3{{2.5, 1, 6.5}, {2.5, -3.5, 6.5}, {2.5, -3.5, 2}, {2.5, 1, 2}}, Color: bedWood},

	// foot post at z = 0.5..2, then the other side rail
	{P: [4]mgl32.Vec3{{1, 2, 2}, {1, -5, 2}, {2.5, -5, 2}, {2.5, 2, 2}}, Color: bedWood},
	{P: [4]mgl32.Vec3{{1, 2, 0.5}, {1, -5, 0.5}, {2.5, -5, 0.5}, {2.5, 2, 0.5}}, Color: bedWood},
	{P: [4]mgl32.Vec3{{1, 2, 2}, {1, 2, 0.5}, {2.5, 2, 0.5}, {2.5, 2, 2}}, Color: bedWood},
	{P: [4]mgl32.Vec3{{2.5, 2, 2}, {2.5, -5, 2}, {2.5, -5, 0.5}, {2.5, 2, 0.5}}, Color: bedWood},
	{P: [4]mgl32.Vec3{{1, 2, 2}, {1, -5, 2}, {1, -5, 0.5}, {1, 2, 0.5}}, Color: bedWood},
	{P: [4]mgl32.Vec3{{-13.5, -1.5, 0.5}, {-13.5, -3.5, 0.5}, {1, -3.5, 0.5}, {1, -1.5, 0.5}}, Color: bedWood},

	// head post at z = 0.5..2, then the headboard
	{P: [4]mgl32.Vec3{{-15, 2, 2}, {-15, -5, 2}, {-13.5, -5, 2}, {-13.5, 2, 2}}, Color: bedWood},
	{P: [4]mgl32.Vec3{{-15, 2, 0.5}, {-15, -5, 0.5}, {-13.5, -5, 0.5}, {-13.5, 2, 0.5}}, Color: bedWood},
	{P: [4]mgl32.Vec3{{-15, 2, 2}, {-15, 2, 0.5}, {-13.5, 2, 0.5}, {-13.5, 2, 2}}, Color: bedWood},
	{P: [4]mgl32.Vec3{{-13.5, 2, 2}, {-13.5, -5, 2}, {-13.5, -5, 0.5}, {-13.5, 2, 0.5}}, Color: bedWood},
	{P: [4]mgl32.Vec3{{-14.5, 1, 6.5}, {-14.5, -3.5, 6.5}, {-14.5, -3.5, 2}, {-14.5, 1, 2}}, Color: bedWood},
}

// BlanketQuads is the red blanket over the foot end of the mattress.
var BlanketQuads = []shape.Quad{
	{P: [4]mgl32.Vec3{{-10, 0, 0.5}, {-10, -1.5, 0.5}, {1, -1.5, 0.5}, {1, 0, 0.5}}, Color: blanket},
	{P: [4]mgl32.Vec3{{-10, 0, 8}, {-10, -1.5, 8}, {1, -1.5, 8}, {1, 0, 8}}, Color: blanket},
	{P: [4]mgl32.Vec3{{-10, 0, 0.5}, {-10, 0, 8}, {1, 0, 8}, {1, 0, 0.5}}, Color: blanket},
}

// PillowQuads is the white pillow at the head end.
var PillowQuads = []shape.Quad{
	{P: [4]mgl32.Vec3{{-14.5, 0, 0.5}, {-14.5, -1.5, 0.5}, {-10, -1.5, 0.5}, {-10, 0, 0.5}}, Color: white},
	{P: [4]mgl32.Vec3{{-14.5, 0, 8}, {-14.5, -1.5, 8}, {-10, -1.5, 8}, {-10, 0, 8}}, Color: white},
	{P: [4]mgl32.Vec3{{-14.5, 0, 0.5}, {-14.5, 0, 8}, {-10, 0, 8}, {-10, 0, 0.5}}, Color: white},
}

// Bed returns the bed group, drawn frame first, then blanket, then pillow.
func Bed() *Group {
	return &Group{Name: "bed", Batches: []*Batch{
		quads("bed frame", NoTexture, BedFrameQuads),
		quads("blanket", NoTexture, BlanketQuads),
		quads("pillow", NoTexture, PillowQuads),
	}}
}
