// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package room

import (
	"cogentcore.org/room/shape"
	"github.com/go-gl/mathgl/mgl32"
)

// CupboardQuads is the cupboard standing in the back corner:
// four sides and a lighter top, two drawer fronts and a handle.
var CupboardQuads = []shape.Quad{
	{P: [4]mgl32.Vec3{{-12, -0.5, -1.5}, {-12, -5.5, -1.5}, {-12, -5.5, -5.5}, {-12, -0.5, -5.5}}, Color: darkWood},
	{P: [4]mgl32.Vec3{{-14.5, -0.5, -1.5}, {-14.5, -5.5, -1.5}, {-14.5, -5.5, -5.5}, {-14.5, -0.5, -5.5}}, Color: darkWood},
	{P: [4]mgl32.Vec3{{-12, -0.5, -5.5}, {-12, -5.5, -5.5}, {-14.5, -5.5, -5.5}, {-14.5, -0.5, -5.5}}, Color: darkWood},
	{P: [4]mgl32.Vec3{{-12, -0.5, -1.5}, {-12, -5.5, -1.5}, {-14.5, -5.5, -1.5}, {-14.5, -0.5, -1.5}}, Color: darkWood},
	{P: [4]mgl32.Vec3{{-14.5, -0.5, -1.5}, {-12, -0.5, -1.5}, {-12, -0.5, -5.5}, {-14.5, -0.5, -5.5}}, Color: lightWood},

	// drawers
	{P: [4]mgl32.Vec3{{-11.8, -1, -2}, {-11.8, -2, -2}, {-11.8, -2, -5}, {-11.8, -1, -5}}, Color: lightWood},
	{P: [4]mgl32.Vec3{{-11.8, -2.5, -2}, {-11.8, -4.5, -2}, {-11.8, -4.5, -5}, {-11.8, -2.5, -5}}, Color: lightWood},

	// handle
	{P: [4]mgl32.Vec3{{-11.7, -1.5, -3.1}, {-11.7, -1.8, -3.1}, {-11.7, -1.8, -4.1}, {-11.7, -1.5, -4.1}}, Color: handle},
}

// Cupboard returns the cupboard group.
func Cupboard() *Group {
	return &Group{Name: "cupboard", Batches: []*Batch{quads("cupboard", NoTexture, CupboardQuads)}}
}

// DoorQuads is the door in front of the back wall: the frame
// (front, two jambs and the lintel) and three raised panels,
// the last of which is the handle.
var DoorQuads = []shape.Quad{
	{P: [4]mgl32.Vec3{{-14.5, 6, -9.5}, {-14.5, -6, -9.5}, {-9, -6, -9.5}, {-9, 6, -9.5}}, Color: darkWood},
	{P: [4]mgl32.Vec3{{-9, 6, -9.5}, {-9, -6, -9.5}, {-9, -6, -10}, {-9, 6, -10}}, Color: darkWood},
	{P: [4]mgl32.Vec3{{-14.5, 6, -9.5}, {-14.5, -6, -9.5}, {-14.5, -6, -10}, {-14.5, 6, -10}}, Color: darkWood},
	{P: [4]mgl32.Vec3{{-14.5, 6, -9.5}, {-14.5, 6, -10}, {-9, 6, -10}, {-9, 6, -9.5}}, Color: darkWood},

	{P: [4]mgl32.Vec3{{-13.5, 5, -9.4}, {-13.5, 2, -9.4}, {-10, 2, -9.4}, {-10, 5, -9.4}}, Color: panel},
	{P: [4]mgl32.Vec3{{-13.5, 0, -9.4}, {-13.5, -4, -9.4}, {-10, -4, -9.4}, {-10, 0, -9.4}}, Color: panel},
	{P: [4]mgl32.Vec3{{-10, 1.5, -9.4}, {-10, 0.5, -9.4}, {-9.5, 0.5, -9.4}, {-9.5, 1.5, -9.4}}, Color: panel},
}

// Door returns the door group.
func Door() *Group {
	return &Group{Name: "door", Batches: []*Batch{quads("door", NoTexture, DoorQuads)}}
}

// Clock geometry.
var (
	// ClockPos is where the clock hangs on the back wall.
	ClockPos = mgl32.Vec3{-5, 5, -9}

	// ClockRing is the clock face ring.
	ClockRing = shape.NewTorus(1, 0.1, 50, 20)

	// HourTick and MinuteTick are the hand lengths, drawn along +Y
	// and then rotated about Z by their angles in degrees.
	HourTick, HourAngle     = float32(0.5), float32(90)
	MinuteTick, MinuteAngle = float32(0.7), float32(180)
)

// Clock returns the wall clock: a white ring and two black ticks,
// translated to [ClockPos].
func Clock() *Group {
	at := mgl32.Translate3D(ClockPos.X(), ClockPos.Y(), ClockPos.Z())

	ring := &shape.Mesh{}
	ClockRing.AddTo(ring, white)

	tick := func(name string, length, angle float32) *Batch {
		ms := &shape.Mesh{}
		ms.AddLine(mgl32.Vec3{}, mgl32.Vec3{0, length, 0}, black)
		model := at.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(angle)))
		return &Batch{Name: name, Primitive: Lines, Texture: NoTexture, Model: model, LineWidth: 2, Mesh: ms}
	}

	return &Group{Name: "clock", Batches: []*Batch{
		{Name: "clock ring", Primitive: Triangles, Texture: NoTexture, Model: at, Mesh: ring},
		tick("hour tick", HourTick, HourAngle),
		tick("minute tick", MinuteTick, MinuteAngle),
	}}
}
