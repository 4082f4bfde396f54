// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides the orbit camera state for the room viewer
// and the controller that updates it from keyboard and pointer input.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MinPitch and MaxPitch bound the orbit angle about the X axis, in degrees.
	MinPitch = -85
	MaxPitch = 85

	// MinDistance and MaxDistance bound the distance of the eye from the target.
	MinDistance = 5
	MaxDistance = 100

	// KeyStep is the yaw change in degrees for one rotate key press.
	KeyStep = 5

	// ZoomStep is the distance change for one zoom key press.
	ZoomStep = 1

	// PointerGain converts pointer motion in pixels to degrees.
	PointerGain = 0.2
)

// State is the orbit camera: the eye sits Distance units in front of the
// origin and the scene is rotated by Pitch about X and then Yaw about Y.
// All angles are in degrees.
type State struct {

	// Pitch is the rotation about the X axis, clamped to [MinPitch, MaxPitch].
	Pitch float32

	// Yaw is the rotation about the Y axis. It is never clamped.
	Yaw float32

	// Distance is the eye distance, clamped to [MinDistance, MaxDistance].
	Distance float32
}

// Default returns the startup camera state.
func Default() State {
	return State{Pitch: 0, Yaw: 0, Distance: 30}
}

// Rotate adds the given deltas to yaw and pitch, keeping pitch in range.
func (st *State) Rotate(dyaw, dpitch float32) {
	st.Yaw += dyaw
	st.Pitch = clamp(st.Pitch+dpitch, MinPitch, MaxPitch)
}

// Zoom moves the eye by del along the view axis, keeping the distance in range.
// Negative values move closer.
func (st *State) Zoom(del float32) {
	st.Distance = clamp(st.Distance+del, MinDistance, MaxDistance)
}

// View returns the view matrix: a look-at from (0, 0, Distance) toward the
// origin with +Y up, followed by the pitch rotation and then the yaw rotation
// applied in the same fixed frame. This yields an orbit around the origin.
func (st *State) View() mgl32.Mat4 {
	eye := mgl32.Vec3{0, 0, st.Distance}
	look := mgl32.LookAtV(eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(st.Pitch))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(st.Yaw))
	return look.Mul4(rx).Mul4(ry)
}

func clamp(v, mn, mx float32) float32 {
	return math32.Max(mn, math32.Min(v, mx))
}
