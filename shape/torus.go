// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Torus is a solid torus lying in the XY plane around the origin,
// defined by the radius of the ring and the radius of the tube.
type Torus struct {

	// Radius is the radius of the ring, out to the center of the tube.
	Radius float32

	// TubeRadius is the radius of the solid tube.
	TubeRadius float32

	// RadialSegs is the number of segments around the ring.
	RadialSegs int `min:"3"`

	// TubeSegs is the number of segments around the tube cross section.
	TubeSegs int `min:"3"`
}

// NewTorus returns a torus with the given ring and tube radii,
// number of ring segments and number of tube segments.
func NewTorus(radius, tubeRadius float32, radialSegs, tubeSegs int) *Torus {
	return &Torus{Radius: radius, TubeRadius: tubeRadius, RadialSegs: radialSegs, TubeSegs: tubeSegs}
}

// N returns the number of triangle vertices [Torus.AddTo] appends.
func (tr *Torus) N() int {
	return tr.RadialSegs * tr.TubeSegs * 6
}

// point returns the surface point and unit normal for ring angle u
// and tube angle v, in radians.
func (tr *Torus) point(u, v float32) (pt, norm mgl32.Vec3) {
	cu, su := math32.Cos(u), math32.Sin(u)
	cv, sv := math32.Cos(v), math32.Sin(v)
	r := tr.Radius + tr.TubeRadius*cv
	pt = mgl32.Vec3{r * cu, r * su, tr.TubeRadius * sv}
	center := mgl32.Vec3{tr.Radius * cu, tr.Radius * su, 0}
	norm = pt.Sub(center).Normalize()
	return
}

// AddTo appends the torus triangles to the mesh in the given color.
// Texture coordinates run 0-1 around the ring and around the tube.
func (tr *Torus) AddTo(ms *Mesh, c color.RGBA) {
	clr := ColorVec(c)
	rs, ts := tr.RadialSegs, tr.TubeSegs
	vert := func(i, j int) Vertex {
		u := float32(i) / float32(rs) * 2 * math32.Pi
		v := float32(j) / float32(ts) * 2 * math32.Pi
		pt, n := tr.point(u, v)
		return Vertex{Pos: pt, Normal: n, UV: mgl32.Vec2{float32(i) / float32(rs), float32(j) / float32(ts)}, Color: clr}
	}
	for i := 1; i <= rs; i++ {
		for j := 1; j <= ts; j++ {
			v0 := vert(i-1, j)
			v1 := vert(i-1, j-1)
			v2 := vert(i, j-1)
			v3 := vert(i, j)
			ms.Vertices = append(ms.Vertices, v0, v1, v3, v1, v2, v3)
		}
	}
}
