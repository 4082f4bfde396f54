// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"image"
	"testing"

	"cogentcore.org/core/cli"
	"cogentcore.org/room/room"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := &Config{}
	require.NoError(t, cli.SetFromDefaults(c))
	assert.Equal(t, "wood.jpg", c.Floor)
	assert.Equal(t, "wall.jpg", c.Wall)
	assert.False(t, c.Watch)

	opts := c.WindowOptions()
	assert.Equal(t, image.Pt(500, 500), opts.Size)
	assert.Equal(t, image.Pt(200, 100), opts.Pos)
	assert.Equal(t, "3D Room", opts.Title)

	assert.Equal(t, map[room.Slot]string{room.Floor: "wood.jpg", room.Wall: "wall.jpg"}, c.Textures())
}
