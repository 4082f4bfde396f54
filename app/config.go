// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"image"

	"cogentcore.org/room/room"
	"cogentcore.org/room/system/desktop"
)

// Config is the configuration information for the room viewer.
type Config struct {

	// Floor is the image file for the floor texture.
	Floor string `default:"wood.jpg"`

	// Wall is the image file for the wall texture.
	Wall string `default:"wall.jpg"`

	// Width is the initial width of the window.
	Width int `default:"500"`

	// Height is the initial height of the window.
	Height int `default:"500"`

	// X is the initial horizontal position of the window.
	X int `default:"200"`

	// Y is the initial vertical position of the window.
	Y int `default:"100"`

	// Title is the window title.
	Title string `default:"3D Room"`

	// Watch reloads the textures whenever their files change.
	Watch bool
}

// Textures returns the image file for each texture slot.
func (c *Config) Textures() map[room.Slot]string {
	return map[room.Slot]string{room.Floor: c.Floor, room.Wall: c.Wall}
}

// WindowOptions returns the options for the main window.
func (c *Config) WindowOptions() desktop.Options {
	return desktop.Options{
		Size:  image.Pt(c.Width, c.Height),
		Pos:   image.Pt(c.X, c.Y),
		Title: c.Title,
	}
}
