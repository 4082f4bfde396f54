// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app runs the room viewer: it opens the window, sets up the
// renderer and its textures, and runs the event loop until the user quits.
package app

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/room/camera"
	"cogentcore.org/room/gpu"
	"cogentcore.org/room/render"
	"cogentcore.org/room/system/desktop"
	"cogentcore.org/room/texture"
)

// Run runs the room viewer with the given configuration. It returns
// when the user presses Escape or closes the window.
func Run(c *Config) error {
	logx.SetDefaultLogger()

	win, err := desktop.NewWindow(c.WindowOptions())
	if err != nil {
		return err
	}
	defer win.Destroy()

	gb := gpu.NewBackend(win.SwapBuffers)
	if err := gb.Init(); err != nil {
		return err
	}
	defer gb.Release()

	ctrl := camera.NewController(nil)
	r := render.New(gb, &ctrl.State)
	r.LoadTextures(c.Textures())

	var reload <-chan string
	if c.Watch {
		w, err := texture.NewWatcher(desktop.Wake, c.Floor, c.Wall)
		if errors.Log(err) == nil {
			defer func() { errors.Log(w.Close()) }()
			reload = w.Changes
			slog.Info("watching textures", "floor", c.Floor, "wall", c.Wall)
		}
	}
	return win.Run(ctrl, r, reload)
}
