// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command room shows a textured 3D room that can be orbited with the
// keyboard (a, d, w, s) and the mouse. Escape quits.
package main

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/room/app"
)

func main() {
	cli.Run(options(), &app.Config{}, app.Run)
}

func options() *cli.Options {
	opts := cli.DefaultOptions("room", "A navigable 3D room with an orbit camera.")
	opts.PrintSuccess = false
	return opts
}
