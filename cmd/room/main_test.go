// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	opts := options()
	assert.Equal(t, "room", opts.AppName)
	// quitting prints nothing
	assert.False(t, opts.PrintSuccess)
	assert.Empty(t, opts.DefaultFiles)
}
