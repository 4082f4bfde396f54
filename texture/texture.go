// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texture decodes image files into RGBA pixel data for GPU
// textures and defines the contract for uploading them.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
)

// Handle is an opaque GPU texture reference. [None] means no texture:
// binding it leaves textured surfaces with their untextured appearance.
type Handle uint32

// None is the unbound texture handle.
const None Handle = 0

// Options control how an image becomes a texture.
type Options struct {

	// Mipmaps generates a full mipmap chain and uses trilinear
	// minification.
	Mipmaps bool

	// FlipY flips the image vertically on load, so that the first row
	// of pixel data is the bottom of the image.
	FlipY bool

	// Repeat makes the texture tile (repeat wrap mode) instead of clamping.
	Repeat bool
}

// DefaultOptions returns the options used for the room textures:
// mipmapped, flipped and tileable.
func DefaultOptions() Options {
	return Options{Mipmaps: true, FlipY: true, Repeat: true}
}

// ErrNotImage is returned when the file content is not a supported image.
var ErrNotImage = errors.New("not a supported image")

// headerSize is how much of the file filetype needs to identify it.
const headerSize = 262

// Open reads and decodes the image file at the given path.
func Open(path string, opts Options) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Read decodes an image from the given reader into RGBA, applying opts.
// The format is sniffed from the content; png, jpeg, gif, bmp, tiff and
// webp are supported.
func Read(r io.Reader, opts Options) (*image.RGBA, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	head := data[:min(len(data), headerSize)]
	if !filetype.IsImage(head) {
		kind, _ := filetype.Match(head)
		if kind == filetype.Unknown {
			return nil, fmt.Errorf("%w: unknown file type", ErrNotImage)
		}
		return nil, fmt.Errorf("%w: detected %s", ErrNotImage, kind.MIME.Value)
	}
	im, _, err := imagex.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	if opts.FlipY {
		return transform.FlipV(im), nil
	}
	return imagex.AsRGBA(im), nil
}

// Uploader creates and deletes GPU textures.
type Uploader interface {

	// Upload creates a texture from the given pixels. The first row of
	// img is the first row of texture data.
	Upload(img *image.RGBA, opts Options) (Handle, error)

	// Delete releases the given texture. Deleting [None] does nothing.
	Delete(h Handle)
}

// Load opens the image at path and uploads it. On any failure it returns
// [None] together with the error, so callers can keep rendering untextured.
func Load(u Uploader, path string, opts Options) (Handle, error) {
	img, err := Open(path, opts)
	if err != nil {
		return None, err
	}
	h, err := u.Upload(img, opts)
	if err != nil {
		return None, fmt.Errorf("%s: uploading: %w", path, err)
	}
	return h, nil
}
