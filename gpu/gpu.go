// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu implements the room render backend on OpenGL 4.1 core.
// All calls must be made on the thread that owns the current context.
package gpu

import (
	"fmt"
	"image"
	"log/slog"
	"strings"

	"cogentcore.org/room/room"
	"cogentcore.org/room/shape"
	"cogentcore.org/room/texture"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Light is a positional light with color material reflectance.
type Light struct {

	// Pos is the light position in eye coordinates.
	Pos mgl32.Vec3

	// Ambient and Diffuse are the light intensities.
	Ambient, Diffuse mgl32.Vec3

	// SceneAmbient is added to every surface regardless of the light.
	SceneAmbient mgl32.Vec3
}

// DefaultLight is the room light: a white light up and to the right of
// the viewer.
var DefaultLight = Light{
	Pos:          mgl32.Vec3{5, 5, 5},
	Ambient:      mgl32.Vec3{0.2, 0.2, 0.2},
	Diffuse:      mgl32.Vec3{0.8, 0.8, 0.8},
	SceneAmbient: mgl32.Vec3{0.2, 0.2, 0.2},
}

// ClearColor is the background color.
var ClearColor = mgl32.Vec4{0.2, 0.3, 0.4, 1}

// DepthFunc is the depth comparison. With LESS, the first of two
// coplanar faces drawn wins.
var DepthFunc uint32 = gl.LESS

// vertexArray is the GPU copy of one batch mesh.
type vertexArray struct {
	vao, vbo uint32
	n        int32
}

// Backend draws room batches with a single shader program.
type Backend struct {

	// Light is the scene light.
	Light Light

	// Swap presents the back buffer, typically the window's SwapBuffers.
	Swap func()

	program   uint32
	uniforms  map[string]int32
	arrays    map[*room.Batch]*vertexArray
	lineRange [2]float32
}

// NewBackend returns a backend that presents frames with swap.
// [Backend.Init] must be called once the context is current.
func NewBackend(swap func()) *Backend {
	return &Backend{
		Light:  DefaultLight,
		Swap:   swap,
		arrays: map[*room.Batch]*vertexArray{},
	}
}

// Init loads the OpenGL functions, builds the shader program and sets
// the fixed pipeline state.
func (b *Backend) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("initializing OpenGL: %w", err)
	}
	slog.Info("OpenGL", "version", gl.GoStr(gl.GetString(gl.VERSION)), "renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	prog, err := newProgram(vertexShader, fragmentShader)
	if err != nil {
		return err
	}
	b.program = prog
	b.uniforms = map[string]int32{}
	for _, nm := range []string{"projection", "modelView", "normalMatrix", "lightPos", "lightAmbient", "lightDiffuse", "sceneAmbient", "useTexture", "tex"} {
		b.uniforms[nm] = gl.GetUniformLocation(prog, gl.Str(nm+"\x00"))
	}

	var rng [2]float32
	var flags int32
	gl.GetFloatv(gl.ALIASED_LINE_WIDTH_RANGE, &rng[0])
	gl.GetIntegerv(gl.CONTEXT_FLAGS, &flags)
	b.lineRange = LineWidthRange(rng, flags)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(DepthFunc)
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	return nil
}

func newProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("linking program: %v", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compiling: %v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

// Viewport sets the drawable area.
func (b *Backend) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears the color and depth buffers to [ClearColor].
func (b *Backend) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Present swaps the buffers.
func (b *Backend) Present() {
	if b.Swap != nil {
		b.Swap()
	}
}

// Draw draws one batch, uploading its mesh the first time it is seen.
func (b *Backend) Draw(bt *room.Batch, proj, modelView mgl32.Mat4, tex texture.Handle) {
	va := b.arrays[bt]
	if va == nil {
		va = upload(bt.Mesh)
		b.arrays[bt] = va
	}
	nm := NormalMatrix(modelView)

	gl.UseProgram(b.program)
	gl.UniformMatrix4fv(b.uniforms["projection"], 1, false, &proj[0])
	gl.UniformMatrix4fv(b.uniforms["modelView"], 1, false, &modelView[0])
	gl.UniformMatrix3fv(b.uniforms["normalMatrix"], 1, false, &nm[0])
	gl.Uniform3fv(b.uniforms["lightPos"], 1, &b.Light.Pos[0])
	gl.Uniform3fv(b.uniforms["lightAmbient"], 1, &b.Light.Ambient[0])
	gl.Uniform3fv(b.uniforms["lightDiffuse"], 1, &b.Light.Diffuse[0])
	gl.Uniform3fv(b.uniforms["sceneAmbient"], 1, &b.Light.SceneAmbient[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
	gl.Uniform1i(b.uniforms["tex"], 0)
	useTex := int32(0)
	if tex != texture.None {
		useTex = 1
	}
	gl.Uniform1i(b.uniforms["useTexture"], useTex)

	if bt.Primitive == room.Lines {
		gl.LineWidth(ClampLineWidth(bt.LineWidth, b.lineRange))
	}
	gl.BindVertexArray(va.vao)
	gl.DrawArrays(Primitive(bt.Primitive), 0, va.n)
	gl.BindVertexArray(0)
}

func upload(ms *shape.Mesh) *vertexArray {
	va := &vertexArray{n: int32(ms.Len())}
	data := ms.Floats()
	gl.GenVertexArrays(1, &va.vao)
	gl.GenBuffers(1, &va.vbo)
	gl.BindVertexArray(va.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, va.vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}

	attrib := func(loc uint32, size int32, offset int) {
		gl.VertexAttribPointer(loc, size, gl.FLOAT, false, shape.Stride, gl.PtrOffset(offset))
		gl.EnableVertexAttribArray(loc)
	}
	attrib(posLoc, 3, shape.PosOffset)
	attrib(normalLoc, 3, shape.NormalOffset)
	attrib(uvLoc, 2, shape.UVOffset)
	attrib(colorLoc, 4, shape.ColorOffset)
	gl.BindVertexArray(0)
	return va
}

// Upload creates a texture from the given pixels.
func (b *Backend) Upload(img *image.RGBA, opts texture.Options) (texture.Handle, error) {
	sz := img.Bounds().Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return texture.None, fmt.Errorf("empty image %v", sz)
	}
	drainErrors()
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, WrapMode(opts))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, WrapMode(opts))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, MinFilter(opts))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(sz.X), int32(sz.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	if opts.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &id)
		return texture.None, fmt.Errorf("OpenGL error 0x%x", code)
	}
	return texture.Handle(id), nil
}

// Delete releases a texture created by [Backend.Upload].
func (b *Backend) Delete(h texture.Handle) {
	if h == texture.None {
		return
	}
	id := uint32(h)
	gl.DeleteTextures(1, &id)
}

// Release frees the shader program and all uploaded meshes.
func (b *Backend) Release() {
	for bt, va := range b.arrays {
		gl.DeleteVertexArrays(1, &va.vao)
		gl.DeleteBuffers(1, &va.vbo)
		delete(b.arrays, bt)
	}
	if b.program != 0 {
		gl.DeleteProgram(b.program)
		b.program = 0
	}
}

// NormalMatrix returns the matrix that transforms normals for the given
// model-view: the inverse transpose of its upper 3x3.
func NormalMatrix(modelView mgl32.Mat4) mgl32.Mat3 {
	return modelView.Mat3().Inv().Transpose()
}

// drainErrors clears errors left by earlier calls, so that the next
// GetError reports only what follows.
func drainErrors() {
	for range 16 {
		if gl.GetError() == gl.NO_ERROR {
			return
		}
	}
}

// LineWidthRange returns the usable line widths given the queried
// ALIASED_LINE_WIDTH_RANGE and the CONTEXT_FLAGS of the context.
// Forward-compatible contexts reject widths above 1 whatever range
// they report.
func LineWidthRange(queried [2]float32, contextFlags int32) [2]float32 {
	if contextFlags&gl.CONTEXT_FLAG_FORWARD_COMPATIBLE_BIT != 0 {
		return [2]float32{1, 1}
	}
	return queried
}

// ClampLineWidth limits w to the supported range. A zero range, as
// before the range is queried, only enforces the lower bound of 1.
func ClampLineWidth(w float32, rng [2]float32) float32 {
	w = max(w, 1, rng[0])
	if rng[1] > 0 {
		w = min(w, rng[1])
	}
	return w
}

// Primitive returns the OpenGL draw mode for p.
func Primitive(p room.Primitive) uint32 {
	if p == room.Lines {
		return gl.LINES
	}
	return gl.TRIANGLES
}

// WrapMode returns the texture wrap parameter for opts.
func WrapMode(opts texture.Options) int32 {
	if opts.Repeat {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

// MinFilter returns the minification filter for opts.
func MinFilter(opts texture.Options) int32 {
	if opts.Mipmaps {
		return gl.LINEAR_MIPMAP_LINEAR
	}
	return gl.LINEAR
}
