// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heightmap loads elevation images and uses them to displace
// sphere meshes along their normals, for a height-mapped planet surface.
package heightmap

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	// image formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"cogentcore.org/cubesphere/base/errors"
	"cogentcore.org/cubesphere/math32"
	"cogentcore.org/cubesphere/shape"
	"github.com/anthonynsimon/bild/blur"
	"github.com/h2non/filetype"
	"golang.org/x/image/draw"
)

// ErrNotImage is returned when the elevation data is not an image.
var ErrNotImage = errors.New("heightmap: not an image")

// Options control how an elevation image is turned into a [Map].
type Options struct {

	// Width and Height resample the image to the given size
	// when both are > 0. Otherwise the image size is kept.
	Width, Height int

	// Blur is the radius in pixels of a Gaussian blur applied after
	// resampling, to soften terracing in 8-bit elevation data.
	// 0 disables it.
	Blur float64
}

// Map is a grid of heights in [0, 1], laid out in equirectangular
// projection: x wraps around the sphere and y runs from the north pole
// at 0 to the south pole at Height-1.
type Map struct {
	Width  int
	Height int

	// Values holds Width*Height heights in row-major order.
	Values []float32
}

// Open decodes the elevation image in the given file.
func Open(filename string, opts Options) (*Map, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("heightmap %q: %w", filename, err)
	}
	return m, nil
}

// Read decodes an elevation image (png, jpeg, gif, bmp, tiff or webp).
func Read(r io.Reader, opts Options) (*Map, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(262)
	if !filetype.IsImage(head) {
		return nil, ErrNotImage
	}
	img, _, err := image.Decode(br)
	if err != nil {
		return nil, err
	}
	return FromImage(img, opts), nil
}

// FromImage converts the luminance of the given image into a [Map].
func FromImage(img image.Image, opts Options) *Map {
	src := img
	if opts.Width > 0 && opts.Height > 0 {
		dst := image.NewRGBA64(image.Rect(0, 0, opts.Width, opts.Height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		src = dst
	}
	if opts.Blur > 0 {
		src = blur.Gaussian(src, opts.Blur)
	}
	bounds := src.Bounds()
	gray := image.NewGray16(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(gray, gray.Bounds(), src, bounds.Min, draw.Src)

	m := &Map{Width: bounds.Dx(), Height: bounds.Dy()}
	m.Values = make([]float32, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			m.Values[y*m.Width+x] = float32(gray.Gray16At(x, y).Y) / 0xffff
		}
	}
	return m
}

// At returns the height at the given pixel. x wraps around
// horizontally and y is clamped to the poles.
func (m *Map) At(x, y int) float32 {
	if m.Width == 0 || m.Height == 0 {
		return 0
	}
	x %= m.Width
	if x < 0 {
		x += m.Width
	}
	y = min(max(y, 0), m.Height-1)
	return m.Values[y*m.Width+x]
}

// Sample returns the bilinearly interpolated height at the given
// texture coordinates, with u in [0, 1] around the sphere and
// v in [0, 1] from north to south.
func (m *Map) Sample(u, v float32) float32 {
	px := u*float32(m.Width) - 0.5
	py := v*float32(m.Height) - 0.5
	x0 := math32.Floor(px)
	y0 := math32.Floor(py)
	fx := px - x0
	fy := py - y0
	ix, iy := int(x0), int(y0)
	top := math32.Lerp(m.At(ix, iy), m.At(ix+1, iy), fx)
	bot := math32.Lerp(m.At(ix, iy+1), m.At(ix+1, iy+1), fx)
	return math32.Lerp(top, bot, fy)
}

// SampleDir returns the height in the direction of the given point
// from the sphere center. See [shape.SphereUV].
func (m *Map) SampleDir(p math32.Vector3) float32 {
	return m.Sample(shape.SphereUV(p))
}

// Displace returns copies of the given meshes with every vertex moved
// along its direction from the origin to radius 1 + scale*height.
// Indices are copied unchanged and the inputs are not modified.
func Displace(meshes []*shape.Mesh, m *Map, scale float32) []*shape.Mesh {
	out := make([]*shape.Mesh, len(meshes))
	for i, ms := range meshes {
		dm := ms.Clone()
		for j, v := range dm.Vertices {
			dir := v.Normal()
			dm.Vertices[j] = dir.MulScalar(1 + scale*m.SampleDir(dir))
		}
		out[i] = dm
	}
	return out
}
