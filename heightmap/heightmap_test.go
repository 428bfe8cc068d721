// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heightmap

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/cubesphere/math32"
	"cogentcore.org/cubesphere/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testImage returns a 4x2 gray image whose top row is black and
// bottom row is white, except for one mid gray pixel.
func testImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.SetGray(x, 1, color.Gray{Y: 255})
	}
	img.SetGray(2, 0, color.Gray{Y: 51})
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRead(t *testing.T) {
	m, err := Read(bytes.NewReader(encodePNG(t, testImage())), Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, m.Width)
	assert.Equal(t, 2, m.Height)
	require.Len(t, m.Values, 8)
	assert.Equal(t, float32(0), m.At(0, 0))
	assert.InDelta(t, 0.2, m.At(2, 0), 1e-6)
	assert.Equal(t, float32(1), m.At(3, 1))
}

func TestReadError(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("not an image")), Options{})
	assert.ErrorIs(t, err, ErrNotImage)
	// a truncated png passes the type check but fails to decode
	b := encodePNG(t, testImage())
	_, err = Read(bytes.NewReader(b[:40]), Options{})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotImage)
}

func TestOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "height.png")
	require.NoError(t, os.WriteFile(fn, encodePNG(t, testImage()), 0666))
	m, err := Open(fn, Options{Width: 8, Height: 4})
	require.NoError(t, err)
	assert.Equal(t, 8, m.Width)
	assert.Equal(t, 4, m.Height)
	for _, v := range m.Values {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}

	_, err = Open(filepath.Join(t.TempDir(), "missing.png"), Options{})
	assert.Error(t, err)
}

func TestBlur(t *testing.T) {
	m := FromImage(testImage(), Options{Blur: 1})
	assert.Equal(t, 4, m.Width)
	// blurring pulls the black row toward the white one
	assert.Greater(t, m.At(0, 0), float32(0))
	assert.Less(t, m.At(0, 1), float32(1))
}

func TestAtWrap(t *testing.T) {
	m := FromImage(testImage(), Options{})
	assert.Equal(t, m.At(2, 0), m.At(6, 0))
	assert.Equal(t, m.At(2, 0), m.At(-2, 0))
	// y clamps to the poles
	assert.Equal(t, m.At(0, 0), m.At(0, -5))
	assert.Equal(t, m.At(0, 1), m.At(0, 9))

	var empty Map
	assert.Zero(t, empty.At(1, 1))
}

func TestSample(t *testing.T) {
	m := FromImage(testImage(), Options{})
	// pixel centers return the pixel value
	assert.InDelta(t, 0.2, m.Sample(2.5/4, 0.25), 1e-6)
	assert.InDelta(t, 1, m.Sample(0.5/4, 0.75), 1e-6)
	// half way between the rows
	assert.InDelta(t, 0.5, m.Sample(0.5/4, 0.5), 1e-6)
	// half way across the seam between the last and first columns
	assert.InDelta(t, 0, m.Sample(0, 0.25), 1e-6)
}

func TestDisplace(t *testing.T) {
	m := FromImage(testImage(), Options{})
	meshes := shape.NewCubeSphere(1, 4).Sphere()
	out := Displace(meshes, m, 0.5)
	require.Len(t, out, len(meshes))
	for i, dm := range out {
		assert.Equal(t, meshes[i].Indices, dm.Indices)
		for j, v := range dm.Vertices {
			// inputs stay on the unit sphere
			assert.InDelta(t, 1, meshes[i].Vertices[j].Length(), 1e-5)
			l := v.Length()
			assert.GreaterOrEqual(t, l, float32(1-1e-5))
			assert.LessOrEqual(t, l, float32(1.5+1e-5))
			assert.InDelta(t, 1+0.5*m.SampleDir(v), l, 1e-5)
		}
	}
	// the north pole samples the top row at u = 0.5, between
	// the black pixel 1 and the 0.2 gray pixel 2; the south pole is white
	poles := Displace([]*shape.Mesh{{Vertices: []math32.Vector3{math32.Vector3Up(), math32.Vector3Down()}}}, m, 1)[0]
	assert.InDelta(t, 1.1, poles.Vertices[0].Length(), 1e-5)
	assert.InDelta(t, 2, poles.Vertices[1].Length(), 1e-5)
}
