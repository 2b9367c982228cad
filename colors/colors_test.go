// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestChannels(t *testing.T) {
	c := ARGB(0x80FF4020)
	assert.Equal(t, uint8(0x80), c.A())
	assert.Equal(t, uint8(0xFF), c.R())
	assert.Equal(t, uint8(0x40), c.G())
	assert.Equal(t, uint8(0x20), c.B())
	assert.Equal(t, float32(128), c.Alpha())
	assert.Equal(t, c, FromRGBA(0xFF, 0x40, 0x20, 0x80))
	assert.Equal(t, ARGB(0xFFFF4020), c.WithAlpha(255))

	r, g, b := c.Float()
	assert.Equal(t, 1.0, r)
	assert.InDelta(t, 0.25098, g, 1e-5)
	assert.InDelta(t, 0.12549, b, 1e-5)
}

func TestFromFloat(t *testing.T) {
	assert.Equal(t, ARGB(0xFF808080), FromFloat(0.5, 0.5, 0.5, 255))
	assert.Equal(t, ARGB(0x00FF0000), FromFloat(1.2, -0.1, 0, -3))
	assert.Equal(t, ARGB(0x80000000), FromFloat(0, 0, 0, 127.5))
	assert.Equal(t, Black, FromFloat(0, 0, 0, 255))
}

func TestColorInterface(t *testing.T) {
	var c color.Color = ARGB(0x80FF0000)
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0x8080), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0x8080), a)

	assert.Equal(t, ARGB(0x80FF0000), FromColor(color.NRGBA{0xFF, 0, 0, 0x80}))
	assert.Equal(t, ARGB(0xFF00FF00), FromColor(color.RGBA{0, 0xFF, 0, 0xFF}))
	assert.Equal(t, color.NRGBA{1, 2, 3, 4}, FromRGBA(1, 2, 3, 4).NRGBA())
}

func TestFromName(t *testing.T) {
	c, err := FromName("red")
	require.NoError(t, err)
	assert.Equal(t, ARGB(0xFFFF0000), c)

	c, err = FromName("CornflowerBlue")
	require.NoError(t, err)
	assert.Equal(t, ARGB(0xFF6495ED), c)

	c, err = FromName("transparent")
	require.NoError(t, err)
	assert.Equal(t, Transparent, c)

	_, err = FromName("notacolor")
	assert.Error(t, err)
}

func TestFromHex(t *testing.T) {
	c, err := FromHex("#00ff00")
	require.NoError(t, err)
	assert.Equal(t, ARGB(0xFF00FF00), c)

	c, err = FromHex("#f0a")
	require.NoError(t, err)
	assert.Equal(t, ARGB(0xFFFF00AA), c)

	c, err = FromHex("#11223344")
	require.NoError(t, err)
	assert.Equal(t, ARGB(0x44112233), c)

	_, err = FromHex("#zz0000")
	assert.Error(t, err)
	_, err = FromHex("#112233zz")
	assert.Error(t, err)
	_, err = FromHex("112233")
	assert.Error(t, err)
}

func TestFromString(t *testing.T) {
	c, err := FromString(" 0x80ABCDEF ")
	require.NoError(t, err)
	assert.Equal(t, ARGB(0x80ABCDEF), c)

	c, err = FromString("#abcdef")
	require.NoError(t, err)
	assert.Equal(t, ARGB(0xFFABCDEF), c)

	c, err = FromString("navy")
	require.NoError(t, err)
	assert.Equal(t, ARGB(0xFF000080), c)

	_, err = FromString("0xnope")
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	assert.Equal(t, "#ff0000", ARGB(0xFFFF0000).String())
	assert.Equal(t, "#11223344", ARGB(0x44112233).String())
}

func TestText(t *testing.T) {
	type palette struct {
		Colors []ARGB
	}
	var p palette
	require.NoError(t, yaml.Unmarshal([]byte("colors: [red, '#0000ff', '0x80ffffff']\n"), &p))
	assert.Equal(t, []ARGB{0xFFFF0000, 0xFF0000FF, 0x80FFFFFF}, p.Colors)

	b, err := yaml.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), "'#ff0000'")

	assert.Error(t, yaml.Unmarshal([]byte("colors: [nope]\n"), &p))
}
