// SPDX-License-Identifier: MIT

package color

import (
	"encoding/hex"
	"fmt"
	imgcolor "image/color"
	"math"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"

	"github.com/katalvlaran/lvlinalg/vector"
)

// RGBA is a color as (r, g, b, a), each in [0, 1].
type RGBA = vector.Vector[float32]

// named maps lower-case names to 8-bit sRGB components.
var named = map[string][4]uint8{
	"transparent": {0, 0, 0, 0},
	"black":       {0, 0, 0, 255},
	"white":       {255, 255, 255, 255},
	"red":         {255, 0, 0, 255},
	"lime":        {0, 255, 0, 255},
	"green":       {0, 128, 0, 255},
	"blue":        {0, 0, 255, 255},
	"yellow":      {255, 255, 0, 255},
	"cyan":        {0, 255, 255, 255},
	"aqua":        {0, 255, 255, 255},
	"magenta":     {255, 0, 255, 255},
	"fuchsia":     {255, 0, 255, 255},
	"silver":      {192, 192, 192, 255},
	"gray":        {128, 128, 128, 255},
	"grey":        {128, 128, 128, 255},
	"maroon":      {128, 0, 0, 255},
	"olive":       {128, 128, 0, 255},
	"purple":      {128, 0, 128, 255},
	"teal":        {0, 128, 128, 255},
	"navy":        {0, 0, 128, 255},
	"orange":      {255, 165, 0, 255},
	"pink":        {255, 192, 203, 255},
	"brown":       {165, 42, 42, 255},
	"gold":        {255, 215, 0, 255},
	"indigo":      {75, 0, 130, 255},
	"violet":      {238, 130, 238, 255},
	"coral":       {255, 127, 80, 255},
	"salmon":      {250, 128, 114, 255},
	"khaki":       {240, 230, 140, 255},
	"crimson":     {220, 20, 60, 255},
	"turquoise":   {64, 224, 208, 255},
	"chocolate":   {210, 105, 30, 255},
	"tomato":      {255, 99, 71, 255},
	"orchid":      {218, 112, 214, 255},
	"beige":       {245, 245, 220, 255},
	"ivory":       {255, 255, 240, 255},
	"lavender":    {230, 230, 250, 255},
	"skyblue":     {135, 206, 235, 255},
	"slategray":   {112, 128, 144, 255},
	"steelblue":   {70, 130, 180, 255},
}

// Named returns the color called name (case-insensitive).
func Named(name string) (RGBA, error) {
	c, ok := named[strings.ToLower(name)]
	if !ok {
		return RGBA{}, errors.Wrapf(ErrUnknownColor, "%q", name)
	}
	return fromBytes(c), nil
}

// MustNamed is Named for names known to exist; it panics otherwise.
func MustNamed(name string) RGBA {
	c, err := Named(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Names returns every known color name in lexical order.
func Names() []string {
	names := maps.Keys(named)
	sort.Strings(names)
	return names
}

// FromHex parses "#rrggbb" or "#rrggbbaa" (the leading '#' is optional).
// Alpha defaults to 1.
func FromHex(s string) (RGBA, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 && len(digits) != 8 {
		return RGBA{}, errors.Wrapf(ErrInvalidHex, "%q: want 6 or 8 digits", s)
	}
	raw, err := hex.DecodeString(digits)
	if err != nil {
		return RGBA{}, errors.Wrapf(ErrInvalidHex, "%q", s)
	}
	c := [4]uint8{raw[0], raw[1], raw[2], 255}
	if len(raw) == 4 {
		c[3] = raw[3]
	}
	return fromBytes(c), nil
}

// ToHex renders c as "#rrggbbaa".
func ToHex(c RGBA) string {
	n := ToNRGBA(c)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// ToNRGBA converts c (a 3- or 4-vector; alpha defaults to 1) to 8-bit
// non-premultiplied sRGB, clamping components to [0, 1] and rounding to
// nearest.
func ToNRGBA(c RGBA) imgcolor.NRGBA {
	a := float32(1)
	if c.Len() == 4 {
		a = c.A()
	}
	return imgcolor.NRGBA{R: to8(c.R()), G: to8(c.G()), B: to8(c.B()), A: to8(a)}
}

// FromColor converts any image/color value to an RGBA vector.
func FromColor(c imgcolor.Color) RGBA {
	n := imgcolor.NRGBAModel.Convert(c).(imgcolor.NRGBA)
	return fromBytes([4]uint8{n.R, n.G, n.B, n.A})
}

func fromBytes(c [4]uint8) RGBA {
	return vector.New(float32(c[0])/255, float32(c[1])/255, float32(c[2])/255, float32(c[3])/255)
}

func to8(x float32) uint8 {
	x = min(max(x, 0), 1)
	return uint8(math.Round(float64(x) * 255))
}
