// Package color provides named RGBA colors as float32 4-vectors with
// components in [0, 1], and conversions to hex strings and image/color.
//
//	c, _ := color.Named("orange") // (1, 0.64705884, 0, 1)
//	n := color.ToNRGBA(c)         // color.NRGBA{255, 165, 0, 255}
package color
