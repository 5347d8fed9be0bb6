// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: style/color.go
// Summary: Validates and converts RGB lists from style documents.

package style

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrMalformedColor reports an RGB list that does not hold exactly three values.
var ErrMalformedColor = errors.New("malformed color")

// ParseColor converts an RGB list into a color.
// A nil or empty list means the color is absent and returns ok=false with no error.
// Values are taken as-is; no clamping is applied.
func ParseColor(values []float64) (c colorful.Color, ok bool, err error) {
	if len(values) == 0 {
		return colorful.Color{}, false, nil
	}

	var rgb [3]float64
	n := 0
	for _, v := range values {
		if n >= len(rgb) {
			return colorful.Color{}, false, fmt.Errorf("%w: rgb array over 3 elements large", ErrMalformedColor)
		}
		rgb[n] = v
		n++
	}
	if n != len(rgb) {
		return colorful.Color{}, false, fmt.Errorf("%w: rgb array less than 3 elements large (was %d)", ErrMalformedColor, n)
	}
	return colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, true, nil
}

// RGB returns the channels of c as a three element list, the inverse of ParseColor.
func RGB(c colorful.Color) []float64 {
	return []float64{c.R, c.G, c.B}
}
