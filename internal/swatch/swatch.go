// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/swatch/swatch.go
// Summary: Terminal previews of surface styles.
// Usage: TcellStyle feeds cell based renderers; Render produces a lipgloss block.

package swatch

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/framegrace/surfacestyle/style"
)

var (
	black = colorful.Color{R: 0, G: 0, B: 0}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

// Opacity returns 1 - transparency clamped to [0, 1]. Unset transparency is opaque.
func Opacity(d *style.Descriptor) float64 {
	t, ok := d.Transparency()
	if !ok {
		return 1
	}
	switch {
	case t <= 0:
		return 1
	case t >= 1:
		return 0
	}
	return 1 - t
}

// Surface returns the diffuse color of d composited over bg.
// ok is false when d has no diffuse color.
func Surface(d *style.Descriptor, bg colorful.Color) (colorful.Color, bool) {
	diffuse, ok := d.Diffuse()
	if !ok {
		return colorful.Color{}, false
	}
	// result = bg * (1 - opacity) + diffuse * opacity
	return bg.BlendRgb(diffuse.Clamped(), Opacity(d)), true
}

// Contrast picks black or white, whichever reads better on c.
func Contrast(c colorful.Color) colorful.Color {
	l, _, _ := c.Clamped().Lab()
	if l > 0.5 {
		return black
	}
	return white
}

// Hex returns the diffuse color of d as #rrggbb.
func Hex(d *style.Descriptor) (string, bool) {
	diffuse, ok := d.Diffuse()
	if !ok {
		return "", false
	}
	return diffuse.Clamped().Hex(), true
}

// TcellColor converts c to a true color tcell value.
func TcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// TcellStyle returns a cell style that previews d over a black background.
// Descriptors without a diffuse color map to the terminal default.
func TcellStyle(d *style.Descriptor) tcell.Style {
	surface, ok := Surface(d, black)
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.
		Background(TcellColor(surface)).
		Foreground(TcellColor(Contrast(surface)))
}

// Render returns a block of width cells filled with the composited diffuse color.
func Render(d *style.Descriptor, width int) string {
	if width <= 0 {
		return ""
	}
	surface, ok := Surface(d, black)
	if !ok {
		return strings.Repeat("-", width)
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(surface.Hex())).
		Render(strings.Repeat(" ", width))
}
