// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package swatch

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/surfacestyle/style"
)

func TestOpacity(t *testing.T) {
	d := style.New("IfcWindow")
	assert.Equal(t, 1.0, Opacity(d))

	d.SetTransparency(0.3)
	assert.InDelta(t, 0.7, Opacity(d), 1e-12)

	d.SetTransparency(-1)
	assert.Equal(t, 1.0, Opacity(d))
	d.SetTransparency(2)
	assert.Equal(t, 0.0, Opacity(d))
}

func TestSurface(t *testing.T) {
	d := style.New("IfcWall")
	_, ok := Surface(d, black)
	assert.False(t, ok)

	d.SetDiffuse(colorful.Color{R: 1, G: 1, B: 1})
	c, ok := Surface(d, black)
	require.True(t, ok)
	assert.Equal(t, white, c)

	d.SetTransparency(0.5)
	c, _ = Surface(d, black)
	assert.InDelta(t, 0.5, c.R, 1e-12)

	d.SetTransparency(1)
	c, _ = Surface(d, black)
	assert.InDelta(t, 0.0, c.G, 1e-12)
}

func TestContrast(t *testing.T) {
	assert.Equal(t, black, Contrast(colorful.Color{R: 0.9, G: 0.9, B: 0.9}))
	assert.Equal(t, white, Contrast(colorful.Color{R: 0.1, G: 0.1, B: 0.2}))
}

func TestHex(t *testing.T) {
	d := style.New("IfcDoor")
	_, ok := Hex(d)
	assert.False(t, ok)

	d.SetDiffuse(colorful.Color{R: 1, G: 0, B: 0.5})
	hex, ok := Hex(d)
	require.True(t, ok)
	assert.Equal(t, "#ff0080", hex)

	d.SetDiffuse(colorful.Color{R: 2, G: -1, B: 0})
	hex, _ = Hex(d)
	assert.Equal(t, "#ff0000", hex, "out of range channels are clamped for display")
}

func TestTcellStyle(t *testing.T) {
	d := style.New("IfcSlab")
	assert.Equal(t, tcell.StyleDefault, TcellStyle(d))

	d.SetDiffuse(colorful.Color{R: 1, G: 1, B: 1})
	fg, bg, _ := TcellStyle(d).Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), bg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), fg)
}

func TestRender(t *testing.T) {
	d := style.New("IfcPlate")
	assert.Equal(t, "", Render(d, 0))
	assert.Equal(t, "----", Render(d, 4))

	d.SetDiffuse(colorful.Color{R: 0.8, G: 0.8, B: 0.8})
	assert.Equal(t, 6, lipgloss.Width(Render(d, 6)))
}
