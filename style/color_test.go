// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package style

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor_AbsentInput(t *testing.T) {
	t.Parallel()

	for _, in := range [][]float64{nil, {}} {
		c, ok, err := ParseColor(in)
		require.NoError(t, err)
		assert.False(t, ok, "empty input must be absent")
		assert.Equal(t, colorful.Color{}, c)
	}
}

func TestParseColor_ThreeValues(t *testing.T) {
	t.Parallel()

	c, ok, err := ParseColor([]float64{0.1, 0.2, 0.3})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, colorful.Color{R: 0.1, G: 0.2, B: 0.3}, c)
}

func TestParseColor_NoClamping(t *testing.T) {
	t.Parallel()

	c, ok, err := ParseColor([]float64{1, 2, -3})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, colorful.Color{R: 1, G: 2, B: -3}, c)
}

func TestParseColor_WrongLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []float64
		msg    string
	}{
		{"one", []float64{0.5}, "was 1"},
		{"two", []float64{0.5, 0.5}, "was 2"},
		{"four", []float64{1, 2, 3, 4}, "over 3 elements"},
		{"many", []float64{1, 2, 3, 4, 5, 6}, "over 3 elements"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, ok, err := ParseColor(tt.values)
			require.ErrorIs(t, err, ErrMalformedColor)
			assert.False(t, ok)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestRGB_RoundTripsParseColor(t *testing.T) {
	t.Parallel()

	in := colorful.Color{R: 0.65, G: 0.75, B: 0.8}
	out, ok, err := ParseColor(RGB(in))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)
}
