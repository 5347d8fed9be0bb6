// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetGlobal() {
	globalOnce = sync.Once{}
	global = nil
}

func TestGlobal_CreatedOnce(t *testing.T) {
	resetGlobal()
	t.Cleanup(resetGlobal)

	a := Global()
	require.NotNil(t, a)
	assert.Same(t, a, Global())
}

func TestInitGlobal_BeforeFirstUse(t *testing.T) {
	resetGlobal()
	t.Cleanup(resetGlobal)

	r := New(WithLegacyDefaults())
	assert.True(t, InitGlobal(r))
	assert.Same(t, r, Global())
	assert.False(t, InitGlobal(New()), "second install must be ignored")
	assert.Same(t, r, Global())
}

func TestInitGlobal_AfterFirstUse(t *testing.T) {
	resetGlobal()
	t.Cleanup(resetGlobal)

	g := Global()
	assert.False(t, InitGlobal(New()))
	assert.False(t, InitGlobal(nil))
	assert.Same(t, g, Global())
}

func TestPackageFunctions(t *testing.T) {
	resetGlobal()
	t.Cleanup(resetGlobal)

	assert.Same(t, Global().Fallback(), GetDefaultStyle("IfcTendon"))

	_, err := UpdateDefaultStyle("IfcCovering")
	require.ErrorIs(t, err, ErrUnknownCategory)

	d, err := UpdateDefaultStyle("IfcTendon")
	require.NoError(t, err)
	assert.Same(t, GetDefaultStyle("IfcTendon"), d)

	path := writeStyleFile(t, "styles.json", `{"IfcWall": {"diffuse": [0, 0, 1]}}`)
	require.NoError(t, SetDefaultStyleFile(path))
	assert.Equal(t, []string{"IfcWall"}, Global().Names())

	err = SetDefaultStyleFile(writeStyleFile(t, "bad.json", `{"IfcWall": {"diffuse": [0, 1]}}`))
	require.ErrorIs(t, err, ErrMalformedColor)
	assert.Equal(t, []string{"IfcWall"}, Global().Names())
}
