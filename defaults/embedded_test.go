// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package defaults_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/surfacestyle/defaults"
	"github.com/framegrace/surfacestyle/registry"
)

func TestStyleFileMatchesBuiltins(t *testing.T) {
	doc, err := registry.ParseDocument(defaults.StyleFile(), registry.FormatJSON)
	require.NoError(t, err)

	builtin := registry.New().Export()
	assert.Equal(t, builtin, doc)
}

func TestStyleFileReturnsCopy(t *testing.T) {
	a := defaults.StyleFile()
	a[0] = 'x'
	assert.Equal(t, byte('{'), defaults.StyleFile()[0])
}
