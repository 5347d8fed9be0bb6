// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/surfacestyle/registry"
	"github.com/framegrace/surfacestyle/style"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "styles.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func ptr(v float64) *float64 { return &v }

func TestOpen_Empty(t *testing.T) {
	s := openTemp(t)

	doc, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, doc)

	at, count, err := s.SavedAt()
	require.NoError(t, err)
	assert.True(t, at.IsZero())
	assert.Zero(t, count)
}

func TestSaveLoad(t *testing.T) {
	s := openTemp(t)

	doc := registry.Document{
		"IfcWindow": {Diffuse: []float64{0.75, 0.8, 0.75}, Transparency: ptr(0.3)},
		"IfcSlab":   {Diffuse: []float64{0.4, 0.4, 0.4}, Specular: []float64{1, 1, 1}, SpecularRoughness: ptr(0.5)},
		"IfcSpace":  {},
	}
	before := time.Now()
	require.NoError(t, s.Save(doc))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, doc["IfcWindow"].Diffuse, got["IfcWindow"].Diffuse)
	assert.Nil(t, got["IfcWindow"].Specular)
	assert.Equal(t, doc, got)

	at, count, err := s.SavedAt()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.False(t, at.Before(before.Add(-time.Second)))
}

func TestSave_ReplacesSnapshot(t *testing.T) {
	s := openTemp(t)

	require.NoError(t, s.Save(registry.Document{
		"IfcWall": {Diffuse: []float64{0.8, 0.8, 0.8}},
		"IfcRoof": {Diffuse: []float64{0.5, 0.5, 0.5}},
	}))
	require.NoError(t, s.Save(registry.Document{
		"IfcDoor": {Diffuse: []float64{0.55, 0.3, 0.15}},
	}))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Contains(t, got, "IfcDoor")
}

func TestSave_MalformedColorKeepsPrevious(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.Save(registry.Document{"IfcWall": {Diffuse: []float64{0.8, 0.8, 0.8}}}))

	err := s.Save(registry.Document{"IfcBeam": {Diffuse: []float64{0.1, 0.2}}})
	require.ErrorIs(t, err, style.ErrMalformedColor)
	assert.Contains(t, err.Error(), `"IfcBeam"`)

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, registry.Document{"IfcWall": {Diffuse: []float64{0.8, 0.8, 0.8}}}, got)
}

func TestRegistryRoundTrip(t *testing.T) {
	s := openTemp(t)

	src := registry.New()
	require.NoError(t, s.Save(src.Export()))

	doc, err := s.Load()
	require.NoError(t, err)

	dst := registry.New(registry.WithLegacyDefaults())
	require.NoError(t, dst.Apply(doc))
	assert.Equal(t, src.Names(), dst.Names())
	assert.Equal(t, src.Lookup("IfcSpace").Fields(), dst.Lookup("IfcSpace").Fields())
	assert.Equal(t, src.Fallback().Fields(), dst.Fallback().Fields())
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(registry.Document{"IfcStair": {Diffuse: []float64{0.6, 0.6, 0.6}}}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, path, s.Path())

	got, err := s.Load()
	require.NoError(t, err)
	assert.Contains(t, got, "IfcStair")
}
