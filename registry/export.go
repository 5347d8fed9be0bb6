// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/export.go
// Summary: Converts the live registry back into a style document.

package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/framegrace/surfacestyle/style"
)

// Export returns a document that reproduces the current table and fallback
// when applied. Names bound to the fallback by lookup misses are omitted.
func (r *Registry) Export() Document {
	r.ready()

	r.mu.RLock()
	defer r.mu.RUnlock()

	doc := make(Document, len(r.styles)+1)
	for name, d := range r.styles {
		if d == r.fallback {
			continue
		}
		doc[name] = entryFor(d)
	}
	doc[Wildcard] = entryFor(r.fallback)
	return doc
}

// SaveStyleFile writes Export to path, choosing the format from the extension.
func (r *Registry) SaveStyleFile(path string) error {
	data, err := r.Export().Marshal(FormatForPath(path))
	if err != nil {
		return fmt.Errorf("encode styles: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func entryFor(d *style.Descriptor) Entry {
	f := d.Fields()

	var e Entry
	if f.Diffuse != nil {
		e.Diffuse = style.RGB(*f.Diffuse)
	}
	if f.Specular != nil {
		e.Specular = style.RGB(*f.Specular)
	}
	// A non-positive exponent has no roughness form.
	if f.Specularity != nil && *f.Specularity > 0 {
		roughness := 1.0 / *f.Specularity
		e.SpecularRoughness = &roughness
	}
	if f.Transparency != nil {
		t := *f.Transparency
		e.Transparency = &t
	}
	return e
}
