// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: style/descriptor.go
// Summary: Surface style descriptor with optional visual attributes.
// Usage: Descriptors are shared by pointer; edits are visible to every holder.

package style

import (
	"fmt"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// Fields holds the optional attributes of a descriptor.
// A nil pointer means the attribute is unset, which is distinct from a zero value.
type Fields struct {
	Diffuse      *colorful.Color
	Specular     *colorful.Color
	Specularity  *float64 // specular exponent
	Transparency *float64
}

// clone returns a copy that shares no pointers with f.
func (f Fields) clone() Fields {
	var out Fields
	if f.Diffuse != nil {
		c := *f.Diffuse
		out.Diffuse = &c
	}
	if f.Specular != nil {
		c := *f.Specular
		out.Specular = &c
	}
	if f.Specularity != nil {
		v := *f.Specularity
		out.Specularity = &v
	}
	if f.Transparency != nil {
		v := *f.Transparency
		out.Transparency = &v
	}
	return out
}

// IsZero reports whether no attribute is set.
func (f Fields) IsZero() bool {
	return f.Diffuse == nil && f.Specular == nil && f.Specularity == nil && f.Transparency == nil
}

// Descriptor is a named bundle of surface attributes.
// The name is fixed at creation; attributes may be edited concurrently.
type Descriptor struct {
	name string

	mu     sync.RWMutex
	fields Fields
}

// New creates a descriptor with no attributes set.
func New(name string) *Descriptor {
	return &Descriptor{name: name}
}

// NewWithFields creates a descriptor holding a copy of f.
func NewWithFields(name string, f Fields) *Descriptor {
	return &Descriptor{name: name, fields: f.clone()}
}

// Name returns the category name the descriptor was created for.
func (d *Descriptor) Name() string {
	return d.name
}

// Fields returns a snapshot of the attributes.
func (d *Descriptor) Fields() Fields {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.fields.clone()
}

// Edit applies fn to the attributes under a single write lock.
func (d *Descriptor) Edit(fn func(f *Fields)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(&d.fields)
}

// Clone returns an independent descriptor with the same attributes under a new name.
func (d *Descriptor) Clone(name string) *Descriptor {
	return NewWithFields(name, d.Fields())
}

// Diffuse returns the diffuse color and whether it is set.
func (d *Descriptor) Diffuse() (colorful.Color, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.fields.Diffuse == nil {
		return colorful.Color{}, false
	}
	return *d.fields.Diffuse, true
}

// SetDiffuse sets the diffuse color.
func (d *Descriptor) SetDiffuse(c colorful.Color) {
	d.Edit(func(f *Fields) { f.Diffuse = &c })
}

// ClearDiffuse unsets the diffuse color.
func (d *Descriptor) ClearDiffuse() {
	d.Edit(func(f *Fields) { f.Diffuse = nil })
}

// Specular returns the specular color and whether it is set.
func (d *Descriptor) Specular() (colorful.Color, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.fields.Specular == nil {
		return colorful.Color{}, false
	}
	return *d.fields.Specular, true
}

// SetSpecular sets the specular color.
func (d *Descriptor) SetSpecular(c colorful.Color) {
	d.Edit(func(f *Fields) { f.Specular = &c })
}

// ClearSpecular unsets the specular color.
func (d *Descriptor) ClearSpecular() {
	d.Edit(func(f *Fields) { f.Specular = nil })
}

// Specularity returns the specular exponent and whether it is set.
func (d *Descriptor) Specularity() (float64, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.fields.Specularity == nil {
		return 0, false
	}
	return *d.fields.Specularity, true
}

// SetSpecularity sets the specular exponent directly.
func (d *Descriptor) SetSpecularity(exp float64) {
	d.Edit(func(f *Fields) { f.Specularity = &exp })
}

// SetRoughness stores the specular exponent derived from a roughness value.
// Roughness must be positive.
func (d *Descriptor) SetRoughness(roughness float64) error {
	if roughness <= 0 {
		return fmt.Errorf("specular roughness must be positive, got %v", roughness)
	}
	d.SetSpecularity(1.0 / roughness)
	return nil
}

// ClearSpecularity unsets the specular exponent.
func (d *Descriptor) ClearSpecularity() {
	d.Edit(func(f *Fields) { f.Specularity = nil })
}

// Transparency returns the transparency and whether it is set.
func (d *Descriptor) Transparency() (float64, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.fields.Transparency == nil {
		return 0, false
	}
	return *d.fields.Transparency, true
}

// SetTransparency sets the transparency.
func (d *Descriptor) SetTransparency(t float64) {
	d.Edit(func(f *Fields) { f.Transparency = &t })
}

// ClearTransparency unsets the transparency.
func (d *Descriptor) ClearTransparency() {
	d.Edit(func(f *Fields) { f.Transparency = nil })
}

func (d *Descriptor) String() string {
	f := d.Fields()
	var parts []string
	if f.Diffuse != nil {
		parts = append(parts, "diffuse="+formatColor(*f.Diffuse))
	}
	if f.Specular != nil {
		parts = append(parts, "specular="+formatColor(*f.Specular))
	}
	if f.Specularity != nil {
		parts = append(parts, fmt.Sprintf("specularity=%g", *f.Specularity))
	}
	if f.Transparency != nil {
		parts = append(parts, fmt.Sprintf("transparency=%g", *f.Transparency))
	}
	return d.name + "{" + strings.Join(parts, " ") + "}"
}

func formatColor(c colorful.Color) string {
	return fmt.Sprintf("(%g, %g, %g)", c.R, c.G, c.B)
}
