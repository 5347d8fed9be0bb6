// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/document.go
// Summary: Style document format and wholesale registry reconfiguration.
// Usage: A document maps category names to entries; "*" replaces the fallback.

package registry

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/framegrace/surfacestyle/style"
)

// Format selects the encoding of a style document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the document format from a file extension.
// Anything other than .yaml or .yml is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Entry describes one category in a style document. All fields are optional.
type Entry struct {
	Diffuse           []float64 `json:"diffuse,omitempty" yaml:"diffuse,omitempty,flow"`
	Specular          []float64 `json:"specular,omitempty" yaml:"specular,omitempty,flow"`
	SpecularRoughness *float64  `json:"specular-roughness,omitempty" yaml:"specular-roughness,omitempty"`
	Transparency      *float64  `json:"transparency,omitempty" yaml:"transparency,omitempty"`
}

// Document maps category names (or Wildcard) to entries.
type Document map[string]Entry

// ParseDocument decodes a style document.
func ParseDocument(data []byte, format Format) (Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}
	if doc == nil {
		doc = make(Document)
	}
	return doc, nil
}

// ReadDocument reads and decodes the style document at path.
func ReadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrConfigParse, path, err)
	}
	return ParseDocument(data, FormatForPath(path))
}

// Marshal encodes the document in the given format.
func (doc Document) Marshal(format Format) ([]byte, error) {
	if format == FormatYAML {
		return yaml.Marshal(doc)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// build converts the document into a new table. The Wildcard entry, if
// present, is returned as the fallback and left out of the table.
func (doc Document) build() (map[string]*style.Descriptor, *style.Descriptor, error) {
	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)

	styles := make(map[string]*style.Descriptor, len(doc))
	for _, name := range names {
		d, err := doc[name].descriptor(name)
		if err != nil {
			return nil, nil, fmt.Errorf("style %q: %w", name, err)
		}
		styles[name] = d
	}

	fallback := styles[Wildcard]
	delete(styles, Wildcard)
	return styles, fallback, nil
}

func (e Entry) descriptor(name string) (*style.Descriptor, error) {
	var f style.Fields

	diffuse, ok, err := parseColor(e.Diffuse)
	if err != nil {
		return nil, fmt.Errorf("diffuse: %w", err)
	}
	if ok {
		f.Diffuse = &diffuse
	}

	specular, ok, err := parseColor(e.Specular)
	if err != nil {
		return nil, fmt.Errorf("specular: %w", err)
	}
	if ok {
		f.Specular = &specular
	}

	if e.SpecularRoughness != nil {
		roughness := *e.SpecularRoughness
		// !(r > 0) also rejects NaN.
		if !(roughness > 0) || math.IsInf(roughness, 0) {
			return nil, fmt.Errorf("%w: specular-roughness must be positive and finite, got %v", ErrConfigParse, roughness)
		}
		exp := 1.0 / roughness
		f.Specularity = &exp
	}
	if e.Transparency != nil {
		t := *e.Transparency
		if !finite(t) {
			return nil, fmt.Errorf("%w: transparency must be finite, got %v", ErrConfigParse, t)
		}
		f.Transparency = &t
	}
	return style.NewWithFields(name, f), nil
}

// parseColor is style.ParseColor plus a finiteness check on every channel.
func parseColor(values []float64) (colorful.Color, bool, error) {
	c, ok, err := style.ParseColor(values)
	if err != nil || !ok {
		return c, ok, err
	}
	for _, v := range values {
		if !finite(v) {
			return colorful.Color{}, false, fmt.Errorf("%w: color channel must be finite, got %v", ErrConfigParse, v)
		}
	}
	return c, true, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Apply replaces the whole table with the styles in doc. A Wildcard entry
// becomes the new fallback; without one the current fallback is kept.
// Names bound by earlier lookup misses are dropped with the rest of the table.
// On error the registry is left unchanged.
func (r *Registry) Apply(doc Document) error {
	r.ready()

	styles, fallback, err := doc.build()
	if err != nil {
		return err
	}
	r.swap(styles, fallback)
	return nil
}

// Reconfigure loads the style document at path and applies it.
// It takes the write lock only after the document has been read and validated.
func (r *Registry) Reconfigure(path string) error {
	r.ready()

	doc, err := ReadDocument(path)
	if err == nil {
		err = r.Apply(doc)
	}
	if err != nil {
		log.Printf("Styles: Failed to load style file %s: %v", path, err)
		return err
	}
	log.Printf("Styles: Loaded %d styles from %s", len(doc), path)
	return nil
}
