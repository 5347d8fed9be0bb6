// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/defaults.go
// Summary: Built-in category styles used until a style document is loaded.

package registry

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/framegrace/surfacestyle/style"
)

// builtinStyles returns a fresh built-in table and fallback descriptor.
func builtinStyles(legacy bool) (map[string]*style.Descriptor, *style.Descriptor) {
	styles := make(map[string]*style.Descriptor)
	add := func(name string, r, g, b float64) *style.Descriptor {
		d := style.New(name)
		d.SetDiffuse(colorful.Color{R: r, G: g, B: b})
		styles[name] = d
		return d
	}

	add("IfcSite", 0.75, 0.8, 0.65)
	add("IfcSlab", 0.4, 0.4, 0.4)
	add("IfcWallStandardCase", 0.9, 0.9, 0.9)
	add("IfcWall", 0.9, 0.9, 0.9)
	add("IfcWindow", 0.75, 0.8, 0.75).SetTransparency(0.3)
	add("IfcDoor", 0.55, 0.3, 0.15)
	add("IfcBeam", 0.75, 0.7, 0.7)
	add("IfcRailing", 0.65, 0.6, 0.6)
	add("IfcMember", 0.65, 0.6, 0.6)
	add("IfcPlate", 0.8, 0.8, 0.8)

	if legacy {
		// Historical table: the IfcSpace values land on IfcWindow.
		styles["IfcSpace"] = style.New("IfcSpace")
		window := styles["IfcWindow"]
		window.SetDiffuse(colorful.Color{R: 0.65, G: 0.75, B: 0.8})
		window.SetTransparency(0.8)
	} else {
		add("IfcSpace", 0.65, 0.75, 0.8).SetTransparency(0.8)
	}

	fallback := style.New(FallbackName)
	fallback.SetDiffuse(colorful.Color{R: 0.7, G: 0.7, B: 0.7})
	return styles, fallback
}
