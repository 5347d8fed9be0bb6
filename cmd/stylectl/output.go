// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/stylectl/output.go
// Summary: Terminal detection, syntax highlighting and descriptor formatting.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/chroma/v2/quick"
	"golang.org/x/term"

	"github.com/framegrace/surfacestyle/internal/swatch"
	"github.com/framegrace/surfacestyle/registry"
	"github.com/framegrace/surfacestyle/style"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"

	highlightStyle     = "catppuccin-mocha"
	highlightFormatter = "terminal256"
)

// colorEnabled decides whether output to w gets ANSI colors.
// In auto mode only terminals get color, and NO_COLOR disables it.
func colorEnabled(w io.Writer, mode string) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func highlight(w io.Writer, data []byte, format registry.Format) error {
	return quick.Highlight(w, string(data), string(format), highlightFormatter, highlightStyle)
}

func writeDescriptor(w io.Writer, name, binding string, d *style.Descriptor) {
	f := d.Fields()

	fmt.Fprintf(w, "category:     %s\n", name)
	fmt.Fprintf(w, "binding:      %s\n", binding)

	diffuse := "-"
	if f.Diffuse != nil {
		hex, _ := swatch.Hex(d)
		diffuse = formatRGB(style.RGB(*f.Diffuse)) + " " + hex
	}
	fmt.Fprintf(w, "diffuse:      %s\n", diffuse)

	specular := "-"
	if f.Specular != nil {
		specular = formatRGB(style.RGB(*f.Specular))
	}
	fmt.Fprintf(w, "specular:     %s\n", specular)
	fmt.Fprintf(w, "specularity:  %s\n", formatOptional(f.Specularity))
	fmt.Fprintf(w, "transparency: %s\n", formatOptional(f.Transparency))
}

func formatRGB(v []float64) string {
	return fmt.Sprintf("(%s, %s, %s)", formatFloat(v[0]), formatFloat(v[1]), formatFloat(v[2]))
}

func formatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return formatFloat(*v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
