// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/stylectl/commands.go
// Summary: stylectl subcommands.

package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/framegrace/surfacestyle/config"
	"github.com/framegrace/surfacestyle/internal/swatch"
	"github.com/framegrace/surfacestyle/registry"
	"github.com/framegrace/surfacestyle/store"
	"github.com/framegrace/surfacestyle/style"
)

const swatchWidth = 4

// parse parses subcommand flags; -h is not an error.
func parse(fs *flag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c *cli) list(args []string) error {
	fs := c.subcommand("list")
	colorMode := fs.String("color", colorAuto, "Color swatches: auto, always or never")
	if ok, err := parse(fs, args); !ok {
		return err
	}

	r, err := c.registry()
	if err != nil {
		return err
	}
	color := colorEnabled(c.stdout, *colorMode)

	names := r.Names()
	width := runewidth.StringWidth(registry.Wildcard)
	for _, name := range names {
		width = max(width, runewidth.StringWidth(name))
	}

	row := func(name string, d *style.Descriptor) {
		fmt.Fprintf(c.stdout, "%s  %s  %s\n", runewidth.FillRight(name, width), colorCell(d, color), d)
	}
	for _, name := range names {
		row(name, r.Lookup(name))
	}
	row(registry.Wildcard, r.Fallback())
	return nil
}

func (c *cli) show(args []string) error {
	fs := c.subcommand("show")
	if ok, err := parse(fs, args); !ok {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("show takes exactly one category name")
	}

	r, err := c.registry()
	if err != nil {
		return err
	}
	name := fs.Arg(0)
	d := r.Lookup(name)

	binding := "explicit"
	if d == r.Fallback() {
		binding = fmt.Sprintf("fallback (%s)", d.Name())
	}
	writeDescriptor(c.stdout, name, binding, d)
	return nil
}

func (c *cli) dump(args []string) error {
	fs := c.subcommand("dump")
	format := fs.String("format", string(registry.FormatJSON), "Output format: json or yaml")
	colorMode := fs.String("color", colorAuto, "Syntax highlighting: auto, always or never")
	if ok, err := parse(fs, args); !ok {
		return err
	}

	f := registry.Format(*format)
	if f != registry.FormatJSON && f != registry.FormatYAML {
		return fmt.Errorf("unknown format %q", *format)
	}

	r, err := c.registry()
	if err != nil {
		return err
	}
	data, err := r.Export().Marshal(f)
	if err != nil {
		return fmt.Errorf("encode styles: %w", err)
	}
	if colorEnabled(c.stdout, *colorMode) {
		return highlight(c.stdout, data, f)
	}
	_, err = c.stdout.Write(data)
	return err
}

func (c *cli) check(args []string) error {
	fs := c.subcommand("check")
	if ok, err := parse(fs, args); !ok {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("check takes exactly one file")
	}
	path := fs.Arg(0)

	doc, err := registry.ReadDocument(path)
	if err != nil {
		return err
	}
	r := registry.New()
	if err := r.Apply(doc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fallback := "kept"
	if _, ok := doc[registry.Wildcard]; ok {
		fallback = "replaced"
	}
	fmt.Fprintf(c.stdout, "%s: ok (%d styles, fallback %s)\n", path, r.Count(), fallback)
	return nil
}

func (c *cli) init(args []string) error {
	fs := c.subcommand("init")
	force := fs.Bool("force", false, "Overwrite an existing file")
	if ok, err := parse(fs, args); !ok {
		return err
	}

	var path string
	switch fs.NArg() {
	case 0:
		p, err := config.StyleFilePath()
		if err != nil {
			return fmt.Errorf("resolve style file path: %w", err)
		}
		path = p
	case 1:
		path = fs.Arg(0)
	default:
		return fmt.Errorf("init takes at most one path")
	}

	if err := config.WriteStarterFile(path, *force); err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "Wrote starter style file to %s\n", path)
	return nil
}

func (c *cli) export(args []string) error {
	fs := c.subcommand("export")
	dbPath := fs.String("db", "", "Snapshot database (default: user config directory)")
	if ok, err := parse(fs, args); !ok {
		return err
	}

	r, err := c.registry()
	if err != nil {
		return err
	}
	s, err := openStore(*dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	doc := r.Export()
	if err := s.Save(doc); err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "Saved %d styles to %s\n", len(doc), s.Path())
	return nil
}

func (c *cli) importSnapshot(args []string) error {
	fs := c.subcommand("import")
	dbPath := fs.String("db", "", "Snapshot database (default: user config directory)")
	out := fs.String("o", "", "Write the imported styles to this style file instead of stdout")
	if ok, err := parse(fs, args); !ok {
		return err
	}

	s, err := openStore(*dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	doc, err := s.Load()
	if err != nil {
		return err
	}
	if len(doc) == 0 {
		return fmt.Errorf("snapshot %s is empty", s.Path())
	}

	settings, err := config.Resolve(config.Flags{LegacyDefaults: c.flags.LegacyDefaults, LegacyDefaultsSet: c.flags.LegacyDefaultsSet})
	if err != nil {
		return err
	}
	r := registry.New(settings.RegistryOptions()...)
	if err := r.Apply(doc); err != nil {
		return fmt.Errorf("snapshot %s: %w", s.Path(), err)
	}

	if *out == "" {
		data, err := r.Export().Marshal(registry.FormatJSON)
		if err != nil {
			return err
		}
		_, err = c.stdout.Write(data)
		return err
	}
	if err := r.SaveStyleFile(*out); err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "Wrote %d styles to %s\n", len(doc), *out)
	return nil
}

func openStore(path string) (*store.Store, error) {
	if path == "" {
		p, err := config.SnapshotPath()
		if err != nil {
			return nil, fmt.Errorf("resolve snapshot path: %w", err)
		}
		path = p
	}
	return store.Open(path)
}

// colorCell renders the swatch column: a color block on terminals, hex otherwise.
func colorCell(d *style.Descriptor, color bool) string {
	hex, ok := swatch.Hex(d)
	if !ok {
		hex = "-"
	}
	hex = runewidth.FillRight(hex, 7)
	if color {
		return swatch.Render(d, swatchWidth) + " " + hex
	}
	return hex
}
